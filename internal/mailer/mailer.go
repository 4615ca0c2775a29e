package mailer

import (
	"fmt"

	"peregrine-backend/config"
	"peregrine-backend/internal/model"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Mailer sends accident notifications to branch managers. It is a no-op
// when SMTP_HOST is not configured.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func New(cfg *config.Config) *Mailer {
	if cfg.SMTPHost == "" {
		return &Mailer{}
	}
	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.SMTPFrom,
	}
}

func (m *Mailer) Enabled() bool {
	return m.dialer != nil
}

func (m *Mailer) NotifyAccident(to string, accident *model.Accident) {
	if m.dialer == nil || to == "" {
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", fmt.Sprintf("بلاغ حادث جديد: %s", accident.Title))
	msg.SetBody("text/plain", fmt.Sprintf(
		"تم تسجيل حادث جديد\n\nالعنوان: %s\nالنوع: %s\nالموقع: %s\nالوصف: %s\n",
		accident.Title, accident.Type, accident.Location, accident.Description))

	if err := m.dialer.DialAndSend(msg); err != nil {
		zap.L().Error("failed to send accident notification",
			zap.String("to", to), zap.Error(err))
	}
}
