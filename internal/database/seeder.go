package database

import (
	"time"

	"peregrine-backend/internal/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AdminID is the fixed identifier of the seeded admin account.
var AdminID = uuid.MustParse("11111111-1111-1111-1111-111111111111")

// SeedAll inserts the reference rows the application expects: the five
// contract types and the default admin account. Safe to run repeatedly.
func SeedAll(db *gorm.DB) error {
	contractTypes := []model.ContractType{
		{ID: 1, Name: "security", ArabicName: "خدمة حراسة", IconName: "shield"},
		{ID: 2, Name: "personal", ArabicName: "حماية شخصية", IconName: "user_shield"},
		{ID: 3, Name: "event", ArabicName: "تأمين فعاليات", IconName: "calendar_check"},
		{ID: 4, Name: "consultation", ArabicName: "استشارات أمنية", IconName: "file_text"},
		{ID: 5, Name: "other", ArabicName: "خدمات أخرى", IconName: "more_horizontal"},
	}
	for _, ct := range contractTypes {
		if err := db.FirstOrCreate(&ct, model.ContractType{Name: ct.Name}).Error; err != nil {
			return err
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("Admin@123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := model.User{
		ID:           AdminID,
		Username:     "admin",
		DisplayName:  "مدير النظام",
		Email:        "admin@peregrine.com",
		PasswordHash: string(hashed),
		Role:         "admin",
		LastLogin:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		IsActive:     true,
	}
	if err := db.FirstOrCreate(&admin, model.User{Username: admin.Username}).Error; err != nil {
		return err
	}

	zap.L().Info("database seeding complete")
	return nil
}
