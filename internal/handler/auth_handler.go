package handler

import (
	"time"

	"peregrine-backend/config"
	"peregrine-backend/internal/middleware"
	"peregrine-backend/internal/model"
	"peregrine-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type AuthHandler struct {
	repo repository.UserRepository
	cfg  *config.Config
}

func NewAuthHandler(repo repository.UserRepository, cfg *config.Config) *AuthHandler {
	return &AuthHandler{repo: repo, cfg: cfg}
}

type LoginRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	RememberMe bool   `json:"rememberMe"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}
	if req.Username == "" || req.Password == "" {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}

	// Unknown username and wrong password answer with the same message;
	// only a role mismatch is signalled separately.
	user, err := h.repo.FindByUsername(req.Username)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "اسم المستخدم أو كلمة المرور غير صحيحة")
	}
	if !h.repo.ValidateCredentials(req.Username, req.Password) {
		return fail(c, fiber.StatusUnauthorized, "اسم المستخدم أو كلمة المرور غير صحيحة")
	}
	if user.Role != req.Role {
		return fail(c, fiber.StatusUnauthorized, "الدور غير مطابق")
	}

	user.LastLogin = time.Now()
	if err := h.repo.Update(user); err != nil {
		return persistErr(c, err, "المستخدم غير موجود", "حدث خطأ أثناء تسجيل الدخول")
	}

	token, expiresAt, err := h.generateToken(user)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "حدث خطأ أثناء إنشاء رمز الدخول")
	}

	return c.JSON(fiber.Map{
		"user": fiber.Map{
			"id":              user.ID,
			"username":        user.Username,
			"displayName":     user.DisplayName,
			"email":           user.Email,
			"role":            user.Role,
			"profileImageUrl": user.ProfileImageUrl,
			"permissions":     model.PermissionsForRole(user.Role),
			"lastLogin":       user.LastLogin,
		},
		"token": fiber.Map{
			"token":        token,
			"refreshToken": uuid.NewString(), // placeholder, refresh is not implemented
			"expiresAt":    expiresAt,
			"tokenType":    "Bearer",
		},
		"success": true,
		"message": "تم تسجيل الدخول بنجاح",
	})
}

// RefreshToken is a stub; refresh tokens are not persisted server-side.
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	return fail(c, fiber.StatusBadRequest, "لم يتم تنفيذ هذه الوظيفة بعد")
}

// Logout does not invalidate anything server-side; the client discards
// its token.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "message": "تم تسجيل الخروج بنجاح"})
}

func (h *AuthHandler) generateToken(user *model.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(time.Duration(h.cfg.JWTExpiryHours) * time.Hour)

	claims := middleware.UserClaims{
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			Issuer:    h.cfg.JWTIssuer,
			Audience:  jwt.ClaimStrings{h.cfg.JWTAudience},
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.cfg.JWTSecret))
	return signed, expiresAt, err
}
