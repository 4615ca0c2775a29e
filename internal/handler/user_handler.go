package handler

import (
	"time"

	"peregrine-backend/internal/model"
	"peregrine-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type UserHandler struct {
	repo repository.UserRepository
}

func NewUserHandler(repo repository.UserRepository) *UserHandler {
	return &UserHandler{repo: repo}
}

type UserCreateRequest struct {
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
}

// Username and password are immutable through this path.
type UserUpdateRequest struct {
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	IsActive    bool   `json:"isActive"`
}

func (h *UserHandler) GetAll(c *fiber.Ctx) error {
	users, err := h.repo.GetAll()
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "حدث خطأ أثناء جلب المستخدمين")
	}

	return c.JSON(fiber.Map{"users": users, "total": len(users), "success": true})
}

func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}

	user, err := h.repo.FindByID(id)
	if err != nil {
		return fail(c, fiber.StatusNotFound, "المستخدم غير موجود")
	}

	return c.JSON(fiber.Map{"user": user, "success": true})
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req UserCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}
	if req.Username == "" || req.DisplayName == "" || req.Password == "" || req.Role == "" {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}

	if _, err := h.repo.FindByUsername(req.Username); err == nil {
		return fail(c, fiber.StatusBadRequest, "اسم المستخدم موجود بالفعل")
	}

	user := &model.User{
		Username:    req.Username,
		DisplayName: req.DisplayName,
		Email:       req.Email,
		Role:        req.Role,
		LastLogin:   time.Now(),
		IsActive:    true,
	}

	if err := h.repo.Create(user, req.Password); err != nil {
		return persistErr(c, err, "المستخدم غير موجود", "حدث خطأ أثناء إنشاء المستخدم")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user": fiber.Map{
			"id":          user.ID,
			"username":    user.Username,
			"displayName": user.DisplayName,
			"email":       user.Email,
			"role":        user.Role,
		},
		"success": true,
	})
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}

	var req UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}
	if req.DisplayName == "" || req.Role == "" {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}

	user, err := h.repo.FindByID(id)
	if err != nil {
		return fail(c, fiber.StatusNotFound, "المستخدم غير موجود")
	}

	user.DisplayName = req.DisplayName
	user.Email = req.Email
	user.Role = req.Role
	user.IsActive = req.IsActive

	if err := h.repo.Update(user); err != nil {
		return persistErr(c, err, "المستخدم غير موجود", "حدث خطأ أثناء تحديث المستخدم")
	}

	return c.JSON(fiber.Map{
		"user": fiber.Map{
			"id":          user.ID,
			"username":    user.Username,
			"displayName": user.DisplayName,
			"email":       user.Email,
			"role":        user.Role,
			"isActive":    user.IsActive,
		},
		"success": true,
	})
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}

	if err := h.repo.Delete(id); err != nil {
		return persistErr(c, err, "المستخدم غير موجود", "حدث خطأ أثناء حذف المستخدم")
	}

	return c.JSON(fiber.Map{"success": true, "message": "تم حذف المستخدم بنجاح"})
}
