package handler

import (
	"peregrine-backend/internal/model"
	"peregrine-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type BranchHandler struct {
	repo repository.BranchRepository
}

func NewBranchHandler(repo repository.BranchRepository) *BranchHandler {
	return &BranchHandler{repo: repo}
}

type BranchCreateRequest struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	PhoneNumber  string `json:"phoneNumber"`
	ManagerName  string `json:"managerName"`
	ManagerEmail string `json:"managerEmail"`
	ManagerPhone string `json:"managerPhone"`
}

type BranchUpdateRequest struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	PhoneNumber  string `json:"phoneNumber"`
	ManagerName  string `json:"managerName"`
	ManagerEmail string `json:"managerEmail"`
	ManagerPhone string `json:"managerPhone"`
	IsActive     bool   `json:"isActive"`
}

func (h *BranchHandler) GetAll(c *fiber.Ctx) error {
	includeInactive := c.QueryBool("includeInactive", false)

	branches, err := h.repo.GetAll(includeInactive)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "حدث خطأ أثناء جلب الفروع")
	}

	return c.JSON(fiber.Map{"branches": branches, "total": len(branches), "success": true})
}

func (h *BranchHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}

	branch, err := h.repo.FindByID(id)
	if err != nil {
		return fail(c, fiber.StatusNotFound, "الفرع غير موجود")
	}

	return c.JSON(fiber.Map{"branch": branch, "success": true})
}

func (h *BranchHandler) Create(c *fiber.Ctx) error {
	var req BranchCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}
	if req.Name == "" || req.Address == "" {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}

	branch := &model.Branch{
		Name:         req.Name,
		Address:      req.Address,
		PhoneNumber:  req.PhoneNumber,
		ManagerName:  req.ManagerName,
		ManagerEmail: req.ManagerEmail,
		ManagerPhone: req.ManagerPhone,
		IsActive:     true,
	}

	if err := h.repo.Create(branch); err != nil {
		return persistErr(c, err, "الفرع غير موجود", "حدث خطأ أثناء إنشاء الفرع")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"branch": branch, "success": true})
}

// Update replaces every mutable field with the payload values.
func (h *BranchHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}

	var req BranchUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}
	if req.Name == "" || req.Address == "" {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}

	branch, err := h.repo.FindByID(id)
	if err != nil {
		return fail(c, fiber.StatusNotFound, "الفرع غير موجود")
	}

	branch.Name = req.Name
	branch.Address = req.Address
	branch.PhoneNumber = req.PhoneNumber
	branch.ManagerName = req.ManagerName
	branch.ManagerEmail = req.ManagerEmail
	branch.ManagerPhone = req.ManagerPhone
	branch.IsActive = req.IsActive

	if err := h.repo.Update(branch); err != nil {
		return persistErr(c, err, "الفرع غير موجود", "حدث خطأ أثناء تحديث الفرع")
	}

	return c.JSON(fiber.Map{"branch": branch, "success": true})
}

func (h *BranchHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}

	if err := h.repo.Delete(id); err != nil {
		return persistErr(c, err, "الفرع غير موجود", "حدث خطأ أثناء تعطيل الفرع")
	}

	return c.JSON(fiber.Map{"success": true, "message": "تم تعطيل الفرع بنجاح"})
}
