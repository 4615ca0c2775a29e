package handler

import (
	"peregrine-backend/internal/model"
	"peregrine-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type ContractTypeHandler struct {
	repo repository.ContractTypeRepository
}

func NewContractTypeHandler(repo repository.ContractTypeRepository) *ContractTypeHandler {
	return &ContractTypeHandler{repo: repo}
}

type ContractTypeRequest struct {
	Name       string `json:"name"`
	ArabicName string `json:"arabicName"`
	IconName   string `json:"iconName"`
}

func (h *ContractTypeHandler) GetAll(c *fiber.Ctx) error {
	types, err := h.repo.GetAll()
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "حدث خطأ أثناء جلب أنواع العقود")
	}

	return c.JSON(fiber.Map{"types": types, "success": true})
}

func (h *ContractTypeHandler) Create(c *fiber.Ctx) error {
	var req ContractTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}
	if req.Name == "" || req.ArabicName == "" {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}

	contractType := &model.ContractType{
		Name:       req.Name,
		ArabicName: req.ArabicName,
		IconName:   req.IconName,
	}

	if err := h.repo.Create(contractType); err != nil {
		return persistErr(c, err, "نوع العقد غير موجود", "حدث خطأ أثناء إنشاء نوع العقد")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"type": contractType, "success": true})
}
