package handler

import (
	"time"

	"peregrine-backend/internal/model"
	"peregrine-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ContractHandler struct {
	repo repository.ContractRepository
}

func NewContractHandler(repo repository.ContractRepository) *ContractHandler {
	return &ContractHandler{repo: repo}
}

// The update payload carries the full field set; PUT is whole-record
// replace, not patch.
type ContractRequest struct {
	Title       string    `json:"title"`
	BranchID    uuid.UUID `json:"branchId"`
	ClientID    uuid.UUID `json:"clientId"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Status      string    `json:"status"`
	Type        string    `json:"type"`
	GuardsCount int       `json:"guardsCount"`
	Value       float64   `json:"value"`
	Notes       string    `json:"notes"`
}

func (h *ContractHandler) GetAll(c *fiber.Ctx) error {
	status := c.Query("status")
	contractType := c.Query("type")

	contracts, err := h.repo.GetAll(status, contractType)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "حدث خطأ أثناء جلب العقود")
	}

	return c.JSON(fiber.Map{"contracts": contracts, "total": len(contracts), "success": true})
}

func (h *ContractHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}

	contract, err := h.repo.FindByID(id)
	if err != nil {
		return fail(c, fiber.StatusNotFound, "العقد غير موجود")
	}

	return c.JSON(fiber.Map{"contract": contract, "success": true})
}

func (h *ContractHandler) GetByBranch(c *fiber.Ctx) error {
	branchID, err := uuid.Parse(c.Params("branchId"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}

	contracts, err := h.repo.GetByBranchID(branchID)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "حدث خطأ أثناء جلب العقود")
	}

	return c.JSON(fiber.Map{"contracts": contracts, "total": len(contracts), "success": true})
}

func (h *ContractHandler) Create(c *fiber.Ctx) error {
	var req ContractRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}
	if req.Title == "" || req.Status == "" || req.Type == "" || req.BranchID == uuid.Nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}

	contract := &model.Contract{
		Title:       req.Title,
		BranchID:    req.BranchID,
		ClientID:    req.ClientID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      req.Status,
		Type:        req.Type,
		GuardsCount: req.GuardsCount,
		Value:       req.Value,
		Notes:       req.Notes,
	}

	if err := h.repo.Create(contract); err != nil {
		return persistErr(c, err, "العقد غير موجود", "حدث خطأ أثناء إنشاء العقد")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"contract": contract, "success": true})
}

func (h *ContractHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}

	var req ContractRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}
	if req.Title == "" || req.Status == "" || req.Type == "" || req.BranchID == uuid.Nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}

	contract, err := h.repo.FindByID(id)
	if err != nil {
		return fail(c, fiber.StatusNotFound, "العقد غير موجود")
	}

	contract.Title = req.Title
	contract.BranchID = req.BranchID
	contract.ClientID = req.ClientID
	contract.StartDate = req.StartDate
	contract.EndDate = req.EndDate
	contract.Status = req.Status
	contract.Type = req.Type
	contract.GuardsCount = req.GuardsCount
	contract.Value = req.Value
	contract.Notes = req.Notes

	if err := h.repo.Update(contract); err != nil {
		return persistErr(c, err, "العقد غير موجود", "حدث خطأ أثناء تحديث العقد")
	}

	return c.JSON(fiber.Map{"contract": contract, "success": true})
}

func (h *ContractHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}

	if err := h.repo.Delete(id); err != nil {
		return persistErr(c, err, "العقد غير موجود", "حدث خطأ أثناء إنهاء العقد")
	}

	return c.JSON(fiber.Map{"success": true, "message": "تم إنهاء العقد بنجاح"})
}
