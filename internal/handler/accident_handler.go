package handler

import (
	"peregrine-backend/internal/mailer"
	"peregrine-backend/internal/model"
	"peregrine-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AccidentHandler struct {
	repo         repository.AccidentRepository
	contractRepo repository.ContractRepository
	mail         *mailer.Mailer
}

func NewAccidentHandler(repo repository.AccidentRepository, contractRepo repository.ContractRepository, mail *mailer.Mailer) *AccidentHandler {
	return &AccidentHandler{repo: repo, contractRepo: contractRepo, mail: mail}
}

type AccidentCreateRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	Location    string    `json:"location"`
	MediaUrls   []string  `json:"mediaUrls"`
	GuardID     uuid.UUID `json:"guardId"`
	ContractID  uuid.UUID `json:"contractId"`
}

type AccidentUpdateRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Status      string   `json:"status"`
	Location    string   `json:"location"`
	MediaUrls   []string `json:"mediaUrls"`
}

type CommentCreateRequest struct {
	Content        string `json:"content"`
	Author         string `json:"author"`
	IsAdminComment bool   `json:"isAdminComment"`
}

func (h *AccidentHandler) GetAll(c *fiber.Ctx) error {
	accidentType := c.Query("type")
	status := c.Query("status")

	accidents, err := h.repo.GetAll(accidentType, status)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "حدث خطأ أثناء جلب الحوادث")
	}

	return c.JSON(fiber.Map{"reports": accidents, "total": len(accidents), "success": true})
}

func (h *AccidentHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}

	accident, err := h.repo.FindByID(id)
	if err != nil {
		return fail(c, fiber.StatusNotFound, "الحادث غير موجود")
	}

	return c.JSON(fiber.Map{"report": accident, "success": true})
}

func (h *AccidentHandler) GetByGuard(c *fiber.Ctx) error {
	guardID, err := uuid.Parse(c.Params("guardId"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}

	accidents, err := h.repo.GetByGuardID(guardID)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "حدث خطأ أثناء جلب الحوادث")
	}

	return c.JSON(fiber.Map{"reports": accidents, "total": len(accidents), "success": true})
}

func (h *AccidentHandler) GetByContract(c *fiber.Ctx) error {
	contractID, err := uuid.Parse(c.Params("contractId"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}

	accidents, err := h.repo.GetByContractID(contractID)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "حدث خطأ أثناء جلب الحوادث")
	}

	return c.JSON(fiber.Map{"reports": accidents, "total": len(accidents), "success": true})
}

func (h *AccidentHandler) Create(c *fiber.Ctx) error {
	var req AccidentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}
	if req.Title == "" || req.Description == "" || req.Type == "" {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}

	accident := &model.Accident{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Status:      req.Status,
		Location:    req.Location,
		MediaUrls:   req.MediaUrls,
		GuardID:     req.GuardID,
		ContractID:  req.ContractID,
		Comments:    []model.Comment{},
	}
	if accident.MediaUrls == nil {
		accident.MediaUrls = []string{}
	}

	if err := h.repo.Create(accident); err != nil {
		return persistErr(c, err, "الحادث غير موجود", "حدث خطأ أثناء إنشاء الحادث")
	}

	// Notify the branch manager in the background so the response is
	// not held up by SMTP.
	if h.mail.Enabled() {
		go h.notifyBranchManager(accident)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"report": accident, "success": true})
}

func (h *AccidentHandler) notifyBranchManager(accident *model.Accident) {
	contract, err := h.contractRepo.FindByID(accident.ContractID)
	if err != nil || contract.Branch == nil {
		return
	}
	h.mail.NotifyAccident(contract.Branch.ManagerEmail, accident)
}

func (h *AccidentHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}

	var req AccidentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}
	if req.Title == "" || req.Description == "" || req.Type == "" {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}

	accident, err := h.repo.FindByID(id)
	if err != nil {
		return fail(c, fiber.StatusNotFound, "الحادث غير موجود")
	}

	accident.Title = req.Title
	accident.Description = req.Description
	accident.Type = req.Type
	accident.Status = req.Status
	accident.Location = req.Location
	accident.MediaUrls = req.MediaUrls
	if accident.MediaUrls == nil {
		accident.MediaUrls = []string{}
	}

	if err := h.repo.Update(accident); err != nil {
		return persistErr(c, err, "الحادث غير موجود", "حدث خطأ أثناء تحديث الحادث")
	}

	return c.JSON(fiber.Map{"report": accident, "success": true})
}

func (h *AccidentHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}

	var req StatusRequest
	if err := c.BodyParser(&req); err != nil || req.Status == "" {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}

	if err := h.repo.UpdateStatus(id, req.Status); err != nil {
		return persistErr(c, err, "الحادث غير موجود", "حدث خطأ أثناء تحديث حالة الحادث")
	}

	return c.JSON(fiber.Map{"success": true, "message": "تم تحديث حالة الحادث بنجاح"})
}

func (h *AccidentHandler) AddComment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}

	var req CommentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}
	if req.Content == "" || req.Author == "" {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}

	comment := &model.Comment{
		Content:        req.Content,
		Author:         req.Author,
		IsAdminComment: req.IsAdminComment,
	}

	if err := h.repo.AddComment(id, comment); err != nil {
		return persistErr(c, err, "الحادث غير موجود", "حدث خطأ أثناء إضافة التعليق")
	}

	return c.JSON(fiber.Map{"comment": comment, "success": true})
}
