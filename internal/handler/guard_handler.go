package handler

import (
	"time"

	"peregrine-backend/internal/model"
	"peregrine-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type GuardHandler struct {
	repo repository.GuardRepository
}

func NewGuardHandler(repo repository.GuardRepository) *GuardHandler {
	return &GuardHandler{repo: repo}
}

type WorkScheduleRequest struct {
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Location  string `json:"location"`
}

type GuardCreateRequest struct {
	Name            string                `json:"name"`
	BadgeNumber     string                `json:"badgeNumber"`
	PhoneNumber     string                `json:"phoneNumber"`
	ProfileImageUrl string                `json:"profileImageUrl"`
	Specialization  string                `json:"specialization"`
	ContractID      uuid.UUID             `json:"contractId"`
	Schedule        []WorkScheduleRequest `json:"schedule"`
}

type GuardUpdateRequest struct {
	Name            string    `json:"name"`
	BadgeNumber     string    `json:"badgeNumber"`
	PhoneNumber     string    `json:"phoneNumber"`
	ProfileImageUrl string    `json:"profileImageUrl"`
	Specialization  string    `json:"specialization"`
	ContractID      uuid.UUID `json:"contractId"`
	IsActive        bool      `json:"isActive"`
}

type LeaveDayRequest struct {
	StartDate     time.Time  `json:"startDate"`
	EndDate       time.Time  `json:"endDate"`
	Reason        string     `json:"reason"`
	Status        string     `json:"status"` // ignored, leaves always start pending
	ReplacementID *uuid.UUID `json:"replacementId"`
}

type StatusRequest struct {
	Status string `json:"status"`
}

func (h *GuardHandler) GetAll(c *fiber.Ctx) error {
	includeInactive := c.QueryBool("includeInactive", false)

	guards, err := h.repo.GetAll(includeInactive)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "حدث خطأ أثناء جلب الحراس")
	}

	return c.JSON(fiber.Map{"guards": guards, "total": len(guards), "success": true})
}

func (h *GuardHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}

	guard, err := h.repo.FindByID(id)
	if err != nil {
		return fail(c, fiber.StatusNotFound, "الحارس غير موجود")
	}

	return c.JSON(fiber.Map{"guard": guard, "success": true})
}

func (h *GuardHandler) GetByContract(c *fiber.Ctx) error {
	contractID, err := uuid.Parse(c.Params("contractId"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}

	guards, err := h.repo.GetByContractID(contractID)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "حدث خطأ أثناء جلب الحراس")
	}

	return c.JSON(fiber.Map{"guards": guards, "total": len(guards), "success": true})
}

// Create persists the guard and any embedded schedule entries in one
// commit.
func (h *GuardHandler) Create(c *fiber.Ctx) error {
	var req GuardCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}
	if req.Name == "" || req.BadgeNumber == "" || req.ContractID == uuid.Nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}

	guard := &model.Guard{
		Name:            req.Name,
		BadgeNumber:     req.BadgeNumber,
		PhoneNumber:     req.PhoneNumber,
		ProfileImageUrl: req.ProfileImageUrl,
		Specialization:  req.Specialization,
		ContractID:      req.ContractID,
		IsActive:        true,
		Schedule:        []model.WorkSchedule{},
		LeaveDays:       []model.LeaveDay{},
	}
	for _, s := range req.Schedule {
		guard.Schedule = append(guard.Schedule, model.WorkSchedule{
			DayOfWeek: s.DayOfWeek,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Location:  s.Location,
		})
	}

	if err := h.repo.Create(guard); err != nil {
		return persistErr(c, err, "الحارس غير موجود", "حدث خطأ أثناء إنشاء الحارس")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"guard": guard, "success": true})
}

func (h *GuardHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}

	var req GuardUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}
	if req.Name == "" || req.BadgeNumber == "" || req.ContractID == uuid.Nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}

	guard, err := h.repo.FindByID(id)
	if err != nil {
		return fail(c, fiber.StatusNotFound, "الحارس غير موجود")
	}

	guard.Name = req.Name
	guard.BadgeNumber = req.BadgeNumber
	guard.PhoneNumber = req.PhoneNumber
	guard.ProfileImageUrl = req.ProfileImageUrl
	guard.Specialization = req.Specialization
	guard.ContractID = req.ContractID
	guard.IsActive = req.IsActive

	if err := h.repo.Update(guard); err != nil {
		return persistErr(c, err, "الحارس غير موجود", "حدث خطأ أثناء تحديث الحارس")
	}

	return c.JSON(fiber.Map{"guard": guard, "success": true})
}

func (h *GuardHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}

	if err := h.repo.Delete(id); err != nil {
		return persistErr(c, err, "الحارس غير موجود", "حدث خطأ أثناء تعطيل الحارس")
	}

	return c.JSON(fiber.Map{"success": true, "message": "تم تعطيل الحارس بنجاح"})
}

func (h *GuardHandler) AddSchedule(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}

	var req WorkScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}
	if req.StartTime == "" || req.EndTime == "" {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}

	schedule := &model.WorkSchedule{
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Location:  req.Location,
	}

	if err := h.repo.AddSchedule(id, schedule); err != nil {
		return persistErr(c, err, "الحارس غير موجود", "حدث خطأ أثناء إضافة جدول العمل")
	}

	return c.JSON(fiber.Map{"schedule": schedule, "success": true})
}

func (h *GuardHandler) AddLeave(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}

	var req LeaveDayRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}

	leave := &model.LeaveDay{
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Reason:        req.Reason,
		ReplacementID: req.ReplacementID,
	}

	if err := h.repo.AddLeave(id, leave); err != nil {
		return persistErr(c, err, "الحارس غير موجود", "حدث خطأ أثناء إضافة الإجازة")
	}

	return c.JSON(fiber.Map{"leaveDay": leave, "success": true})
}

func (h *GuardHandler) UpdateLeaveStatus(c *fiber.Ctx) error {
	leaveID, err := c.ParamsInt("leaveId")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}

	var req StatusRequest
	if err := c.BodyParser(&req); err != nil || req.Status == "" {
		return fail(c, fiber.StatusBadRequest, "بيانات غير صالحة")
	}

	if err := h.repo.UpdateLeaveStatus(uint(leaveID), req.Status); err != nil {
		return persistErr(c, err, "الإجازة غير موجودة", "حدث خطأ أثناء تحديث حالة الإجازة")
	}

	return c.JSON(fiber.Map{"success": true, "message": "تم تحديث حالة الإجازة بنجاح"})
}
