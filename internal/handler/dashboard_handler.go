package handler

import (
	"peregrine-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	repo repository.DashboardRepository
}

func NewDashboardHandler(repo repository.DashboardRepository) *DashboardHandler {
	return &DashboardHandler{repo: repo}
}

func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.repo.GetStats()
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "حدث خطأ أثناء جلب الإحصائيات")
	}

	return c.JSON(fiber.Map{"stats": stats, "success": true})
}
