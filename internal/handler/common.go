package handler

import (
	"errors"

	"peregrine-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// fail writes the uniform failure envelope.
func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "message": message})
}

// persistErr maps a classified repository error onto the envelope:
// not-found 404, duplicate key 409, anything else 500 with a generic
// message. Driver detail is logged, never surfaced.
func persistErr(c *fiber.Ctx, err error, notFoundMsg, failMsg string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return fail(c, fiber.StatusNotFound, notFoundMsg)
	case errors.Is(err, repository.ErrConflict):
		return fail(c, fiber.StatusConflict, "البيانات متعارضة مع سجل موجود")
	default:
		zap.L().Error("persistence failure", zap.String("path", c.Path()), zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, failMsg)
	}
}
