package routes

import (
	"peregrine-backend/config"
	"peregrine-backend/internal/handler"
	"peregrine-backend/internal/middleware"
	"peregrine-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupGuardRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	repo := repository.NewGuardRepository(db)
	hdl := handler.NewGuardHandler(repo)

	api := app.Group("/api/guards", middleware.Auth(cfg))
	api.Get("/", hdl.GetAll)
	// Literal segments before /:id so they are not captured as ids.
	api.Get("/contract/:contractId", hdl.GetByContract)
	api.Put("/leaves/:leaveId/status", hdl.UpdateLeaveStatus)
	api.Get("/:id", hdl.GetByID)
	api.Post("/", hdl.Create)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
	api.Post("/:id/schedules", hdl.AddSchedule)
	api.Post("/:id/leaves", hdl.AddLeave)
}
