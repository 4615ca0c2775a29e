package routes

import (
	"peregrine-backend/config"
	"peregrine-backend/internal/handler"
	"peregrine-backend/internal/middleware"
	"peregrine-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	repo := repository.NewDashboardRepository(db)
	hdl := handler.NewDashboardHandler(repo)

	api := app.Group("/api/dashboard", middleware.Auth(cfg), middleware.Role("admin", "support"))
	api.Get("/", hdl.GetStats)
}
