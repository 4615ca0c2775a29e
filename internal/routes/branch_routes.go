package routes

import (
	"peregrine-backend/config"
	"peregrine-backend/internal/handler"
	"peregrine-backend/internal/middleware"
	"peregrine-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupBranchRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	repo := repository.NewBranchRepository(db)
	hdl := handler.NewBranchHandler(repo)

	api := app.Group("/api/branches", middleware.Auth(cfg))
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)
	api.Post("/", hdl.Create)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
