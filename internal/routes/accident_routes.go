package routes

import (
	"peregrine-backend/config"
	"peregrine-backend/internal/handler"
	"peregrine-backend/internal/mailer"
	"peregrine-backend/internal/middleware"
	"peregrine-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAccidentRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, mail *mailer.Mailer) {
	repo := repository.NewAccidentRepository(db)
	contractRepo := repository.NewContractRepository(db) // for manager notifications
	hdl := handler.NewAccidentHandler(repo, contractRepo, mail)

	api := app.Group("/api/accidents", middleware.Auth(cfg))
	api.Get("/", hdl.GetAll)
	// Literal segments before /:id so they are not captured as ids.
	api.Get("/guard/:guardId", hdl.GetByGuard)
	api.Get("/contract/:contractId", hdl.GetByContract)
	api.Get("/:id", hdl.GetByID)
	api.Post("/", hdl.Create)
	api.Put("/:id", hdl.Update)
	api.Put("/:id/status", hdl.UpdateStatus)
	api.Post("/:id/comments", hdl.AddComment)
}
