package routes

import (
	"peregrine-backend/config"
	"peregrine-backend/internal/handler"
	"peregrine-backend/internal/middleware"
	"peregrine-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupContractRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	repo := repository.NewContractRepository(db)
	hdl := handler.NewContractHandler(repo)

	api := app.Group("/api/contracts", middleware.Auth(cfg))
	api.Get("/", hdl.GetAll)
	// Register before /:id so "branch" is not captured as an id.
	api.Get("/branch/:branchId", hdl.GetByBranch)
	api.Get("/:id", hdl.GetByID)
	api.Post("/", hdl.Create)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)

	typeRepo := repository.NewContractTypeRepository(db)
	typeHdl := handler.NewContractTypeHandler(typeRepo)

	types := app.Group("/api/contract-types", middleware.Auth(cfg))
	types.Get("/", typeHdl.GetAll)
	types.Post("/", typeHdl.Create)
}
