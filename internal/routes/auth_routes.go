package routes

import (
	"peregrine-backend/config"
	"peregrine-backend/internal/handler"
	"peregrine-backend/internal/middleware"
	"peregrine-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	repo := repository.NewUserRepository(db)
	hdl := handler.NewAuthHandler(repo, cfg)

	api := app.Group("/api/auth")
	api.Post("/login", hdl.Login)
	api.Post("/refresh-token", hdl.RefreshToken)
	api.Post("/logout", middleware.Auth(cfg), hdl.Logout)
}
