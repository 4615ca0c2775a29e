package main

import (
	"log"

	"peregrine-backend/config"
	"peregrine-backend/internal/database"
	"peregrine-backend/internal/logger"
	"peregrine-backend/internal/mailer"
	"peregrine-backend/internal/metrics"
	"peregrine-backend/internal/routes"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no .env file found, using system environment variables")
	}

	cfg := config.Load()

	if err := logger.InitLogger(&logger.LogConfig{
		Level:       cfg.LogLevel,
		Environment: cfg.Environment,
		ServiceName: "peregrine-backend",
	}); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		zap.L().Fatal("database connection failed", zap.Error(err))
	}
	if err := database.SeedAll(db); err != nil {
		zap.L().Fatal("database seeding failed", zap.Error(err))
	}

	app := fiber.New()

	httpMetrics := metrics.NewHTTPMetrics("peregrine-backend")
	app.Use(cors.New())
	app.Use(logger.Middleware())
	app.Use(httpMetrics.Middleware())

	app.Get("/metrics", adaptor.HTTPHandler(metrics.GetPrometheusHandler()))

	mail := mailer.New(cfg)

	routes.SetupAuthRoutes(app, db, cfg)
	routes.SetupUserRoutes(app, db, cfg)
	routes.SetupBranchRoutes(app, db, cfg)
	routes.SetupContractRoutes(app, db, cfg)
	routes.SetupGuardRoutes(app, db, cfg)
	routes.SetupAccidentRoutes(app, db, cfg, mail)
	routes.SetupDashboardRoutes(app, db, cfg)

	zap.L().Info("server ready", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zap.L().Fatal("server stopped", zap.Error(err))
	}
}
