package server

import (
	"errors"
	"log/slog"

	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/routes"
	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/services"
)

// New wires services, handlers and the middleware stack into a fiber app.
func New(cfg *config.Config, db *gorm.DB, m *metrics.Metrics) *fiber.App {
	// Services
	catalogService := services.NewCatalogService(db)
	contactService := services.NewContactService(db, services.NewScreeningService(), m)
	adminService := services.NewAdminService(db)
	seedService := services.NewSeedService(db, m)
	authService := services.NewAuthService(db, cfg)
	settingsService := services.NewSettingsService(db)

	// Handlers
	h := routes.Handlers{
		Health:   handlers.NewHealthHandler(db),
		Content:  handlers.NewContentHandler(catalogService),
		Contact:  handlers.NewContactHandler(contactService),
		Admin:    handlers.NewAdminHandler(adminService, seedService),
		Auth:     handlers.NewAuthHandler(authService),
		Settings: handlers.NewSettingsHandler(settingsService),
		Estimate: handlers.NewEstimateHandler(),
		Legal:    handlers.NewLegalHandler(settingsService),
	}

	app := fiber.New(fiber.Config{
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.Metrics(m))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	routes.Setup(app, cfg, h, adminService, m)
	return app
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
