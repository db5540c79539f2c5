package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// Handlers bundles everything the route table dispatches to.
type Handlers struct {
	Health   *handlers.HealthHandler
	Content  *handlers.ContentHandler
	Contact  *handlers.ContactHandler
	Admin    *handlers.AdminHandler
	Auth     *handlers.AuthHandler
	Settings *handlers.SettingsHandler
	Estimate *handlers.EstimateHandler
	Legal    *handlers.LegalHandler
}

func perIPLimiter(max int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               max,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
}

func Setup(
	app *fiber.App,
	cfg *config.Config,
	h Handlers,
	adminService *services.AdminService,
	m *metrics.Metrics,
) {
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(perIPLimiter(60))

	api.Get("/health", h.Health.Check)

	// Content catalog (public)
	api.Get("/services", h.Content.ListServices)
	api.Get("/projects", h.Content.ListProjects)
	api.Get("/testimonials", h.Content.ListTestimonials)
	api.Get("/pricing", h.Content.ListPricing)

	// Contact form: 5 req/min per IP
	api.Post("/contact", perIPLimiter(5), h.Contact.Submit)

	api.Post("/estimate", h.Estimate.Calculate)
	api.Get("/settings", h.Settings.GetSettings)

	api.Get("/legal/privacy", h.Legal.PrivacyPolicy)
	api.Get("/legal/terms", h.Legal.TermsOfService)

	// Auth: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(perIPLimiter(10))
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.Refresh)
	auth.Post("/logout", middleware.JWTProtected(cfg), h.Auth.Logout)

	// Admin gate operations. These must be registered before the admin
	// group below so its guard does not run for them.
	api.Get("/admin/status", middleware.LenientJWT(cfg), h.Admin.Status)
	api.Post("/admin/grant", middleware.JWTProtected(cfg), h.Admin.Grant)
	api.Get("/admin/check", middleware.JWTProtected(cfg), h.Admin.Check)

	// Admin only (JWT of an admin, or X-Admin-Token)
	admin := api.Group("/admin", middleware.OptionalJWT(cfg), middleware.AdminRequired(adminService, cfg))
	admin.Post("/seed", h.Admin.Seed)
	admin.Get("/contacts", h.Contact.List)
	admin.Put("/settings/:key", h.Settings.SetSetting)
	admin.Delete("/settings/:key", h.Settings.DeleteSetting)
}
