package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/olegkh/autoservice-crm/internal/config"
	"github.com/olegkh/autoservice-crm/internal/handlers"
	"github.com/olegkh/autoservice-crm/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	userHandler *handlers.UserHandler,
	serviceHandler *handlers.ServiceHandler,
	shiftHandler *handlers.ShiftHandler,
	operationHandler *handlers.OperationHandler,
	recordHandler *handlers.RecordHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/login", authHandler.Login)
	auth.Post("/verify", authHandler.Verify)
	auth.Post("/refresh", authHandler.Refresh)
	auth.Post("/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Everything below requires a valid access token. Role checks run
	// per operation against the database, not against token claims.
	protected := api.Group("", middleware.JWTProtected(cfg))

	protected.Post("/users", userHandler.Create)
	protected.Get("/users", userHandler.List)
	protected.Get("/users/:id", userHandler.Get)

	protected.Post("/services", serviceHandler.Create)
	protected.Get("/services", serviceHandler.List)
	protected.Get("/services/:id", serviceHandler.Get)
	protected.Patch("/services/:id", serviceHandler.Update)
	protected.Delete("/services/:id", serviceHandler.Delete)
	protected.Post("/services/:id/masters", serviceHandler.AssignMaster)
	protected.Get("/services/:id/masters", serviceHandler.Masters)
	protected.Delete("/services/:id/masters/:master_id", serviceHandler.UnassignMaster)
	protected.Get("/masters/:id/services", serviceHandler.MasterServices)

	protected.Post("/shifts/open", shiftHandler.Open)
	protected.Get("/shifts/current", shiftHandler.Current)
	protected.Post("/shifts/close", shiftHandler.Close)
	protected.Get("/shifts/logs", shiftHandler.Logs)

	protected.Post("/operations", operationHandler.Create)
	protected.Get("/operations", operationHandler.List)
	protected.Patch("/operations/:id/pay", operationHandler.Pay)
	protected.Patch("/operations/:id/cancel", operationHandler.Cancel)
	protected.Delete("/operations/:id", operationHandler.Delete)

	protected.Post("/records", recordHandler.Create)
	protected.Get("/records", recordHandler.List)
	protected.Get("/records/:id", recordHandler.Get)
	protected.Patch("/records/:id", recordHandler.Update)
	protected.Put("/records/:id/payment-status", recordHandler.SetPaymentStatus)
	protected.Delete("/records/:id", recordHandler.Delete)
}
