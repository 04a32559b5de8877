package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/collections-service/internal/api/http/handlers"
	"github.com/spec-kit/collections-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Auth        *handlers.AuthHandler
	Collections *handlers.CollectionsHandler
	Items       *handlers.ItemsHandler
	Categories  *handlers.CategoriesHandler
	Users       *handlers.UsersHandler
	Guard       *auth.Guard
}

// RegisterRoutes wires HTTP routes. The guard gates every route below a
// protected group before any handler logic runs.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/register", cfg.Auth.Register)
	app.Post("/auth/login", cfg.Auth.Login)

	// public reads
	app.Get("/collections", cfg.Collections.List)
	app.Get("/collections/:id/items", cfg.Items.ListByCollection)
	app.Get("/items", cfg.Items.List)
	app.Get("/categories", cfg.Categories.List)

	protected := app.Group("", cfg.Guard.Handle)

	protected.Get("/collections/me", cfg.Collections.ListMine)
	protected.Post("/collections", cfg.Collections.Create)
	protected.Patch("/collections/:id", cfg.Collections.Update)
	protected.Delete("/collections/:id", cfg.Collections.Delete)

	protected.Get("/items/me", cfg.Items.ListMine)
	protected.Post("/items", cfg.Items.Create)
	protected.Patch("/items/:id", cfg.Items.Update)
	protected.Delete("/items/:id", cfg.Items.Delete)

	protected.Get("/users/me", cfg.Users.Me)

	admin := protected.Group("", auth.RequireAdmin())
	admin.Post("/categories", cfg.Categories.Create)
	admin.Delete("/categories/:id", cfg.Categories.Delete)
	admin.Get("/users", cfg.Users.List)
	admin.Patch("/users/:id/block", cfg.Users.Block)
	admin.Patch("/users/:id/unblock", cfg.Users.Unblock)
	admin.Delete("/users/:id", cfg.Users.Delete)

	// registered after /collections/me so the param route does not shadow it
	app.Get("/collections/:id", cfg.Collections.Get)
	app.Get("/items/:id", cfg.Items.Get)
}
