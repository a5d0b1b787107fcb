package routes

import (
	"github.com/gofiber/fiber/v2"

	"slotbook/controllers"
	"slotbook/middleware"
	"slotbook/models"
)

// SetupServiceRoutes configures the service catalog and provider directory.
func SetupServiceRoutes(app *fiber.App, services *controllers.ServiceController, providers *controllers.ProviderController, jwtSecret string) {
	group := app.Group("/services")
	group.Get("/", services.List)
	group.Get("/:id", services.Get)
	group.Post("/", middleware.Protected(jwtSecret), middleware.RequireRole(models.RoleAdmin), services.Create)
	group.Patch("/:id", middleware.Protected(jwtSecret), middleware.RequireRole(models.RoleAdmin), services.Update)
	group.Delete("/:id", middleware.Protected(jwtSecret), middleware.RequireRole(models.RoleAdmin), services.Delete)

	app.Get("/providers", providers.List)
}
