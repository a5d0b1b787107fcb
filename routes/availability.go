package routes

import (
	"github.com/gofiber/fiber/v2"

	"slotbook/controllers"
	"slotbook/middleware"
	"slotbook/models"
)

// SetupAvailabilityRoutes configures availability windows and the slot query.
func SetupAvailabilityRoutes(app *fiber.App, availability *controllers.AvailabilityController, slots *controllers.SlotController, jwtSecret string) {
	group := app.Group("/availability")
	group.Get("/", availability.List)
	group.Post("/", middleware.Protected(jwtSecret), middleware.RequireRole(models.RoleProvider), availability.Create)

	app.Get("/slots", slots.Get)
}
