package routes

import (
	"github.com/gofiber/fiber/v2"

	"slotbook/controllers"
	"slotbook/middleware"
	"slotbook/models"
)

// SetupBookingRoutes configures all booking related routes
func SetupBookingRoutes(app *fiber.App, bookings *controllers.BookingController, jwtSecret string) {
	group := app.Group("/bookings", middleware.Protected(jwtSecret))
	group.Post("/", middleware.RequireRole(models.RoleCustomer), bookings.Create)
	group.Get("/", bookings.List)
	group.Patch("/:id/cancel", bookings.Cancel)
	group.Patch("/:id/status", middleware.RequireRole(models.RoleProvider, models.RoleAdmin), bookings.UpdateStatus)
}
