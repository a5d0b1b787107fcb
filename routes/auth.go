package routes

import (
	"github.com/gofiber/fiber/v2"

	"slotbook/controllers"
	"slotbook/middleware"
	"slotbook/ratelimit"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App, auth *controllers.AuthController, loginLimiter *ratelimit.Limiter, jwtSecret string) {
	group := app.Group("/auth")

	// Public routes
	group.Post("/register", auth.Register)
	group.Post("/login", loginLimiter.Handle, auth.Login)

	// Protected routes
	group.Get("/me", middleware.Protected(jwtSecret), auth.Me)
}
