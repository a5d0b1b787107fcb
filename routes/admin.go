package routes

import (
	"github.com/gofiber/fiber/v2"

	"slotbook/controllers"
	"slotbook/middleware"
	"slotbook/models"
)

// SetupAdminRoutes configures the admin surface: provider approval, the full
// service catalog and the audit trail.
func SetupAdminRoutes(app *fiber.App, admin *controllers.AdminController, jwtSecret string) {
	group := app.Group("/admin", middleware.Protected(jwtSecret), middleware.RequireRole(models.RoleAdmin))
	group.Get("/providers", admin.ListProviders)
	group.Patch("/providers/:id", admin.SetProviderApproval)
	group.Get("/services", admin.ListServices)
	group.Get("/audit-logs", admin.ListAuditLogs)
}
