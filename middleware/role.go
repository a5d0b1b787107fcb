package middleware

import (
	"github.com/gofiber/fiber/v2"

	"slotbook/models"
)

// RequireRole gates a route to one or more of the closed role set. It reads
// the role placed in locals by Protected, so it must run after it.
func RequireRole(roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(models.Role)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "User role not found in context",
			})
		}

		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have the required role to perform this action",
		})
	}
}
