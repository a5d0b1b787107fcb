package middleware

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"

	"slotbook/models"
)

// Protected validates the bearer token and puts userID and role into locals.
func Protected(secret string) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(secret),
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid token",
				})
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid token claims",
				})
			}

			userID, err := extractUserID(claims)
			if err != nil {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid user ID in token",
				})
			}

			role, ok := claims["role"].(string)
			if !ok || !models.Role(role).Valid() {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid role in token",
				})
			}

			c.Locals("userID", userID)
			c.Locals("role", models.Role(role))

			return c.Next()
		},
	})
}

// extractUserID handles multiple potential formats of user ID in token
func extractUserID(claims jwt.MapClaims) (uint, error) {
	idVal := claims["id"]
	if idVal == nil {
		return 0, fmt.Errorf("no ID found in claims")
	}

	switch v := idVal.(type) {
	case float64:
		return uint(v), nil
	case string:
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("could not parse ID string: %v", err)
		}
		return uint(parsed), nil
	default:
		return 0, fmt.Errorf("unsupported ID type: %T", v)
	}
}

// jwtError handles JWT errors
func jwtError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error":   "Unauthorized",
		"message": "Invalid or expired token",
	})
}
