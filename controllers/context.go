package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"slotbook/models"
)

// actorID and actorRole read the identity placed in locals by
// middleware.Protected. Handlers behind that middleware can rely on both
// being present.
func actorID(c *fiber.Ctx) uint {
	id, _ := c.Locals("userID").(uint)
	return id
}

func actorRole(c *fiber.Ctx) models.Role {
	role, _ := c.Locals("role").(models.Role)
	return role
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
