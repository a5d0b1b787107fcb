package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"slotbook/scheduling"
	"slotbook/utils"
)

type SlotController struct {
	Engine *scheduling.Engine
}

func NewSlotController(engine *scheduling.Engine) *SlotController {
	return &SlotController{Engine: engine}
}

// Get returns bookable start times for a provider and service within 24
// hours of start_at. The list is advisory: a slot can be taken between this
// response and the booking attempt, which then fails with a conflict.
func (slc *SlotController) Get(c *fiber.Ctx) error {
	providerID := c.QueryInt("provider_id")
	serviceID := c.QueryInt("service_id")
	startAtStr := c.Query("start_at")

	if providerID <= 0 || serviceID <= 0 || startAtStr == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "provider_id, service_id and start_at (RFC 3339) are required",
		})
	}

	anchor, err := time.Parse(time.RFC3339, startAtStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid start_at timestamp",
			Error:   err.Error(),
		})
	}

	slots, err := slc.Engine.Slots(uint(providerID), uint(serviceID), anchor)
	if err != nil {
		switch {
		case errors.Is(err, scheduling.ErrPastTime):
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Cannot request slots for past times",
			})
		case errors.Is(err, scheduling.ErrServiceUnavailable):
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Service not found",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to compute slots",
				Error:   err.Error(),
			})
		}
	}

	formatted := make([]string, 0, len(slots))
	for _, s := range slots {
		formatted = append(formatted, s.UTC().Format(time.RFC3339))
	}

	return c.JSON(fiber.Map{
		"provider_id": providerID,
		"service_id":  serviceID,
		"start_at":    anchor.UTC().Format(time.RFC3339),
		"slots":       formatted,
	})
}
