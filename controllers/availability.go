package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"slotbook/models"
	"slotbook/scheduling"
	"slotbook/utils"
)

type AvailabilityController struct {
	DB *gorm.DB
}

func NewAvailabilityController(db *gorm.DB) *AvailabilityController {
	return &AvailabilityController{DB: db}
}

// List returns a provider's active windows in [from, to). When to is omitted
// it defaults to the end of from's day.
func (avc *AvailabilityController) List(c *fiber.Ctx) error {
	providerID := c.QueryInt("provider_id")
	fromStr := c.Query("from")
	if providerID <= 0 || fromStr == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "provider_id and from (RFC 3339) are required",
		})
	}

	from, err := time.Parse(time.RFC3339, fromStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid from timestamp",
			Error:   err.Error(),
		})
	}

	to := time.Date(from.Year(), from.Month(), from.Day(), 23, 59, 59, 0, from.Location())
	if toStr := c.Query("to"); toStr != "" {
		to, err = time.Parse(time.RFC3339, toStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid to timestamp",
				Error:   err.Error(),
			})
		}
	}

	var windows []models.AvailabilityWindow
	if err := avc.DB.
		Where("provider_id = ? AND active = ?", providerID, true).
		Where("start_at >= ? AND start_at < ?", from, to).
		Order("start_at asc").
		Find(&windows).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch availability",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"windows": windows})
}

// Create declares a new open window for the logged-in provider. Windows are
// append-only; there is no edit endpoint.
func (avc *AvailabilityController) Create(c *fiber.Ctx) error {
	type createInput struct {
		StartAt time.Time `json:"start_at"`
		EndAt   time.Time `json:"end_at"`
	}
	input := new(createInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if err := scheduling.ValidateWindow(input.StartAt, input.EndAt, time.Now()); err != nil {
		switch {
		case errors.Is(err, scheduling.ErrPastAvailability):
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Cannot create availability in the past",
			})
		default:
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "start_at must be before end_at",
			})
		}
	}

	providerID := actorID(c)

	var profile models.ProviderProfile
	if err := avc.DB.Where("user_id = ?", providerID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Provider profile missing",
		})
	}
	if !profile.Approved {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "Provider not approved",
		})
	}

	window := models.AvailabilityWindow{
		ProviderID: providerID,
		StartAt:    input.StartAt,
		EndAt:      input.EndAt,
		Active:     true,
	}
	if err := avc.DB.Create(&window).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create availability",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(window)
}
