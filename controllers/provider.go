package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"slotbook/models"
	"slotbook/utils"
)

type ProviderController struct {
	DB *gorm.DB
}

func NewProviderController(db *gorm.DB) *ProviderController {
	return &ProviderController{DB: db}
}

// List returns approved providers, the public directory customers book from.
func (pc *ProviderController) List(c *fiber.Ctx) error {
	var profiles []models.ProviderProfile
	if err := pc.DB.Preload("User").
		Where("approved = ?", true).
		Order("created_at desc").
		Find(&profiles).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch providers",
			Error:   err.Error(),
		})
	}

	providers := make([]fiber.Map, 0, len(profiles))
	for _, p := range profiles {
		providers = append(providers, fiber.Map{
			"provider_id": p.UserID,
			"name":        p.User.Name,
			"bio":         p.Bio,
		})
	}

	return c.JSON(fiber.Map{"providers": providers})
}
