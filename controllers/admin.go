package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"slotbook/audit"
	"slotbook/models"
	"slotbook/utils"
)

type AdminController struct {
	DB    *gorm.DB
	Audit *audit.Recorder
}

func NewAdminController(db *gorm.DB, recorder *audit.Recorder) *AdminController {
	return &AdminController{DB: db, Audit: recorder}
}

// ListProviders returns every provider profile, approved or not.
func (adc *AdminController) ListProviders(c *fiber.Ctx) error {
	var profiles []models.ProviderProfile
	if err := adc.DB.Preload("User").Order("created_at desc").Find(&profiles).Error; err != nil {
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
			"email":       p.User.Email,
			"bio":         p.Bio,
			"approved":    p.Approved,
			"created_at":  p.CreatedAt,
		})
	}

	return c.JSON(fiber.Map{"providers": providers})
}

// SetProviderApproval toggles a provider's approved flag.
func (adc *AdminController) SetProviderApproval(c *fiber.Ctx) error {
	id := c.Params("id")

	type approvalInput struct {
		Approved *bool `json:"approved"`
	}
	input := new(approvalInput)
	if err := c.BodyParser(input); err != nil || input.Approved == nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "approved (boolean) is required",
		})
	}

	var profile models.ProviderProfile
	if err := adc.DB.Where("user_id = ?", id).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Provider not found",
		})
	}

	profile.Approved = *input.Approved
	if err := adc.DB.Save(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update provider",
			Error:   err.Error(),
		})
	}

	action := "PROVIDER_REJECTED"
	if profile.Approved {
		action = "PROVIDER_APPROVED"
	}
	adc.Audit.Record(actorID(c), actorRole(c), action, itoa(profile.UserID), models.Meta{
		"approved": profile.Approved,
	})

	return c.JSON(profile)
}

// ListServices returns the full catalog including inactive and soft-deleted
// services.
func (adc *AdminController) ListServices(c *fiber.Ctx) error {
	var services []models.Service
	if err := adc.DB.Unscoped().Order("name asc").Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch services",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"services": services})
}

// ListAuditLogs returns the most recent 500 audit entries.
func (adc *AdminController) ListAuditLogs(c *fiber.Ctx) error {
	var logs []models.AuditLog
	if err := adc.DB.Order("created_at desc").Limit(500).Find(&logs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch audit logs",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"logs": logs})
}
