package controllers

import (
	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"

	"slotbook/audit"
	"slotbook/models"
	"slotbook/utils"
)

type ServiceController struct {
	DB    *gorm.DB
	Audit *audit.Recorder
}

func NewServiceController(db *gorm.DB, recorder *audit.Recorder) *ServiceController {
	return &ServiceController{DB: db, Audit: recorder}
}

// List returns all active services, the customer-facing catalog.
func (sc *ServiceController) List(c *fiber.Ctx) error {
	var services []models.Service
	if err := sc.DB.Where("active = ?", true).Order("name asc").Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch services",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"services": services})
}

func (sc *ServiceController) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	var service models.Service
	if err := sc.DB.First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
		})
	}
	return c.JSON(service)
}

type serviceInput struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes"`
}

func validDuration(minutes int) bool {
	return minutes >= models.MinServiceDurationMinutes && minutes <= models.MaxServiceDurationMinutes
}

// Create adds a service to the catalog. Admin only.
func (sc *ServiceController) Create(c *fiber.Ctx) error {
	input := new(serviceInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if len(input.Name) < 2 || !validDuration(input.DurationMinutes) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Name and a duration between 5 and 240 minutes are required",
		})
	}

	service := models.Service{
		Name:            input.Name,
		Description:     input.Description,
		DurationMinutes: input.DurationMinutes,
		Active:          true,
	}
	if err := sc.DB.Create(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create service",
			Error:   err.Error(),
		})
	}

	sc.Audit.Record(actorID(c), actorRole(c), "SERVICE_CREATED", itoa(service.ID), models.Meta{
		"name":             service.Name,
		"duration_minutes": service.DurationMinutes,
	})

	return c.Status(fiber.StatusCreated).JSON(service)
}

// Update edits name, description, duration or active flag. Admin only.
func (sc *ServiceController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var service models.Service
	if err := sc.DB.First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
		})
	}

	type updateInput struct {
		Name            *string `json:"name"`
		Description     *string `json:"description"`
		DurationMinutes *int    `json:"duration_minutes"`
		Active          *bool   `json:"active"`
	}
	input := new(updateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if input.Name != nil {
		service.Name = *input.Name
	}
	if input.Description != nil {
		service.Description = *input.Description
	}
	if input.DurationMinutes != nil {
		if !validDuration(*input.DurationMinutes) {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Duration must be between 5 and 240 minutes",
			})
		}
		service.DurationMinutes = *input.DurationMinutes
	}
	if input.Active != nil {
		service.Active = *input.Active
	}

	if err := sc.DB.Save(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update service",
			Error:   err.Error(),
		})
	}

	sc.Audit.Record(actorID(c), actorRole(c), "SERVICE_UPDATED", itoa(service.ID), models.Meta{
		"name":   service.Name,
		"active": service.Active,
	})

	return c.JSON(service)
}

// Delete soft-deletes a service. Admin only. Existing bookings keep the
// duration they copied at creation.
func (sc *ServiceController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	var service models.Service
	if err := sc.DB.First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
		})
	}

	if err := sc.DB.Delete(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete service",
			Error:   err.Error(),
		})
	}

	sc.Audit.Record(actorID(c), actorRole(c), "SERVICE_DELETED", itoa(service.ID), nil)

	return c.SendStatus(fiber.StatusNoContent)
}
