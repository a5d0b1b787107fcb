package controllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"slotbook/audit"
	"slotbook/models"
	"slotbook/scheduling"
	"slotbook/utils"
)

type BookingController struct {
	DB     *gorm.DB
	Engine *scheduling.Engine
	Audit  *audit.Recorder
	Mailer *utils.Mailer
}

func NewBookingController(db *gorm.DB, engine *scheduling.Engine, recorder *audit.Recorder, mailer *utils.Mailer) *BookingController {
	return &BookingController{DB: db, Engine: engine, Audit: recorder, Mailer: mailer}
}

// Create books a slot for the logged-in customer. The engine re-validates
// every precondition at write time; a storage-level unique constraint settles
// concurrent attempts on the same slot.
func (bc *BookingController) Create(c *fiber.Ctx) error {
	type createInput struct {
		ProviderID uint      `json:"provider_id"`
		ServiceID  uint      `json:"service_id"`
		StartAt    time.Time `json:"start_at"`
	}
	input := new(createInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if input.ProviderID == 0 || input.ServiceID == 0 || input.StartAt.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "provider_id, service_id and start_at are required",
		})
	}

	customerID := actorID(c)

	booking, err := bc.Engine.CreateBooking(customerID, input.ProviderID, input.ServiceID, input.StartAt)
	if err != nil {
		switch {
		case errors.Is(err, scheduling.ErrPastTime):
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Cannot book a past time",
			})
		case errors.Is(err, scheduling.ErrProviderUnavailable):
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Provider not found or not approved",
			})
		case errors.Is(err, scheduling.ErrServiceUnavailable):
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Service not found",
			})
		case errors.Is(err, scheduling.ErrSlotConflict):
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: "Slot already booked, please choose another time",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to create booking",
				Error:   err.Error(),
			})
		}
	}

	bc.Audit.Record(customerID, actorRole(c), "BOOKING_CREATED", booking.Reference, models.Meta{
		"provider_id": booking.ProviderID,
		"service_id":  booking.ServiceID,
		"start_at":    booking.StartAt,
	})

	bc.sendConfirmation(booking)

	return c.Status(fiber.StatusCreated).JSON(booking)
}

// List returns bookings scoped by role: admins see everything, customers
// their own, providers the ones assigned to them.
func (bc *BookingController) List(c *fiber.Ctx) error {
	query := bc.DB.Preload("Service").Order("created_at desc")

	switch actorRole(c) {
	case models.RoleAdmin:
	case models.RoleCustomer:
		query = query.Where("customer_id = ?", actorID(c))
	case models.RoleProvider:
		query = query.Where("provider_id = ?", actorID(c))
	default:
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "Unknown role",
		})
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"bookings": bookings})
}

// Cancel transitions a confirmed booking to cancelled. Permitted for the
// owning customer, the assigned provider, or an admin. Past bookings may be
// cancelled too: the UI hides the control, the API allows the correction.
func (bc *BookingController) Cancel(c *fiber.Ctx) error {
	id := c.Params("id")

	var booking models.Booking
	if err := bc.DB.First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
		})
	}

	if !booking.CanBeCancelledBy(actorID(c), actorRole(c)) {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "You cannot cancel this booking",
		})
	}

	if err := booking.UpdateStatus(bc.DB, models.StatusCancelled); err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Booking cannot be cancelled",
			Error:   err.Error(),
		})
	}

	bc.Audit.Record(actorID(c), actorRole(c), "BOOKING_CANCELLED", booking.Reference, nil)

	return c.JSON(booking)
}

// UpdateStatus applies a lifecycle transition (cancelled or completed).
// Completion is restricted to the assigned provider or an admin.
func (bc *BookingController) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	type statusInput struct {
		Status models.BookingStatus `json:"status"`
	}
	input := new(statusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if input.Status != models.StatusCancelled && input.Status != models.StatusCompleted {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Status must be cancelled or completed",
		})
	}

	var booking models.Booking
	if err := bc.DB.First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
		})
	}

	allowed := false
	switch input.Status {
	case models.StatusCancelled:
		allowed = booking.CanBeCancelledBy(actorID(c), actorRole(c))
	case models.StatusCompleted:
		allowed = booking.CanBeCompletedBy(actorID(c), actorRole(c))
	}
	if !allowed {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "You cannot change this booking's status",
		})
	}

	oldStatus := booking.Status
	if err := booking.UpdateStatus(bc.DB, input.Status); err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Invalid status transition",
			Error:   err.Error(),
		})
	}

	bc.Audit.Record(actorID(c), actorRole(c), "BOOKING_STATUS_CHANGED", booking.Reference, models.Meta{
		"old_status": oldStatus,
		"new_status": booking.Status,
	})

	return c.JSON(booking)
}

func (bc *BookingController) sendConfirmation(booking *models.Booking) {
	var customer, provider models.User
	var service models.Service
	if err := bc.DB.First(&customer, booking.CustomerID).Error; err != nil {
		return
	}
	if err := bc.DB.First(&provider, booking.ProviderID).Error; err != nil {
		return
	}
	if err := bc.DB.First(&service, booking.ServiceID).Error; err != nil {
		return
	}

	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your booking has been confirmed.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Provider:</strong> %s</li>
			<li><strong>Start Time:</strong> %s</li>
			<li><strong>Reference:</strong> %s</li>
		</ul>
		<p>Thank you for choosing our service!</p>
	`, customer.Name, service.Name, provider.Name,
		booking.StartAt.Format("2006-01-02 15:04:05"), booking.Reference)
	bc.Mailer.SendAsync(customer.Email, "Booking Confirmation", body)

	body = fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You have a new booking.</p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Customer:</strong> %s</li>
			<li><strong>Start Time:</strong> %s</li>
		</ul>
	`, provider.Name, service.Name, customer.Name,
		booking.StartAt.Format("2006-01-02 15:04:05"))
	bc.Mailer.SendAsync(provider.Email, "New Booking Scheduled", body)
}
