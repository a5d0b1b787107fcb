package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"slotbook/models"
	"slotbook/utils"
)

// ReminderScheduler emails customers about confirmed bookings starting in
// roughly an hour.
type ReminderScheduler struct {
	db     *gorm.DB
	mailer *utils.Mailer
	cron   *cron.Cron
}

func NewReminderScheduler(db *gorm.DB, mailer *utils.Mailer) *ReminderScheduler {
	return &ReminderScheduler{db: db, mailer: mailer, cron: cron.New()}
}

// Start registers the reminder job and starts the scheduler.
func (s *ReminderScheduler) Start() error {
	if _, err := s.cron.AddFunc("* * * * *", s.sendBookingReminders); err != nil {
		return err
	}
	s.cron.Start()
	log.Println("Cron job scheduler started for booking reminders")
	return nil
}

func (s *ReminderScheduler) Stop() {
	s.cron.Stop()
}

// sendBookingReminders checks for bookings and sends reminders
func (s *ReminderScheduler) sendBookingReminders() {
	now := time.Now()
	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	var bookings []models.Booking
	err := s.db.Preload("Customer").Preload("Service").Preload("Provider").
		Where("status = ? AND start_at BETWEEN ? AND ?", models.StatusConfirmed, startWindow, endWindow).
		Where("reminder_sent_at IS NULL").
		Find(&bookings).Error
	if err != nil {
		log.Printf("Error fetching bookings for reminders: %v", err)
		return
	}

	for _, booking := range bookings {
		if err := s.sendReminderEmail(&booking); err != nil {
			log.Printf("Failed to send reminder for booking %s: %v", booking.Reference, err)
			continue
		}
		if err := s.db.Model(&booking).Update("reminder_sent_at", now).Error; err != nil {
			log.Printf("Failed to mark reminder sent for booking %s: %v", booking.Reference, err)
		}
		log.Printf("Sent reminder for booking %s to %s", booking.Reference, booking.Customer.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func (s *ReminderScheduler) sendReminderEmail(booking *models.Booking) error {
	subject := fmt.Sprintf("Reminder: Upcoming Booking - %s", booking.Service.Name)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your upcoming booking scheduled in one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Provider:</strong> %s</li>
			<li><strong>Start Time:</strong> %s</li>
			<li><strong>End Time:</strong> %s</li>
		</ul>
		<p>Please arrive on time. If you need to cancel, do so as soon as possible.</p>
	`, booking.Customer.Name, booking.Service.Name, booking.Provider.Name,
		booking.StartAt.Format("2006-01-02 15:04:05"),
		booking.EndAt().Format("2006-01-02 15:04:05"))

	return s.mailer.Send(booking.Customer.Email, subject, body)
}
