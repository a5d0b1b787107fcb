package db

import (
	"log"

	"gorm.io/gorm"

	"slotbook/models"
)

// Migrate applies the schema. The partial unique index on bookings
// (provider_id, start_at) WHERE status = 'confirmed' is created here via the
// model tags; it is the storage-level guarantee against double booking.
func Migrate(conn *gorm.DB) error {
	err := conn.AutoMigrate(
		&models.User{},
		&models.ProviderProfile{},
		&models.Service{},
		&models.AvailabilityWindow{},
		&models.Booking{},
		&models.AuditLog{},
	)
	if err != nil {
		return err
	}

	log.Println("✅ Migrations applied successfully!")
	return nil
}
