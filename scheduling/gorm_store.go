package scheduling

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"slotbook/models"
)

// GormStore is the production Store over Postgres.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) ActiveWindows(providerID uint, from, to time.Time) ([]models.AvailabilityWindow, error) {
	var windows []models.AvailabilityWindow
	err := s.db.
		Where("provider_id = ? AND active = ?", providerID, true).
		Where("start_at < ? AND end_at > ?", to, from).
		Order("start_at asc").
		Find(&windows).Error
	return windows, err
}

func (s *GormStore) ConfirmedStarts(providerID, serviceID uint, from, to time.Time) ([]time.Time, error) {
	var starts []time.Time
	err := s.db.Model(&models.Booking{}).
		Where("provider_id = ? AND service_id = ?", providerID, serviceID).
		Where("status = ?", models.StatusConfirmed).
		Where("start_at >= ? AND start_at < ?", from, to).
		Pluck("start_at", &starts).Error
	return starts, err
}

func (s *GormStore) ProviderApproved(providerID uint) (bool, error) {
	var profile models.ProviderProfile
	err := s.db.Where("user_id = ?", providerID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return profile.Approved, nil
}

func (s *GormStore) ServiceByID(serviceID uint) (*models.Service, error) {
	var service models.Service
	err := s.db.First(&service, serviceID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// CreateBooking inserts the row and translates a unique violation on the
// confirmed (provider_id, start_at) index into ErrSlotConflict.
func (s *GormStore) CreateBooking(b *models.Booking) error {
	err := s.db.Create(b).Error
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return ErrSlotConflict
	}
	return err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
