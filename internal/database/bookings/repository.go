// Package bookings provides database operations for trip reservations.
package bookings

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/exotravel/exotravel/internal/entities"
)

// ErrNotFound is returned when the addressed booking does not exist.
var ErrNotFound = errors.New("booking not found")

// Repository handles booking database operations.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a booking for an existing user and planet. Callers
// are expected to have verified both referenced rows.
func (r *Repository) Create(userID, planetID, travelClass string) (*entities.Booking, error) {
	booking := &entities.Booking{
		UserID:      userID,
		PlanetID:    planetID,
		TravelClass: travelClass,
	}
	if err := r.db.Create(booking).Error; err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return booking, nil
}

// GetByID retrieves a booking. Returns ErrNotFound when absent.
func (r *Repository) GetByID(id string) (*entities.Booking, error) {
	var booking entities.Booking
	err := r.db.Where("id = ?", id).First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}
	return &booking, nil
}

// Update applies the given column changes to a booking and returns
// the updated row. ErrNotFound when no row was addressed.
func (r *Repository) Update(id string, changes map[string]any) (*entities.Booking, error) {
	result := r.db.Model(&entities.Booking{}).Where("id = ?", id).Updates(changes)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(id)
}

// Delete removes a booking. ErrNotFound when no row was addressed.
func (r *Repository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&entities.Booking{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListForUser returns a user's bookings, most recent first.
func (r *Repository) ListForUser(userID string) ([]entities.Booking, error) {
	var bookings []entities.Booking
	err := r.db.Where("user_id = ?", userID).Order("booking_date DESC").Find(&bookings).Error
	return bookings, err
}
