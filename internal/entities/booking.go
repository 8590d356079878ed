package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is a trip reservation linking a user to an exoplanet.
type Booking struct {
	ID          string        `gorm:"primaryKey;size:36" json:"id"`
	UserID      string        `gorm:"index;size:36" json:"userId"`
	PlanetID    string        `gorm:"index;size:36" json:"planetId"`
	TravelClass string        `gorm:"size:60" json:"travelClass"`
	Status      BookingStatus `gorm:"size:20;default:confirmed" json:"status"`
	BookingDate time.Time     `gorm:"autoCreateTime" json:"bookingDate"`
	User        User          `gorm:"foreignKey:UserID" json:"-"`
	Planet      Exoplanet     `gorm:"foreignKey:PlanetID" json:"-"`
	CreatedAt   time.Time     `json:"-"`
	UpdatedAt   time.Time     `json:"-"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Status == "" {
		b.Status = BookingStatusConfirmed
	}
	return nil
}
