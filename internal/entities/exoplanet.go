package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Exoplanet is a destination in the travel catalog. Distance is in
// light years; Temperature is the equilibrium temperature in Kelvin.
// Gravity and DiscoveryYear are nil when the source data lacks them.
type Exoplanet struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	Name          string    `gorm:"uniqueIndex;size:255" json:"name"`
	Distance      float64   `gorm:"index" json:"distance"`
	Temperature   *float64  `json:"temperature"`
	Gravity       *float64  `json:"gravity"`
	Vibe          string    `gorm:"index;size:60" json:"vibe"`
	DiscoveryYear *int      `json:"discoveryYear"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}

func (p *Exoplanet) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
