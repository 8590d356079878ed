package seed

import (
	"context"
	"fmt"
	"log"

	"github.com/exotravel/exotravel/internal/database/planets"
	"github.com/exotravel/exotravel/internal/entities"
	"github.com/exotravel/exotravel/internal/planetmath"
)

// Seeder normalizes archive records into catalog entries and upserts
// them by planet name, so re-runs refresh rather than duplicate.
type Seeder struct {
	planets *planets.Repository
	client  *Client
	limit   int
}

// NewSeeder creates a catalog seeder.
func NewSeeder(repo *planets.Repository, client *Client, limit int) *Seeder {
	return &Seeder{planets: repo, client: client, limit: limit}
}

// Normalize converts an archive record into a catalog entry.
func Normalize(rec Record) entities.Exoplanet {
	return entities.Exoplanet{
		Name:          rec.Name,
		Distance:      planetmath.ParsecsToLightYears(rec.DistParsecs),
		Temperature:   rec.Temperature,
		Gravity:       planetmath.Gravity(rec.Mass, rec.Radius),
		Vibe:          planetmath.Vibe(rec.Temperature, rec.Radius),
		DiscoveryYear: rec.DiscoveryYear,
	}
}

// Run fetches the nearest planets and upserts them into the catalog.
// Returns the number of entries written.
func (s *Seeder) Run(ctx context.Context) (int, error) {
	records, err := s.client.FetchNearest(ctx, s.limit)
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, fmt.Errorf("archive returned no usable records")
	}

	count := 0
	for _, rec := range records {
		planet := Normalize(rec)
		if err := s.planets.Upsert(&planet); err != nil {
			return count, fmt.Errorf("failed to upsert planet %q: %w", planet.Name, err)
		}
		count++
	}

	log.Printf("Seeded %d exoplanets into the catalog", count)
	return count, nil
}
