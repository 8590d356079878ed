package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/exotravel/exotravel/internal/seed"
)

// ResyncCatalogTask refreshes the exoplanet catalog from the NASA
// archive. Running it off the request path keeps the long archive
// fetch out of request handling.
type ResyncCatalogTask struct{}

// Config returns the queue configuration for catalog resync tasks.
func (t ResyncCatalogTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "resync_catalog",
		MaxAttempts: 3,
		Backoff:     time.Minute,
		Timeout:     5 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// ResyncCatalogProcessor creates a processor function for
// ResyncCatalogTask.
func ResyncCatalogProcessor(seeder *seed.Seeder) backlite.QueueProcessor[ResyncCatalogTask] {
	return func(ctx context.Context, task ResyncCatalogTask) error {
		if seeder == nil {
			return fmt.Errorf("seeder not configured")
		}

		count, err := seeder.Run(ctx)
		if err != nil {
			return fmt.Errorf("resync catalog: %w", err)
		}

		log.Printf("[TASK] Catalog resync wrote %d planets", count)
		return nil
	}
}

// NewResyncCatalogQueue creates a backlite queue for catalog resync
// tasks.
func NewResyncCatalogQueue(seeder *seed.Seeder) backlite.Queue {
	return backlite.NewQueue(ResyncCatalogProcessor(seeder))
}
