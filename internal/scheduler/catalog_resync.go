// Package scheduler runs periodic maintenance jobs on cron schedules.
package scheduler

import (
	"fmt"
	"log"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/exotravel/exotravel/internal/tasks"
)

// CatalogResyncScheduler periodically enqueues a catalog refresh so
// the exoplanet data tracks the NASA archive.
type CatalogResyncScheduler struct {
	taskClient *tasks.Client
	schedule   string

	cron      *cron.Cron
	entryID   cron.EntryID
	mu        sync.Mutex
	isRunning bool
}

// NewCatalogResyncScheduler creates a scheduler instance. The
// schedule uses standard five-field cron syntax.
func NewCatalogResyncScheduler(taskClient *tasks.Client, schedule string) *CatalogResyncScheduler {
	return &CatalogResyncScheduler{
		taskClient: taskClient,
		schedule:   schedule,
		cron:       cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the schedule. Safe to call once; subsequent calls are
// no-ops.
func (s *CatalogResyncScheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	entryID, err := s.cron.AddFunc(s.schedule, s.enqueueResync)
	if err != nil {
		return fmt.Errorf("invalid resync schedule %q: %w", s.schedule, err)
	}
	s.entryID = entryID

	s.cron.Start()
	s.isRunning = true
	log.Printf("Catalog resync scheduled: %s", s.schedule)
	return nil
}

// Stop halts the schedule. Jobs already running are not interrupted.
func (s *CatalogResyncScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	s.cron.Remove(s.entryID)
	s.cron.Stop()
	s.isRunning = false
}

func (s *CatalogResyncScheduler) enqueueResync() {
	if _, err := s.taskClient.Add(tasks.ResyncCatalogTask{}).Save(); err != nil {
		log.Printf("Failed to enqueue catalog resync: %v", err)
	}
}
