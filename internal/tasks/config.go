package tasks

import "time"

// Config holds task queue configuration.
type Config struct {
	Workers         int
	ReleaseAfter    time.Duration
	CleanupInterval time.Duration
}
