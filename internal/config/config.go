package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Auth
		Seed
		Tasks
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path string
	}
	Auth struct {
		Secret        string        // token signing secret, auto-generated if empty
		SessionTTL    time.Duration // token and cookie lifetime
		BcryptCost    int
		SecureCookies bool // Secure flag on the session cookie; disable for local dev without HTTPS
	}
	Seed struct {
		Enabled    bool
		SourceURL  string // NASA Exoplanet Archive TAP endpoint
		Limit      int    // number of nearest planets to keep
		Schedule   string // cron format: "0 4 * * *" = daily at 04:00
		AutoResync bool   // re-run the seed on a schedule
	}
	Tasks struct {
		Enabled         bool
		Workers         int
		ReleaseAfter    time.Duration
		CleanupInterval time.Duration
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8288)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)

	// Auth defaults
	v.SetDefault("auth_secret", "")          // Auto-generated if empty
	v.SetDefault("auth_session_ttl", "168h") // 7 days
	v.SetDefault("auth_bcrypt_cost", 10)
	v.SetDefault("auth_secure_cookies", false)

	// Seed defaults
	v.SetDefault("seed_enabled", true)
	v.SetDefault("seed_source_url", DefaultSeedSourceURL)
	v.SetDefault("seed_limit", 50)
	v.SetDefault("seed_schedule", "0 4 * * *") // Daily at 04:00
	v.SetDefault("seed_auto_resync", false)

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 2)
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Auth: Auth{
			Secret:        v.GetString("AUTH_SECRET"),
			SessionTTL:    v.GetDuration("AUTH_SESSION_TTL"),
			BcryptCost:    v.GetInt("AUTH_BCRYPT_COST"),
			SecureCookies: v.GetBool("AUTH_SECURE_COOKIES"),
		},
		Seed: Seed{
			Enabled:    v.GetBool("SEED_ENABLED"),
			SourceURL:  v.GetString("SEED_SOURCE_URL"),
			Limit:      v.GetInt("SEED_LIMIT"),
			Schedule:   v.GetString("SEED_SCHEDULE"),
			AutoResync: v.GetBool("SEED_AUTO_RESYNC"),
		},
		Tasks: Tasks{
			Enabled:         v.GetBool("TASKS_ENABLED"),
			Workers:         v.GetInt("TASK_WORKERS"),
			ReleaseAfter:    v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval: v.GetDuration("TASK_CLEANUP_INTERVAL"),
		},
	}
}
