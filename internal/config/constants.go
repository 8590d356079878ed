package config

const (
	// DefaultDatabasePath is the default path for the main application database
	DefaultDatabasePath = "./exotravel.db"

	// DefaultSeedSourceURL is the NASA Exoplanet Archive TAP sync endpoint.
	// The query is appended by the seed client.
	DefaultSeedSourceURL = "https://exoplanetarchive.ipac.caltech.edu/TAP/sync"
)
