// Package cli implements the binary's subcommands.
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/exotravel/exotravel/internal/config"
	"github.com/exotravel/exotravel/internal/database"
	"github.com/exotravel/exotravel/internal/database/planets"
	"github.com/exotravel/exotravel/internal/seed"
)

// SeedCommand runs a one-shot catalog seed from the NASA archive.
type SeedCommand struct {
	DatabasePath string
	SourceURL    string
	Limit        int
	Timeout      time.Duration
}

// NewSeedCommand creates a new SeedCommand.
func NewSeedCommand() *SeedCommand {
	return &SeedCommand{}
}

// ParseFlags parses command line flags.
func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the application database")
	fs.StringVar(&cmd.SourceURL, "source", config.DefaultSeedSourceURL, "NASA Exoplanet Archive TAP endpoint")
	fs.IntVar(&cmd.Limit, "limit", 50, "Number of nearest planets to fetch")
	fs.DurationVar(&cmd.Timeout, "timeout", 5*time.Minute, "Overall timeout for the seed run")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Populate the exoplanet catalog from the NASA Exoplanet Archive.\n\n")
		fmt.Fprintf(os.Stderr, "This command:\n")
		fmt.Fprintf(os.Stderr, "  1. Fetches the nearest confirmed planets from the archive (CSV over TAP)\n")
		fmt.Fprintf(os.Stderr, "  2. Derives gravity, vibe and light-year distances for each\n")
		fmt.Fprintf(os.Stderr, "  3. Upserts them into the catalog by planet name\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s seed\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s seed -limit 100 -db ./exotravel.db\n", os.Args[0])
	}

	return fs.Parse(args)
}

// Run executes the seed command.
func (cmd *SeedCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cmd.Timeout)
	defer cancel()

	seeder := seed.NewSeeder(planets.NewRepository(db.DB), seed.NewClient(cmd.SourceURL), cmd.Limit)
	count, err := seeder.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Seeded %d exoplanets\n", count)
	return nil
}
