package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/exotravel/exotravel/internal/auth"
	"github.com/exotravel/exotravel/internal/config"
	"github.com/exotravel/exotravel/internal/database"
	"github.com/exotravel/exotravel/internal/database/bookings"
	"github.com/exotravel/exotravel/internal/database/planets"
	"github.com/exotravel/exotravel/internal/database/users"
	http_controllers "github.com/exotravel/exotravel/internal/http"
	"github.com/exotravel/exotravel/internal/scheduler"
	"github.com/exotravel/exotravel/internal/seed"
	"github.com/exotravel/exotravel/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for SIGINT/SIGTERM, then drain in-flight requests before
	// killing the process.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop task workers)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting ExoTravel v%s", version)

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	userRepo := users.NewRepository(db.DB)
	planetRepo := planets.NewRepository(db.DB)
	bookingRepo := bookings.NewRepository(db.DB)

	// Token signing secret. Auto-generated secrets invalidate every
	// session on restart, hence the warning.
	secret := cfg.Auth.Secret
	if secret == "" {
		secret, err = auth.GenerateSecret()
		if err != nil {
			log.Fatalf("Failed to generate session secret: %v", err)
		}
		log.Printf("Generated session secret (set AUTH_SECRET to persist sessions across restarts)")
	}

	hasher := auth.NewHasher(cfg.Auth.BcryptCost)
	codec := auth.NewCodec(secret, cfg.Auth.SessionTTL)
	cookies := auth.NewCookieManager(codec, cfg.Auth.SecureCookies)
	authService := auth.NewService(userRepo, hasher)

	seeder := seed.NewSeeder(planetRepo, seed.NewClient(cfg.Seed.SourceURL), cfg.Seed.Limit)

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskCfg := tasks.Config{
			Workers:         cfg.Tasks.Workers,
			ReleaseAfter:    cfg.Tasks.ReleaseAfter,
			CleanupInterval: cfg.Tasks.CleanupInterval,
		}

		taskClient, err = tasks.NewClient(cfg.Database.Path, taskCfg)
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		taskClient.Register(
			tasks.NewResyncCatalogQueue(seeder),
		)

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)
	}

	// Seed the catalog on first boot so the API is not empty.
	if cfg.Seed.Enabled {
		count, err := planetRepo.Count()
		if err != nil {
			log.Printf("WARNING: could not check catalog size: %v", err)
		} else if count == 0 {
			log.Printf("Catalog is empty, seeding from %s", cfg.Seed.SourceURL)
			seedCtx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			if _, err := seeder.Run(seedCtx); err != nil {
				log.Printf("WARNING: initial catalog seed failed: %v", err)
			}
			cancel()
		}
	}

	// Scheduled catalog refresh through the task queue
	var resyncScheduler *scheduler.CatalogResyncScheduler
	if cfg.Seed.AutoResync && taskClient != nil {
		resyncScheduler = scheduler.NewCatalogResyncScheduler(taskClient, cfg.Seed.Schedule)
		if err := resyncScheduler.Start(); err != nil {
			log.Fatalf("Failed to start catalog resync scheduler: %v", err)
		}
	}

	routerCfg := http_controllers.RouterConfig{
		Database:   db,
		Users:      userRepo,
		Planets:    planetRepo,
		Bookings:   bookingRepo,
		AuthSvc:    authService,
		Cookies:    cookies,
		TaskClient: taskClient,
		Version:    version,
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		if resyncScheduler != nil {
			resyncScheduler.Stop()
		}
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	Serve(router, cfg, onShutdown)
}
