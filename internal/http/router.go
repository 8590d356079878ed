package http

import (
	"github.com/gin-gonic/gin"

	"github.com/exotravel/exotravel/internal/auth"
	"github.com/exotravel/exotravel/internal/database"
	"github.com/exotravel/exotravel/internal/database/bookings"
	"github.com/exotravel/exotravel/internal/database/planets"
	"github.com/exotravel/exotravel/internal/database/users"
	"github.com/exotravel/exotravel/internal/tasks"
)

// RouterConfig receives all router dependencies, improving
// testability and reducing parameter count.
type RouterConfig struct {
	Database   *database.Database
	Users      *users.Repository
	Planets    *planets.Repository
	Bookings   *bookings.Repository
	AuthSvc    *auth.Service
	Cookies    *auth.CookieManager
	TaskClient *tasks.Client
	Version    string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(CORSMiddleware())

	// Health endpoints
	health := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Auth endpoints
	if cfg.AuthSvc != nil && cfg.Cookies != nil {
		authController := NewAuthController(cfg.AuthSvc, cfg.Cookies)
		authController.RegisterRoutes(router)
	}

	// Catalog endpoints
	if cfg.Planets != nil {
		planetsController := NewPlanetsController(cfg.Planets)
		planetsController.RegisterRoutes(router)
	}

	// Booking endpoints
	if cfg.Bookings != nil {
		bookingsController := NewBookingsController(cfg.Bookings, cfg.Users, cfg.Planets)
		bookingsController.RegisterRoutes(router)
	}

	// Task management endpoints
	if cfg.TaskClient != nil {
		tasksController := NewTasksController(cfg.TaskClient)
		router.POST("/api/admin/catalog/resync", tasksController.ResyncCatalog)
		router.GET("/api/tasks/:id", tasksController.GetTaskStatus)
	}

	return router
}
