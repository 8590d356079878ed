package http

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gin-gonic/gin"

	"github.com/exotravel/exotravel/internal/database/bookings"
	"github.com/exotravel/exotravel/internal/database/planets"
	"github.com/exotravel/exotravel/internal/database/users"
	"github.com/exotravel/exotravel/internal/entities"
)

// CreateBookingRequest is the request body of POST /api/bookings.
type CreateBookingRequest struct {
	UserID      string `json:"userId"`
	PlanetID    string `json:"planetId"`
	TravelClass string `json:"travelClass"`
}

func (r CreateBookingRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserID, validation.Required, validation.Length(minOpaqueIDLength, 0)),
		validation.Field(&r.PlanetID, validation.Required, validation.Length(minOpaqueIDLength, 0)),
		validation.Field(&r.TravelClass, validation.Required, validation.Length(1, 60)),
	)
}

// UpdateBookingRequest is the request body of PATCH /api/bookings/:id.
// Both fields are optional; absent fields are left untouched.
type UpdateBookingRequest struct {
	TravelClass *string `json:"travelClass"`
	Status      *string `json:"status"`
}

func (r UpdateBookingRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.TravelClass, validation.NilOrNotEmpty, validation.Length(1, 60)),
		validation.Field(&r.Status, validation.NilOrNotEmpty, validation.In(
			string(entities.BookingStatusConfirmed),
			string(entities.BookingStatusPending),
			string(entities.BookingStatusCancelled),
		)),
	)
}

// BookingsController serves trip reservations.
type BookingsController struct {
	bookings *bookings.Repository
	users    *users.Repository
	planets  *planets.Repository
}

func NewBookingsController(b *bookings.Repository, u *users.Repository, p *planets.Repository) *BookingsController {
	return &BookingsController{bookings: b, users: u, planets: p}
}

// RegisterRoutes registers the booking endpoints on the router.
func (bc *BookingsController) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/bookings", bc.Create)
	router.GET("/api/bookings", bc.ListForUser)
	router.PATCH("/api/bookings/:id", bc.Update)
	router.DELETE("/api/bookings/:id", bc.Delete)
}

// Create books a trip for an existing user to an existing planet.
func (bc *BookingsController) Create(c *gin.Context) {
	var req CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, "Invalid booking payload", err)
		return
	}

	user, err := bc.users.FindByID(req.UserID)
	if err != nil {
		respondInternalError(c, err, "create booking")
		return
	}
	if user == nil {
		respondNotFound(c, "User")
		return
	}

	planet, err := bc.planets.GetByID(req.PlanetID)
	if err != nil {
		respondInternalError(c, err, "create booking")
		return
	}
	if planet == nil {
		respondNotFound(c, "Exoplanet")
		return
	}

	booking, err := bc.bookings.Create(req.UserID, req.PlanetID, req.TravelClass)
	if err != nil {
		respondInternalError(c, err, "create booking")
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// ListForUser returns a user's bookings, most recent first.
func (bc *BookingsController) ListForUser(c *gin.Context) {
	userID := c.Query("userId")
	if len(userID) < minOpaqueIDLength {
		respondError(c, http.StatusBadRequest, CodeValidationError, "Invalid userId", nil)
		return
	}

	list, err := bc.bookings.ListForUser(userID)
	if err != nil {
		respondInternalError(c, err, "list bookings")
		return
	}
	if list == nil {
		list = []entities.Booking{}
	}

	c.JSON(http.StatusOK, gin.H{"items": list})
}

// Update changes a booking's travel class and/or status.
func (bc *BookingsController) Update(c *gin.Context) {
	id := c.Param("id")
	if len(id) < minOpaqueIDLength {
		respondError(c, http.StatusBadRequest, CodeValidationError, "Invalid booking id", nil)
		return
	}

	var req UpdateBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, "Invalid update payload", err)
		return
	}

	changes := map[string]any{}
	if req.TravelClass != nil {
		changes["travel_class"] = *req.TravelClass
	}
	if req.Status != nil {
		changes["status"] = *req.Status
	}
	if len(changes) == 0 {
		respondError(c, http.StatusBadRequest, CodeValidationError, "Nothing to update", nil)
		return
	}

	booking, err := bc.bookings.Update(id, changes)
	if err != nil {
		if errors.Is(err, bookings.ErrNotFound) {
			respondNotFound(c, "Booking")
			return
		}
		respondInternalError(c, err, "update booking")
		return
	}

	c.JSON(http.StatusOK, booking)
}

// Delete removes a booking.
func (bc *BookingsController) Delete(c *gin.Context) {
	id := c.Param("id")
	if len(id) < minOpaqueIDLength {
		respondError(c, http.StatusBadRequest, CodeValidationError, "Invalid booking id", nil)
		return
	}

	if err := bc.bookings.Delete(id); err != nil {
		if errors.Is(err, bookings.ErrNotFound) {
			respondNotFound(c, "Booking")
			return
		}
		respondInternalError(c, err, "delete booking")
		return
	}

	c.Status(http.StatusNoContent)
}
