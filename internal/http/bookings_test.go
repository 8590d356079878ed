package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exotravel/exotravel/internal/entities"
)

const missingID = "00000000-0000-0000-0000-000000000000"

func seedTravelers(t *testing.T, app *testApp) (user *entities.User, planet *entities.Exoplanet) {
	t.Helper()

	user, err := app.users.Create("a@b.com", nil, "digest")
	require.NoError(t, err)

	planet = &entities.Exoplanet{Name: "Proxima Cen b", Distance: 4.25, Vibe: "Ice World"}
	require.NoError(t, app.planets.Upsert(planet))

	return user, planet
}

func createBookingJSON(userID, planetID, class string) string {
	return fmt.Sprintf(`{"userId":%q,"planetId":%q,"travelClass":%q}`, userID, planetID, class)
}

func TestBookingsController_Create(t *testing.T) {
	t.Run("books a trip", func(t *testing.T) {
		app := setupTestApp(t)
		user, planet := seedTravelers(t, app)

		w := app.request(t, "POST", "/api/bookings",
			createBookingJSON(user.ID, planet.ID, "luxury"), nil)

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decodeJSON(t, w)
		assert.Equal(t, user.ID, body["userId"])
		assert.Equal(t, planet.ID, body["planetId"])
		assert.Equal(t, "luxury", body["travelClass"])
		assert.Equal(t, "confirmed", body["status"])
		assert.NotEmpty(t, body["id"])
		assert.NotEmpty(t, body["bookingDate"])
	})

	t.Run("404 for unknown user", func(t *testing.T) {
		app := setupTestApp(t)
		_, planet := seedTravelers(t, app)

		w := app.request(t, "POST", "/api/bookings",
			createBookingJSON(missingID, planet.ID, "luxury"), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		body := decodeJSON(t, w)
		assert.Equal(t, "User not found", body["error"].(map[string]any)["message"])
	})

	t.Run("404 for unknown planet", func(t *testing.T) {
		app := setupTestApp(t)
		user, _ := seedTravelers(t, app)

		w := app.request(t, "POST", "/api/bookings",
			createBookingJSON(user.ID, missingID, "luxury"), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		body := decodeJSON(t, w)
		assert.Equal(t, "Exoplanet not found", body["error"].(map[string]any)["message"])
	})

	t.Run("rejects short ids and missing class", func(t *testing.T) {
		app := setupTestApp(t)

		w := app.request(t, "POST", "/api/bookings",
			`{"userId":"abc","planetId":"def","travelClass":""}`, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, CodeValidationError, errorCode(t, w))

		details := decodeJSON(t, w)["error"].(map[string]any)["details"].(map[string]any)
		for _, field := range []string{"userId", "planetId", "travelClass"} {
			assert.Contains(t, details, field)
		}
	})
}

func TestBookingsController_ListForUser(t *testing.T) {
	t.Run("returns the user's bookings", func(t *testing.T) {
		app := setupTestApp(t)
		user, planet := seedTravelers(t, app)

		_, err := app.bookings.Create(user.ID, planet.ID, "economy")
		require.NoError(t, err)
		_, err = app.bookings.Create(user.ID, planet.ID, "luxury")
		require.NoError(t, err)

		w := app.request(t, "GET", "/api/bookings?userId="+user.ID, "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeJSON(t, w)["items"].([]any), 2)
	})

	t.Run("empty list is an array", func(t *testing.T) {
		app := setupTestApp(t)
		user, _ := seedTravelers(t, app)

		w := app.request(t, "GET", "/api/bookings?userId="+user.ID, "", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		items, ok := decodeJSON(t, w)["items"].([]any)
		require.True(t, ok, "items must be an array: %s", w.Body.String())
		assert.Empty(t, items)
	})

	t.Run("rejects short userId", func(t *testing.T) {
		app := setupTestApp(t)

		w := app.request(t, "GET", "/api/bookings?userId=abc", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, CodeValidationError, errorCode(t, w))
	})
}

func TestBookingsController_Update(t *testing.T) {
	t.Run("changes class and status", func(t *testing.T) {
		app := setupTestApp(t)
		user, planet := seedTravelers(t, app)
		booking, err := app.bookings.Create(user.ID, planet.ID, "economy")
		require.NoError(t, err)

		w := app.request(t, "PATCH", "/api/bookings/"+booking.ID,
			`{"travelClass":"luxury","status":"cancelled"}`, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeJSON(t, w)
		assert.Equal(t, "luxury", body["travelClass"])
		assert.Equal(t, "cancelled", body["status"])
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		app := setupTestApp(t)
		user, planet := seedTravelers(t, app)
		booking, err := app.bookings.Create(user.ID, planet.ID, "economy")
		require.NoError(t, err)

		w := app.request(t, "PATCH", "/api/bookings/"+booking.ID,
			`{"status":"teleported"}`, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, CodeValidationError, errorCode(t, w))
	})

	t.Run("rejects empty update", func(t *testing.T) {
		app := setupTestApp(t)
		user, planet := seedTravelers(t, app)
		booking, err := app.bookings.Create(user.ID, planet.ID, "economy")
		require.NoError(t, err)

		w := app.request(t, "PATCH", "/api/bookings/"+booking.ID, `{}`, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("404 for unknown booking", func(t *testing.T) {
		app := setupTestApp(t)

		w := app.request(t, "PATCH", "/api/bookings/"+missingID,
			`{"travelClass":"luxury"}`, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, CodeNotFound, errorCode(t, w))
	})
}

func TestBookingsController_Delete(t *testing.T) {
	t.Run("removes a booking", func(t *testing.T) {
		app := setupTestApp(t)
		user, planet := seedTravelers(t, app)
		booking, err := app.bookings.Create(user.ID, planet.ID, "economy")
		require.NoError(t, err)

		w := app.request(t, "DELETE", "/api/bookings/"+booking.ID, "", nil)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = app.request(t, "DELETE", "/api/bookings/"+booking.ID, "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("rejects short ids", func(t *testing.T) {
		app := setupTestApp(t)

		w := app.request(t, "DELETE", "/api/bookings/abc", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
