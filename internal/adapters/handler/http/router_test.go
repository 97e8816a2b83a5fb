package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/dkolev/gymtrack/internal/adapters/handler/http"
	"github.com/dkolev/gymtrack/internal/adapters/kvstore"
	"github.com/dkolev/gymtrack/internal/core/services"
)

// setupFullRouter wires every handler over one shared memory store, the way
// cmd/api does in production.
func setupFullRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := kvstore.NewMemory()
	catalog := services.NewCatalogService(store)
	catalog.Seed(context.Background())
	nutrition := services.NewNutritionService(store)

	return adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		CatalogHandler:   adapterHTTP.NewCatalogHandler(catalog),
		ScheduleHandler:  adapterHTTP.NewScheduleHandler(services.NewScheduleService(store, catalog)),
		WorkoutHandler:   adapterHTTP.NewWorkoutHandler(services.NewSessionService(store, catalog)),
		StatsHandler:     adapterHTTP.NewStatsHandler(services.NewStatsService(store)),
		NutritionHandler: adapterHTTP.NewNutritionHandler(nutrition),
		ProfileHandler:   adapterHTTP.NewProfileHandler(services.NewProfileService(store, nutrition)),
		BackupHandler:    adapterHTTP.NewBackupHandler(services.NewBackupService(store)),
		Store:            store,
		StartTime:        time.Now(),
	})
}

func TestRouter_Health(t *testing.T) {
	router := setupFullRouter(t)

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"store":"connected"`)
	assert.Contains(t, w.Body.String(), `"uptime"`)
}

func TestRouter_CORS(t *testing.T) {
	router := setupFullRouter(t)

	req, _ := http.NewRequest("OPTIONS", "/api/v1/exercises", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_OpenModeWithoutPIN(t *testing.T) {
	// With no token service, every route runs unauthenticated.
	router := setupFullRouter(t)

	w := doJSON(t, router, "GET", "/api/v1/exercises", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_EndToEnd(t *testing.T) {
	router := setupFullRouter(t)

	// Full loop: start a workout, log a set, finish, check the stats.
	require.Equal(t, http.StatusCreated, doJSON(t, router, "POST", "/api/v1/workout/start", `{"program_id": "lower"}`).Code)
	require.Equal(t, http.StatusOK, doJSON(t, router, "PUT", "/api/v1/workout/set",
		`{"exercise": 0, "set": 0, "field": "weight", "value": "120"}`).Code)
	require.Equal(t, http.StatusOK, doJSON(t, router, "PUT", "/api/v1/workout/set",
		`{"exercise": 0, "set": 0, "field": "reps", "value": "10"}`).Code)
	require.Equal(t, http.StatusOK, doJSON(t, router, "POST", "/api/v1/workout/set/toggle",
		`{"exercise": 0, "set": 0}`).Code)
	require.Equal(t, http.StatusOK, doJSON(t, router, "POST", "/api/v1/workout/finish", "").Code)

	w := doJSON(t, router, "GET", "/api/v1/stats/summary", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalSessions":1`)

	w = doJSON(t, router, "GET", "/api/v1/stats/records", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"leg_press":120`)

	w = doJSON(t, router, "GET", "/api/v1/stats/ghost/leg_press", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "GET", "/api/v1/stats/ghost/never_logged", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	t.Run("Success: backup round trip through the API", func(t *testing.T) {
		export := doJSON(t, router, "GET", "/api/v1/backup/export", "")
		require.Equal(t, http.StatusOK, export.Code)

		fresh := setupFullRouter(t)
		w := doJSON(t, fresh, "POST", "/api/v1/backup/import", export.Body.String())
		require.Equal(t, http.StatusOK, w.Code)

		summary := doJSON(t, fresh, "GET", "/api/v1/stats/summary", "")
		assert.Contains(t, summary.Body.String(), `"totalSessions":1`)
	})

	t.Run("Success: clearing history resets the stats", func(t *testing.T) {
		require.Equal(t, http.StatusNoContent, doJSON(t, router, "DELETE", "/api/v1/history", "").Code)

		summary := doJSON(t, router, "GET", "/api/v1/stats/summary", "")
		assert.Contains(t, summary.Body.String(), `"totalSessions":0`)
	})
}

func TestRouter_NutritionAndProfile(t *testing.T) {
	router := setupFullRouter(t)

	w := doJSON(t, router, "POST", "/api/v1/nutrition/checklist/water/up", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"water":1`)

	w = doJSON(t, router, "GET", "/api/v1/nutrition/mealplan", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Breakfast"`)

	w = doJSON(t, router, "PUT", "/api/v1/profile", `{"weight": 80, "height": 180, "age": 25}`)
	require.Equal(t, http.StatusOK, w.Code)

	// The profile change recomputed the nutrition targets.
	w = doJSON(t, router, "GET", "/api/v1/nutrition/targets", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"calories":3298`)

	w = doJSON(t, router, "GET", "/api/v1/profile/bmi", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"category"`)
}
