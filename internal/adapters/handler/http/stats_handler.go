package http

import (
	"net/http"

	"github.com/dkolev/gymtrack/internal/core/services"
	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	svc *services.StatsService
}

func NewStatsHandler(svc *services.StatsService) *StatsHandler {
	return &StatsHandler{
		svc: svc,
	}
}

func (h *StatsHandler) RegisterRoutes(router *gin.RouterGroup) {
	stats := router.Group("/stats")
	{
		stats.GET("/summary", h.Summary)
		stats.GET("/heatmap", h.Heatmap)
		stats.GET("/trend", h.Trend)
		stats.GET("/streak", h.Streak)
		stats.GET("/achievements", h.Achievements)
		stats.GET("/records", h.Records)
		stats.GET("/ghost/:exercise", h.Ghost)
	}
}

func (h *StatsHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Summary(c.Request.Context()))
}

func (h *StatsHandler) Heatmap(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Heatmap(c.Request.Context()))
}

func (h *StatsHandler) Trend(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.WeeklyTrend(c.Request.Context()))
}

func (h *StatsHandler) Streak(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"streak": h.svc.Streak(c.Request.Context())})
}

func (h *StatsHandler) Achievements(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Achievements(c.Request.Context()))
}

func (h *StatsHandler) Records(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.PersonalRecords(c.Request.Context()))
}

// Ghost returns the most recent performance of an exercise, used to show
// last-time numbers next to the current set inputs.
func (h *StatsHandler) Ghost(c *gin.Context) {
	ghost := h.svc.Ghost(c.Request.Context(), c.Param("exercise"))
	if ghost == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, ghost)
}
