package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dkolev/gymtrack/internal/core/domain"
	"github.com/dkolev/gymtrack/internal/core/services"
	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	svc *services.ScheduleService
}

func NewScheduleHandler(svc *services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{
		svc: svc,
	}
}

// setDayRequest assigns a slot: a program id, "rest", or null to clear.
type setDayRequest struct {
	Value *string `json:"value"`
}

func (h *ScheduleHandler) RegisterRoutes(router *gin.RouterGroup) {
	schedule := router.Group("/schedule")
	{
		schedule.GET("", h.Get)
		schedule.PUT("/:day", h.SetDay)
		schedule.GET("/next", h.Next)
	}
}

func (h *ScheduleHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Schedule(c.Request.Context()))
}

func (h *ScheduleHandler) SetDay(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "day must be an integer between 0 and 6"})
		return
	}

	var req setDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.svc.Set(c.Request.Context(), day, req.Value); err != nil {
		if errors.Is(err, domain.ErrInvalidDayIndex) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "day must be an integer between 0 and 6"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusOK)
}

func (h *ScheduleHandler) Next(c *gin.Context) {
	next := h.svc.NextWorkout(c.Request.Context())
	if next == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, next)
}
