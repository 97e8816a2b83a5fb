package http

import (
	"errors"
	"net/http"

	"github.com/dkolev/gymtrack/internal/core/domain"
	"github.com/dkolev/gymtrack/internal/core/services"
	"github.com/gin-gonic/gin"
)

type WorkoutHandler struct {
	svc *services.SessionService
}

func NewWorkoutHandler(svc *services.SessionService) *WorkoutHandler {
	return &WorkoutHandler{
		svc: svc,
	}
}

type startWorkoutRequest struct {
	ProgramID string `json:"program_id" binding:"required"`
	Force     bool   `json:"force"`
}

type updateSetRequest struct {
	Exercise int    `json:"exercise"`
	Set      int    `json:"set"`
	Field    string `json:"field" binding:"required"`
	Value    string `json:"value"`
}

type setRefRequest struct {
	Exercise int `json:"exercise"`
	Set      int `json:"set"`
}

type addSetRequest struct {
	Exercise int `json:"exercise"`
}

type swapExerciseRequest struct {
	Exercise      int    `json:"exercise"`
	NewExerciseID string `json:"new_exercise_id" binding:"required"`
	Permanent     bool   `json:"permanent"`
}

func (h *WorkoutHandler) RegisterRoutes(router *gin.RouterGroup) {
	workout := router.Group("/workout")
	{
		workout.GET("", h.Active)
		workout.POST("/start", h.Start)
		workout.POST("/finish", h.Finish)
		workout.POST("/cancel", h.Cancel)
		workout.PUT("/set", h.UpdateSet)
		workout.POST("/set/toggle", h.ToggleSet)
		workout.POST("/set/add", h.AddSet)
		workout.POST("/set/remove", h.RemoveSet)
		workout.POST("/swap", h.Swap)
		workout.POST("/reorder", h.Reorder)
	}

	router.GET("/history", h.History)
	router.GET("/history/last", h.Last)
}

// sessionError maps session state machine errors to HTTP statuses.
func sessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNoActiveWorkout):
		c.JSON(http.StatusNotFound, gin.H{"error": "no active workout"})
	case errors.Is(err, domain.ErrWorkoutInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": "a workout is already in progress"})
	case errors.Is(err, domain.ErrExerciseIndex), errors.Is(err, domain.ErrSetIndex),
		errors.Is(err, domain.ErrLastSet), errors.Is(err, domain.ErrUnknownSetField):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrProgramNotFound), errors.Is(err, domain.ErrExerciseNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func (h *WorkoutHandler) Active(c *gin.Context) {
	active := h.svc.Active()
	if active == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, active)
}

func (h *WorkoutHandler) Start(c *gin.Context) {
	var req startWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	active, err := h.svc.Start(c.Request.Context(), req.ProgramID, req.Force)
	if err != nil {
		sessionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, active)
}

func (h *WorkoutHandler) Finish(c *gin.Context) {
	session, err := h.svc.Finish(c.Request.Context())
	if err != nil {
		sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *WorkoutHandler) Cancel(c *gin.Context) {
	if err := h.svc.Cancel(c.Request.Context()); err != nil {
		sessionError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WorkoutHandler) UpdateSet(c *gin.Context) {
	var req updateSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.svc.UpdateSet(c.Request.Context(), req.Exercise, req.Set, req.Field, req.Value); err != nil {
		sessionError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *WorkoutHandler) ToggleSet(c *gin.Context) {
	var req setRefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.svc.ToggleSetDone(c.Request.Context(), req.Exercise, req.Set); err != nil {
		sessionError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *WorkoutHandler) AddSet(c *gin.Context) {
	var req addSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.svc.AddSet(c.Request.Context(), req.Exercise); err != nil {
		sessionError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *WorkoutHandler) RemoveSet(c *gin.Context) {
	var req setRefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.svc.RemoveSet(c.Request.Context(), req.Exercise, req.Set); err != nil {
		sessionError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *WorkoutHandler) Swap(c *gin.Context) {
	var req swapExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.svc.SwapExercise(c.Request.Context(), req.Exercise, req.NewExerciseID, req.Permanent); err != nil {
		sessionError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *WorkoutHandler) Reorder(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.svc.ReorderExercise(c.Request.Context(), req.From, req.To); err != nil {
		sessionError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *WorkoutHandler) History(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.History(c.Request.Context()))
}

func (h *WorkoutHandler) Last(c *gin.Context) {
	last := h.svc.LastSession(c.Request.Context())
	if last == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, last)
}
