package http

import (
	"errors"
	"net/http"

	"github.com/dkolev/gymtrack/internal/core/domain"
	"github.com/dkolev/gymtrack/internal/core/services"
	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	svc *services.CatalogService
}

func NewCatalogHandler(svc *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		svc: svc,
	}
}

type createExerciseRequest struct {
	Name        string `json:"name"`
	Muscle      string `json:"muscle"`
	Image       string `json:"image"`
	Tips        string `json:"tips"`
	DefaultSets int    `json:"default_sets"`
	DefaultReps int    `json:"default_reps"`
}

type updateExerciseRequest struct {
	Name        *string `json:"name"`
	Muscle      *string `json:"muscle"`
	Image       *string `json:"image"`
	Tips        *string `json:"tips"`
	DefaultSets *int    `json:"default_sets"`
	DefaultReps *int    `json:"default_reps"`
}

type createProgramRequest struct {
	Name      string   `json:"name"`
	Muscles   []string `json:"muscles"`
	Exercises []string `json:"exercises"`
}

type updateProgramRequest struct {
	Name      *string  `json:"name"`
	Muscles   []string `json:"muscles"`
	Exercises []string `json:"exercises"`
}

type reorderRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

type swapRequest struct {
	OldExerciseID string `json:"old_exercise_id" binding:"required"`
	NewExerciseID string `json:"new_exercise_id" binding:"required"`
}

func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	exercises := router.Group("/exercises")
	{
		exercises.GET("", h.ListExercises)
		exercises.POST("", h.CreateExercise)
		exercises.GET("/:id", h.GetExercise)
		exercises.PUT("/:id", h.UpdateExercise)
		exercises.DELETE("/:id", h.DeleteExercise)
	}

	programs := router.Group("/programs")
	{
		programs.GET("", h.ListPrograms)
		programs.POST("", h.CreateProgram)
		programs.GET("/:id", h.GetProgram)
		programs.PUT("/:id", h.UpdateProgram)
		programs.DELETE("/:id", h.DeleteProgram)
		programs.POST("/:id/reorder", h.ReorderProgram)
		programs.POST("/:id/swap", h.SwapProgram)
	}

	router.POST("/catalog/reset", h.Reset)
}

func (h *CatalogHandler) ListExercises(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Exercises(c.Request.Context()))
}

func (h *CatalogHandler) GetExercise(c *gin.Context) {
	exercise, err := h.svc.ExerciseByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "exercise not found"})
		return
	}
	c.JSON(http.StatusOK, exercise)
}

func (h *CatalogHandler) CreateExercise(c *gin.Context) {
	var req createExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exercise := h.svc.AddExercise(c.Request.Context(), services.ExerciseInput{
		Name:        req.Name,
		Muscle:      req.Muscle,
		Image:       req.Image,
		Tips:        req.Tips,
		DefaultSets: req.DefaultSets,
		DefaultReps: req.DefaultReps,
	})

	c.JSON(http.StatusCreated, exercise)
}

func (h *CatalogHandler) UpdateExercise(c *gin.Context) {
	var req updateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.svc.UpdateExercise(c.Request.Context(), c.Param("id"), services.ExercisePatch{
		Name:        req.Name,
		Muscle:      req.Muscle,
		Image:       req.Image,
		Tips:        req.Tips,
		DefaultSets: req.DefaultSets,
		DefaultReps: req.DefaultReps,
	})

	c.Status(http.StatusOK)
}

func (h *CatalogHandler) DeleteExercise(c *gin.Context) {
	h.svc.DeleteExercise(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) ListPrograms(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Programs(c.Request.Context()))
}

func (h *CatalogHandler) GetProgram(c *gin.Context) {
	program, err := h.svc.ProgramByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "program not found"})
		return
	}
	c.JSON(http.StatusOK, program)
}

func (h *CatalogHandler) CreateProgram(c *gin.Context) {
	var req createProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	program := h.svc.AddProgram(c.Request.Context(), services.ProgramInput{
		Name:      req.Name,
		Muscles:   req.Muscles,
		Exercises: req.Exercises,
	})

	c.JSON(http.StatusCreated, program)
}

func (h *CatalogHandler) UpdateProgram(c *gin.Context) {
	var req updateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.svc.UpdateProgram(c.Request.Context(), c.Param("id"), services.ProgramPatch{
		Name:      req.Name,
		Muscles:   req.Muscles,
		Exercises: req.Exercises,
	})

	c.Status(http.StatusOK)
}

func (h *CatalogHandler) DeleteProgram(c *gin.Context) {
	h.svc.DeleteProgram(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) ReorderProgram(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.svc.ReorderExerciseInProgram(c.Request.Context(), c.Param("id"), req.From, req.To)
	if err != nil {
		if errors.Is(err, domain.ErrProgramNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "program not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusOK)
}

func (h *CatalogHandler) SwapProgram(c *gin.Context) {
	var req swapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.svc.SwapInProgram(c.Request.Context(), c.Param("id"), req.OldExerciseID, req.NewExerciseID)
	c.Status(http.StatusOK)
}

func (h *CatalogHandler) Reset(c *gin.Context) {
	h.svc.ResetToDefaults(c.Request.Context())
	c.Status(http.StatusOK)
}
