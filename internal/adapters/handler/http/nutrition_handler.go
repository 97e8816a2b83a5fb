package http

import (
	"net/http"

	"github.com/dkolev/gymtrack/internal/core/services"
	"github.com/gin-gonic/gin"
)

type NutritionHandler struct {
	svc *services.NutritionService
}

func NewNutritionHandler(svc *services.NutritionService) *NutritionHandler {
	return &NutritionHandler{
		svc: svc,
	}
}

type caloriesRequest struct {
	Calories float64 `json:"calories"`
}

type mealEatenRequest struct {
	Meal     int     `json:"meal"`
	Calories float64 `json:"calories"`
}

type targetsRequest struct {
	Calories *int `json:"calories"`
	Protein  *int `json:"protein"`
	Carbs    *int `json:"carbs"`
	Fat      *int `json:"fat"`
	Fiber    *int `json:"fiber"`
	Calcium  *int `json:"calcium"`
	Water    *int `json:"water"`
}

type remindersRequest struct {
	WaterIntervalMinutes *int  `json:"water_interval_minutes"`
	RemindersEnabled     *bool `json:"reminders_enabled"`
	SoundEnabled         *bool `json:"sound_enabled"`
	NotificationsGranted *bool `json:"notifications_granted"`
	MarkWaterReminded    bool  `json:"mark_water_reminded"`
}

func (h *NutritionHandler) RegisterRoutes(router *gin.RouterGroup) {
	nutrition := router.Group("/nutrition")
	{
		nutrition.GET("/checklist", h.Checklist)
		nutrition.POST("/checklist/vitamin", h.ToggleVitamin)
		nutrition.POST("/checklist/water/up", h.WaterUp)
		nutrition.POST("/checklist/water/down", h.WaterDown)
		nutrition.PUT("/checklist/calories", h.SetCalories)
		nutrition.POST("/checklist/mealplan", h.ToggleMealPlan)
		nutrition.POST("/checklist/meal", h.ToggleMeal)
		nutrition.GET("/targets", h.Targets)
		nutrition.PUT("/targets", h.UpdateTargets)
		nutrition.GET("/mealplan", h.MealPlan)
		nutrition.GET("/reminders", h.Reminders)
		nutrition.PUT("/reminders", h.UpdateReminders)
	}
}

func (h *NutritionHandler) Checklist(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Checklist(c.Request.Context()))
}

func (h *NutritionHandler) ToggleVitamin(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ToggleVitamin(c.Request.Context()))
}

func (h *NutritionHandler) WaterUp(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.IncrementWater(c.Request.Context()))
}

func (h *NutritionHandler) WaterDown(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.DecrementWater(c.Request.Context()))
}

func (h *NutritionHandler) SetCalories(c *gin.Context) {
	var req caloriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.svc.SetCaloriesConsumed(c.Request.Context(), req.Calories))
}

func (h *NutritionHandler) ToggleMealPlan(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ToggleMealPlan(c.Request.Context()))
}

func (h *NutritionHandler) ToggleMeal(c *gin.Context) {
	var req mealEatenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.svc.ToggleMealEaten(c.Request.Context(), req.Meal, req.Calories))
}

func (h *NutritionHandler) Targets(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Targets(c.Request.Context()))
}

func (h *NutritionHandler) UpdateTargets(c *gin.Context) {
	var req targetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	targets := h.svc.UpdateTargets(c.Request.Context(), services.TargetsPatch{
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
		Fiber:    req.Fiber,
		Calcium:  req.Calcium,
		Water:    req.Water,
	})

	c.JSON(http.StatusOK, targets)
}

func (h *NutritionHandler) MealPlan(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.MealPlan(c.Request.Context()))
}

func (h *NutritionHandler) Reminders(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Reminders(c.Request.Context()))
}

func (h *NutritionHandler) UpdateReminders(c *gin.Context) {
	var req remindersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings := h.svc.UpdateReminders(c.Request.Context(), services.RemindersPatch{
		WaterIntervalMinutes: req.WaterIntervalMinutes,
		RemindersEnabled:     req.RemindersEnabled,
		SoundEnabled:         req.SoundEnabled,
		NotificationsGranted: req.NotificationsGranted,
		MarkWaterReminded:    req.MarkWaterReminded,
	})

	c.JSON(http.StatusOK, settings)
}
