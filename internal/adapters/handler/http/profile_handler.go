package http

import (
	"net/http"

	"github.com/dkolev/gymtrack/internal/core/services"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	svc *services.ProfileService
}

func NewProfileHandler(svc *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		svc: svc,
	}
}

type updateProfileRequest struct {
	Name   *string  `json:"name"`
	Weight *float64 `json:"weight"`
	Height *float64 `json:"height"`
	Age    *int     `json:"age"`
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile")
	{
		profile.GET("", h.Get)
		profile.PUT("", h.Update)
		profile.GET("/bmi", h.BMI)
		profile.GET("/calories", h.SuggestedCalories)
		profile.GET("/water-goal", h.WaterGoal)
	}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Profile(c.Request.Context()))
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile := h.svc.Update(c.Request.Context(), services.ProfilePatch{
		Name:   req.Name,
		Weight: req.Weight,
		Height: req.Height,
		Age:    req.Age,
	})

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) BMI(c *gin.Context) {
	bmi := h.svc.BMI(c.Request.Context())
	if bmi == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, bmi)
}

func (h *ProfileHandler) SuggestedCalories(c *gin.Context) {
	calories := h.svc.SuggestedCalories(c.Request.Context())
	if calories == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, calories)
}

func (h *ProfileHandler) WaterGoal(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"glasses": h.svc.WaterGoal(c.Request.Context())})
}
