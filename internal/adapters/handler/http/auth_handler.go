package http

import (
	"errors"
	"net/http"

	"github.com/dkolev/gymtrack/internal/core/services"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service *services.TokenService
}

func NewAuthHandler(service *services.TokenService) *AuthHandler {
	return &AuthHandler{
		service: service,
	}
}

type loginRequest struct {
	PIN string `json:"pin" binding:"required"`
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.service.Authenticate(req.PIN)
	if err != nil {
		if errors.Is(err, services.ErrWrongPIN) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "wrong pin"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
