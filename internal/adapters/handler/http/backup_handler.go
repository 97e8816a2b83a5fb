package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/dkolev/gymtrack/internal/core/domain"
	"github.com/dkolev/gymtrack/internal/core/services"
	"github.com/gin-gonic/gin"
)

type BackupHandler struct {
	svc *services.BackupService
}

func NewBackupHandler(svc *services.BackupService) *BackupHandler {
	return &BackupHandler{
		svc: svc,
	}
}

func (h *BackupHandler) RegisterRoutes(router *gin.RouterGroup) {
	backup := router.Group("/backup")
	{
		backup.GET("/export", h.Export)
		backup.POST("/import", h.Import)
	}

	router.DELETE("/history", h.ClearHistory)
}

func (h *BackupHandler) Export(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="gymtrack-backup.json"`)
	c.JSON(http.StatusOK, h.svc.Export(c.Request.Context()))
}

func (h *BackupHandler) Import(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	if err := h.svc.Import(c.Request.Context(), raw); err != nil {
		if errors.Is(err, domain.ErrBackupInvalid) || errors.Is(err, domain.ErrBackupEmpty) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusOK)
}

func (h *BackupHandler) ClearHistory(c *gin.Context) {
	h.svc.ClearHistory(c.Request.Context())
	c.Status(http.StatusNoContent)
}
