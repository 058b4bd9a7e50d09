package handler

import (
	"context"
	"net/http"

	"saarthi-api/internal/models"

	"github.com/gin-gonic/gin"
)

// StatusHandler reports service and provider health
type StatusHandler struct {
	service ProviderStatusService
}

// ProviderStatusService interface for dependency injection
type ProviderStatusService interface {
	Status(context.Context) models.ProviderStatus
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(svc ProviderStatusService) *StatusHandler {
	return &StatusHandler{service: svc}
}

// Health handles GET /health requests
//
//	@Summary	Liveness probe
//	@Tags		status
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/health [get]
func (h *StatusHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// ProviderStatus handles GET /provider/status requests
//
//	@Summary	Check the provider API key
//	@Tags		status
//	@Produce	json
//	@Success	200	{object}	models.ProviderStatus
//	@Router		/provider/status [get]
func (h *StatusHandler) ProviderStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Status(c.Request.Context()))
}
