package handler

import (
	"context"
	"net/http"
	"strconv"

	"saarthi-api/internal/models"

	"github.com/gin-gonic/gin"
)

// SafetyHandler handles single-point safety requests
type SafetyHandler struct {
	service PointSafetyService
}

// PointSafetyService interface for dependency injection
type PointSafetyService interface {
	Factors(context.Context, float64, float64) (models.SafetyFactors, error)
}

// NewSafetyHandler creates a new safety handler
func NewSafetyHandler(svc PointSafetyService) *SafetyHandler {
	return &SafetyHandler{service: svc}
}

// Safety handles GET /safety requests
//
//	@Summary	Safety factors at a coordinate
//	@Tags		safety
//	@Produce	json
//	@Param		lat	query		number	true	"latitude"
//	@Param		lon	query		number	true	"longitude"
//	@Success	200	{object}	models.SafetyFactors
//	@Failure	400	{object}	ErrorResponse
//	@Router		/safety [get]
func (h *SafetyHandler) Safety(c *gin.Context) {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")

	if latStr == "" || lonStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'lat' and 'lon'"})
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude format"})
		return
	}

	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude format"})
		return
	}

	factors, err := h.service.Factors(c.Request.Context(), lat, lon)
	if err != nil {
		respondError(c, err, "no safety data for the specified coordinates")
		return
	}

	c.JSON(http.StatusOK, factors)
}
