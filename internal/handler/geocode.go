package handler

import (
	"context"
	"net/http"

	"saarthi-api/internal/models"

	"github.com/gin-gonic/gin"
)

// GeoCodeHandler handles geocoding requests
type GeoCodeHandler struct {
	service GeoCodeService
}

// Service interface for dependency injection
type GeoCodeService interface {
	Geocode(context.Context, string) (models.Location, error)
}

// NewGeoCodeHandler creates a new geocode handler
func NewGeoCodeHandler(svc GeoCodeService) *GeoCodeHandler {
	return &GeoCodeHandler{service: svc}
}

// GeoCode handles GET /geocode requests
//
//	@Summary	Geocode an address
//	@Tags		geocoding
//	@Produce	json
//	@Param		q	query		string	true	"free-text address"
//	@Success	200	{object}	models.Location
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	502	{object}	ErrorResponse
//	@Router		/geocode [get]
func (h *GeoCodeHandler) GeoCode(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'q'"})
		return
	}

	location, err := h.service.Geocode(c.Request.Context(), query)
	if err != nil {
		respondError(c, err, "no results found, try a more specific address")
		return
	}

	c.JSON(http.StatusOK, location)
}
