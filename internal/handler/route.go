package handler

import (
	"context"
	"net/http"

	"saarthi-api/internal/models"

	"github.com/gin-gonic/gin"
)

const noRoutesMessage = "no routes found, refine your search"

// RouteHandler handles route search requests
type RouteHandler struct {
	service RouteSearchService
}

// RouteSearchService interface for dependency injection
type RouteSearchService interface {
	SearchRoutes(ctx context.Context, from, to string) (*models.RouteSearchResult, error)
	PlanRoutes(ctx context.Context, start, end models.Location) (*models.RouteSearchResult, error)
}

// PlanRoutesRequest is the body of POST /routes
type PlanRoutesRequest struct {
	Start *models.Location `json:"start" binding:"required"`
	End   *models.Location `json:"end" binding:"required"`
}

// NewRouteHandler creates a new route handler
func NewRouteHandler(svc RouteSearchService) *RouteHandler {
	return &RouteHandler{service: svc}
}

// SearchRoutes handles GET /routes requests
//
//	@Summary	Scored routes between two addresses
//	@Tags		routes
//	@Produce	json
//	@Param		from	query		string	true	"start address"
//	@Param		to		query		string	true	"destination address"
//	@Success	200		{object}	models.RouteSearchResult
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	429		{object}	ErrorResponse
//	@Failure	502		{object}	ErrorResponse
//	@Failure	503		{object}	ErrorResponse
//	@Router		/routes [get]
func (h *RouteHandler) SearchRoutes(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")

	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'from' and 'to'"})
		return
	}

	result, err := h.service.SearchRoutes(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err, noRoutesMessage)
		return
	}

	c.JSON(http.StatusOK, result)
}

// PlanRoutes handles POST /routes requests
//
//	@Summary	Scored routes between two coordinates
//	@Tags		routes
//	@Accept		json
//	@Produce	json
//	@Param		request	body		PlanRoutesRequest	true	"start and end"
//	@Success	200		{object}	models.RouteSearchResult
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/routes [post]
func (h *RouteHandler) PlanRoutes(c *gin.Context) {
	var req PlanRoutesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must contain 'start' and 'end' locations"})
		return
	}

	result, err := h.service.PlanRoutes(c.Request.Context(), *req.Start, *req.End)
	if err != nil {
		respondError(c, err, noRoutesMessage)
		return
	}

	c.JSON(http.StatusOK, result)
}
