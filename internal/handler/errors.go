package handler

import (
	"context"
	"errors"
	"net/http"

	"saarthi-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrorResponse is the body of every non-2xx answer
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps a service error onto a status code. notFound is the
// message used when the provider found nothing.
func respondError(c *gin.Context, err error, notFound string) {
	var perr *models.ProviderError

	switch {
	case errors.Is(err, models.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNoResults):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
	case errors.Is(err, models.ErrInvalidAPIKey):
		msg := models.ErrInvalidAPIKey.Error()
		if errors.As(err, &perr) && perr.Body != "" {
			msg = perr.Body
		}
		log.Error().Err(err).Msg("provider rejected api key")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": msg})
	case errors.Is(err, models.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "provider rate limit exceeded"})
	case errors.Is(err, context.Canceled):
		// client went away; nobody reads the body
		c.Status(499)
	case errors.As(err, &perr), errors.Is(err, models.ErrUnavailable),
		errors.Is(err, models.ErrMalformedResponse), errors.Is(err, context.DeadlineExceeded):
		log.Error().Err(err).Msg("provider request failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "routing provider unavailable"})
	default:
		log.Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
