package service

import (
	"context"
	"errors"
	"fmt"

	"saarthi-api/internal/models"
)

// Pinger interface for dependency injection
type Pinger interface {
	Ping(ctx context.Context) error
}

// ProviderStatusService checks that the provider accepts the API key
type ProviderStatusService struct {
	pinger Pinger
}

// NewProviderStatusService creates a new provider status service
func NewProviderStatusService(pinger Pinger) *ProviderStatusService {
	return &ProviderStatusService{pinger: pinger}
}

// Status reports whether the provider answered a probe request.
func (s *ProviderStatusService) Status(ctx context.Context) models.ProviderStatus {
	err := s.pinger.Ping(ctx)
	if err == nil {
		return models.ProviderStatus{Working: true, Message: "API key is working"}
	}

	var perr *models.ProviderError
	switch {
	case errors.Is(err, models.ErrInvalidAPIKey):
		return models.ProviderStatus{Message: "API key is invalid or not activated"}
	case errors.As(err, &perr):
		return models.ProviderStatus{Message: fmt.Sprintf("provider returned status %d", perr.StatusCode)}
	default:
		return models.ProviderStatus{Message: fmt.Sprintf("provider check failed: %v", err)}
	}
}
