package models

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidAPIKey means the provider rejected the API key (HTTP 403). It is not retryable.
	ErrInvalidAPIKey = errors.New("provider api key is invalid or not activated")
	// ErrRateLimited means the provider throttled the request (HTTP 429).
	ErrRateLimited = errors.New("provider rate limit exceeded")
	// ErrUnsupported means the provider endpoint was not found (HTTP 404).
	ErrUnsupported = errors.New("provider endpoint not found")
	// ErrNoResults means a geocode or route search returned nothing.
	ErrNoResults = errors.New("no results found")
	// ErrInvalidInput means the caller supplied an empty address or out-of-range coordinate.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnavailable means the provider could not be reached or timed out.
	ErrUnavailable = errors.New("provider unavailable")
	// ErrMalformedResponse means the provider payload could not be decoded.
	ErrMalformedResponse = errors.New("malformed provider response")
)

// ProviderError is a non-2xx answer from the geo provider.
type ProviderError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: provider returned status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: provider returned status %d: %s", e.Op, e.StatusCode, e.Body)
}

// Unwrap maps well-known status codes onto the sentinel errors above.
func (e *ProviderError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusForbidden:
		return ErrInvalidAPIKey
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusNotFound:
		return ErrUnsupported
	}
	return nil
}
