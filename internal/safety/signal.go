package safety

import (
	"errors"

	"saarthi-api/internal/models"
)

// failure is the reason a provider call produced no usable value.
type failure int

const (
	failNone failure = iota
	failRateLimited
	failUnsupported
	failStatus
	failMalformed
	failTransport
	failEmpty
)

func (f failure) String() string {
	switch f {
	case failNone:
		return "none"
	case failRateLimited:
		return "rate_limited"
	case failUnsupported:
		return "unsupported"
	case failStatus:
		return "bad_status"
	case failMalformed:
		return "malformed"
	case failEmpty:
		return "empty"
	}
	return "transport"
}

func classifyFailure(err error) failure {
	switch {
	case err == nil:
		return failNone
	case errors.Is(err, models.ErrRateLimited):
		return failRateLimited
	case errors.Is(err, models.ErrUnsupported):
		return failUnsupported
	case errors.Is(err, models.ErrMalformedResponse):
		return failMalformed
	}

	var perr *models.ProviderError
	if errors.As(err, &perr) {
		return failStatus
	}
	return failTransport
}

// signal is the outcome of one provider call: a value, or the reason there is none.
type signal[T any] struct {
	value   T
	failure failure
	err     error
}

func observe[T any](value T, err error) signal[T] {
	return signal[T]{value: value, failure: classifyFailure(err), err: err}
}

// observeCount also treats a successful search that found nothing as missing data.
func observeCount(n int, err error) signal[int] {
	s := observe(n, err)
	if s.ok() && n <= 0 {
		s.failure = failEmpty
	}
	return s
}

func (s signal[T]) ok() bool {
	return s.failure == failNone
}
