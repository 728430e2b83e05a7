package collector

import "codeberg.org/mutker/tempmon/internal/errors"

const (
	// Configuration Errors
	ErrInvalidConfig = errors.ErrInvalidConfig

	// Collection Errors
	ErrUnavailable   = errors.ErrUnavailable
	ErrProviderRead  = errors.ErrorCode("collector_provider_read_failed")
	ErrProviderPanic = errors.ErrorCode("collector_provider_panicked")
	ErrAggregate     = errors.ErrorCode("collector_aggregate_failed")
)
