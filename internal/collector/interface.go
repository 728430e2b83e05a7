package collector

import (
	"context"

	"codeberg.org/mutker/tempmon/internal/sensor"
)

// Collector defines the core domain interface
type Collector interface {
	// Collect returns the current metrics snapshot, rebuilding it when
	// the cached one is missing or older than the TTL. It returns either
	// a complete snapshot or an ErrUnavailable-coded error, never a
	// partial snapshot.
	Collect(ctx context.Context) (*sensor.Snapshot, error)

	// Providers returns the names of the active providers, in
	// registration order.
	Providers() []string
}
