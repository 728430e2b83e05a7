package sensor

import "context"

// Provider abstracts a temperature data source (hardware sensor chips,
// disk controllers, GPUs).
type Provider interface {
	// Name returns a short identifier used in logs
	Name() string

	// Available reports whether the data source can be read on this
	// system. It must never panic; internal failures translate to false.
	Available() bool

	// Read returns the current readings of this source. A failed Read
	// is isolated by the caller and yields no readings for that cycle.
	Read(ctx context.Context) ([]RawReading, error)
}
