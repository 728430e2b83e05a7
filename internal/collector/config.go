package collector

import (
	"time"

	"codeberg.org/mutker/tempmon/internal/errors"
	"codeberg.org/mutker/tempmon/internal/sensor"
)

// DefaultTTL is the maximum age of a cached snapshot before a request
// triggers a fresh provider fan-out.
const DefaultTTL = 1000 * time.Millisecond

type Config struct {
	TTL        time.Duration
	Thresholds sensor.ThresholdTable
}

func DefaultConfig() Config {
	return Config{
		TTL: DefaultTTL,
	}
}

func (c Config) Validate() error {
	errFactory := errors.New()
	if c.TTL <= 0 {
		return errFactory.New(errors.ErrInvalidTTL)
	}
	return nil
}
