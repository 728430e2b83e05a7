package sensor

import "codeberg.org/mutker/tempmon/internal/errors"

const (
	// ErrNoRecords is a precondition violation: Summarize must never be
	// invoked with an empty record list.
	ErrNoRecords = errors.ErrorCode("sensor_no_records")
)
