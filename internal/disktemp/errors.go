package disktemp

import "codeberg.org/mutker/tempmon/internal/errors"

const (
	ErrScanFailed  = errors.ErrorCode("disktemp_scan_failed")
	ErrProbeFailed = errors.ErrorCode("disktemp_probe_failed")
)
