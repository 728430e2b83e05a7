package gputemp

import (
	"codeberg.org/mutker/tempmon/internal/errors"
	"github.com/NVIDIA/go-nvml/pkg/nvml"
)

const (
	ErrNotInitialized        = errors.ErrorCode("gputemp_not_initialized")
	ErrShutdownFailed        = errors.ErrorCode("gputemp_shutdown_failed")
	ErrDeviceCountFailed     = errors.ErrorCode("gputemp_device_count_failed")
	ErrTemperatureReadFailed = errors.ErrorCode("gputemp_temperature_read_failed")
)

// nvmlError represents an NVML-specific error
type nvmlError struct {
	ret nvml.Return
}

func (e *nvmlError) Error() string {
	return nvml.ErrorString(e.ret)
}

// newNVMLError creates an error from an NVML return code
func newNVMLError(ret nvml.Return) error {
	if ret == nvml.SUCCESS {
		return nil
	}

	return &nvmlError{ret: ret}
}
