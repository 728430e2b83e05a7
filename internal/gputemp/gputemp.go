// Package gputemp reads GPU temperatures via NVML.
package gputemp

import (
	"context"
	"fmt"
	"sync"

	"codeberg.org/mutker/tempmon/internal/errors"
	"codeberg.org/mutker/tempmon/internal/logger"
	"codeberg.org/mutker/tempmon/internal/sensor"
	"github.com/NVIDIA/go-nvml/pkg/nvml"
)

type Provider struct {
	mu          sync.Mutex
	initialized bool
}

func New() *Provider {
	return &Provider{}
}

func (p *Provider) Name() string {
	return "gputemp"
}

// Available initializes NVML on first call. A system without the NVIDIA
// driver or without any GPU reports unavailable.
func (p *Provider) Available() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return true
	}

	if ret := nvml.Init(); ret != nvml.SUCCESS {
		logger.Debug().Str("nvml", nvml.ErrorString(ret)).Msg("NVML init failed, GPU sensors unavailable")
		return false
	}

	count, ret := nvml.DeviceGetCount()
	if ret != nvml.SUCCESS || count == 0 {
		_ = nvml.Shutdown()
		return false
	}

	p.initialized = true

	return true
}

func (p *Provider) Read(_ context.Context) ([]sensor.RawReading, error) {
	errFactory := errors.New()

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return nil, errFactory.New(ErrNotInitialized)
	}

	count, ret := nvml.DeviceGetCount()
	if ret != nvml.SUCCESS {
		return nil, errFactory.Wrap(ErrDeviceCountFailed, newNVMLError(ret))
	}

	readings := make([]sensor.RawReading, 0, count)
	for i := 0; i < count; i++ {
		device, ret := nvml.DeviceGetHandleByIndex(i)
		if ret != nvml.SUCCESS {
			continue // Skip failed device
		}

		temp, ret := device.GetTemperature(nvml.TEMPERATURE_GPU)
		if ret != nvml.SUCCESS {
			logger.Debug().Int("gpu", i).Str("nvml", nvml.ErrorString(ret)).Msg("GPU temperature read failed, skipping")
			continue
		}

		name, _ := device.GetName()
		if name == "" {
			name = fmt.Sprintf("GPU %d", i)
		}

		readings = append(readings, sensor.RawReading{
			SourceID:    fmt.Sprintf("gpu/%d", i),
			DisplayName: name,
			Type:        sensor.TypeGPU,
			Value:       float64(temp),
			Unit:        sensor.UnitCelsius,
		})
	}

	return readings, nil
}

// Close shuts NVML down. Safe to call on an unavailable provider.
func (p *Provider) Close() error {
	errFactory := errors.New()

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return nil
	}
	p.initialized = false

	if ret := nvml.Shutdown(); ret != nvml.SUCCESS {
		return errFactory.Wrap(ErrShutdownFailed, newNVMLError(ret))
	}

	return nil
}

// Compile-time interface check
var _ sensor.Provider = (*Provider)(nil)
