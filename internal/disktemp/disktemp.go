// Package disktemp reads drive temperatures through a disk-enumeration
// collaborator. Each disk gets one probe per cycle; a failed or empty
// probe skips that disk without aborting the others.
package disktemp

import (
	"context"
	"strings"

	"codeberg.org/mutker/tempmon/internal/logger"
	"codeberg.org/mutker/tempmon/internal/sensor"
)

// Disk describes one enumerated drive.
type Disk struct {
	ID            string
	Device        string
	DisplayName   string
	InterfaceType string
}

// Enumerator is the disk-enumeration collaborator.
type Enumerator interface {
	// ListDisks returns the drives visible on this system
	ListDisks() ([]Disk, error)

	// Temperature probes one drive. A nil result means "no reading",
	// never zero degrees.
	Temperature(device string) (*float64, error)
}

type Provider struct {
	enum Enumerator
}

func New(enum Enumerator) *Provider {
	return &Provider{enum: enum}
}

func (p *Provider) Name() string {
	return "disktemp"
}

func (p *Provider) Available() bool {
	if p.enum == nil {
		return false
	}
	_, err := p.enum.ListDisks()

	return err == nil
}

func (p *Provider) Read(_ context.Context) ([]sensor.RawReading, error) {
	disks, err := p.enum.ListDisks()
	if err != nil {
		return nil, err
	}

	var readings []sensor.RawReading
	for _, d := range disks {
		temp, err := p.enum.Temperature(d.Device)
		if err != nil {
			logger.Debug().Str("device", d.Device).Err(err).Msg("Disk probe failed, skipping")
			continue
		}
		if temp == nil {
			continue
		}

		name := d.DisplayName
		if name == "" {
			name = d.Device
		}

		readings = append(readings, sensor.RawReading{
			SourceID:    "disk/" + d.ID,
			DisplayName: name,
			Type:        TypeForInterface(d.InterfaceType),
			Value:       *temp,
			Unit:        sensor.UnitCelsius,
		})
	}

	return readings, nil
}

// TypeForInterface infers the sensor type from a drive's interface type
// string, compared case-insensitively. NVMe and PCIe drives classify as
// nvme, everything else as disk.
func TypeForInterface(interfaceType string) sensor.SensorType {
	switch strings.ToLower(interfaceType) {
	case "nvme", "pcie":
		return sensor.TypeNVMe
	default:
		return sensor.TypeDisk
	}
}

// Compile-time interface check
var _ sensor.Provider = (*Provider)(nil)
