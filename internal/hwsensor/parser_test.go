package hwsensor_test

import (
	"testing"

	"codeberg.org/mutker/tempmon/internal/hwsensor"
	"codeberg.org/mutker/tempmon/internal/sensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sensorsJSON = `{
  "nvme-pci-0300": {
    "Adapter": "PCI adapter",
    "Composite": {"temp1_input": 36.9, "temp1_max": 81.8, "temp1_crit": 84.8}
  },
  "coretemp-isa-0000": {
    "Adapter": "ISA adapter",
    "Package id 0": {"temp1_input": 48.0, "temp1_max": 101.0, "temp1_crit": 115.0},
    "Core 0": {"temp2_input": 46.0, "temp2_max": 101.0, "temp2_crit": 115.0},
    "Core 1": {"temp3_input": 45.0, "temp3_max": 101.0, "temp3_crit": 115.0}
  }
}`

const sensorsText = `iwlwifi_1-virtual-0
Adapter: Virtual device
temp1:        +35.0°C

nvme-pci-0300
Adapter: PCI adapter
Composite:    +36.9°C  (low  = -273.1°C, high = +81.8°C)
                       (crit = +84.8°C)

coretemp-isa-0000
Adapter: ISA adapter
Package id 0:  +48.0°C  (high = +101.0°C, crit = +115.0°C)
Core 0:        +46.0°C  (high = +101.0°C, crit = +115.0°C)
Core 1:        +45.0°C  (high = +101.0°C, crit = +115.0°C)

it8728-isa-0a30
Adapter: ISA adapter
in0:          +1.02 V
fan1:        1080 RPM
temp1:        +38.0°C  (low  = +127.0°C, high = +127.0°C)
`

func TestParseJSON(t *testing.T) {
	readings, err := hwsensor.ParseJSON([]byte(sensorsJSON))
	require.NoError(t, err)
	require.Len(t, readings, 4)

	// Chips and labels walk in sorted order.
	assert.Equal(t, "coretemp-isa-0000/Core 0", readings[0].SourceID)
	assert.Equal(t, sensor.TypeCPUCore, readings[0].Type)
	assert.InDelta(t, 46.0, readings[0].Value, 0.0001)

	assert.Equal(t, "coretemp-isa-0000/Package id 0", readings[2].SourceID)
	assert.Equal(t, sensor.TypeCPUPackage, readings[2].Type)

	assert.Equal(t, "nvme-pci-0300/Composite", readings[3].SourceID)
	assert.Equal(t, sensor.TypeNVMe, readings[3].Type)
	assert.InDelta(t, 36.9, readings[3].Value, 0.0001)

	for _, r := range readings {
		assert.Equal(t, sensor.UnitCelsius, r.Unit)
	}
}

func TestParseJSONInvalid(t *testing.T) {
	_, err := hwsensor.ParseJSON([]byte("not json"))
	require.Error(t, err)
}

func TestParseText(t *testing.T) {
	readings := hwsensor.ParseText(sensorsText)
	require.Len(t, readings, 6)

	byID := make(map[string]sensor.RawReading, len(readings))
	for _, r := range readings {
		byID[r.SourceID] = r
	}

	core0, ok := byID["coretemp-isa-0000/Core 0"]
	require.True(t, ok)
	assert.InDelta(t, 46.0, core0.Value, 0.0001)
	assert.Equal(t, sensor.TypeCPUCore, core0.Type)

	pkg, ok := byID["coretemp-isa-0000/Package id 0"]
	require.True(t, ok)
	assert.Equal(t, sensor.TypeCPUPackage, pkg.Type)

	composite, ok := byID["nvme-pci-0300/Composite"]
	require.True(t, ok)
	assert.InDelta(t, 36.9, composite.Value, 0.0001)
	assert.Equal(t, sensor.TypeNVMe, composite.Type)

	// Voltage and fan lines are not readings; unknown chips still parse.
	board, ok := byID["it8728-isa-0a30/temp1"]
	require.True(t, ok)
	assert.Equal(t, sensor.TypeUnknown, board.Type)
}

func TestInferType(t *testing.T) {
	tests := []struct {
		chip  string
		label string
		want  sensor.SensorType
	}{
		{"coretemp-isa-0000", "Core 3", sensor.TypeCPUCore},
		{"coretemp-isa-0000", "Package id 0", sensor.TypeCPUPackage},
		{"k10temp-pci-00c3", "Tctl", sensor.TypeCPUPackage},
		{"amdgpu-pci-0600", "edge", sensor.TypeGPU},
		{"nvme-pci-0300", "Composite", sensor.TypeNVMe},
		{"drivetemp-scsi-0-0", "temp1", sensor.TypeDisk},
		{"it8728-isa-0a30", "temp1", sensor.TypeUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, hwsensor.InferType(tt.chip, tt.label), "%s/%s", tt.chip, tt.label)
	}
}
