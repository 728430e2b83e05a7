package disktemp_test

import (
	"context"
	"testing"

	"codeberg.org/mutker/tempmon/internal/disktemp"
	"codeberg.org/mutker/tempmon/internal/errors"
	"codeberg.org/mutker/tempmon/internal/sensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEnumerator struct {
	disks    []disktemp.Disk
	listErr  error
	temps    map[string]*float64
	probeErr map[string]error
}

func (f *fakeEnumerator) ListDisks() ([]disktemp.Disk, error) {
	return f.disks, f.listErr
}

func (f *fakeEnumerator) Temperature(device string) (*float64, error) {
	if err, ok := f.probeErr[device]; ok {
		return nil, err
	}

	return f.temps[device], nil
}

func temp(v float64) *float64 { return &v }

func TestReadSkipsFailedAndEmptyProbes(t *testing.T) {
	errFactory := errors.New()
	enum := &fakeEnumerator{
		disks: []disktemp.Disk{
			{ID: "sda", Device: "/dev/sda", DisplayName: "WDC WD40EFRX", InterfaceType: "sat"},
			{ID: "sdb", Device: "/dev/sdb", InterfaceType: "sat"},
			{ID: "nvme0", Device: "/dev/nvme0", DisplayName: "Samsung SSD 980", InterfaceType: "NVMe"},
			{ID: "sdc", Device: "/dev/sdc", InterfaceType: "sat"},
		},
		temps: map[string]*float64{
			"/dev/sda":   temp(38),
			"/dev/sdb":   nil, // no reading, never zero
			"/dev/nvme0": temp(45),
		},
		probeErr: map[string]error{
			"/dev/sdc": errFactory.New(disktemp.ErrProbeFailed),
		},
	}

	p := disktemp.New(enum)
	require.True(t, p.Available())

	readings, err := p.Read(context.Background())
	require.NoError(t, err)
	require.Len(t, readings, 2)

	assert.Equal(t, "disk/sda", readings[0].SourceID)
	assert.Equal(t, "WDC WD40EFRX", readings[0].DisplayName)
	assert.Equal(t, sensor.TypeDisk, readings[0].Type)
	assert.InDelta(t, 38.0, readings[0].Value, 0.0001)

	assert.Equal(t, "disk/nvme0", readings[1].SourceID)
	assert.Equal(t, sensor.TypeNVMe, readings[1].Type)
}

func TestReadPropagatesListFailure(t *testing.T) {
	errFactory := errors.New()
	enum := &fakeEnumerator{listErr: errFactory.New(disktemp.ErrScanFailed)}

	p := disktemp.New(enum)
	assert.False(t, p.Available())

	_, err := p.Read(context.Background())
	require.Error(t, err)
}

func TestDisplayNameFallsBackToDevice(t *testing.T) {
	enum := &fakeEnumerator{
		disks: []disktemp.Disk{{ID: "sda", Device: "/dev/sda", InterfaceType: "sat"}},
		temps: map[string]*float64{"/dev/sda": temp(30)},
	}

	readings, err := disktemp.New(enum).Read(context.Background())
	require.NoError(t, err)
	require.Len(t, readings, 1)
	assert.Equal(t, "/dev/sda", readings[0].DisplayName)
}

func TestTypeForInterface(t *testing.T) {
	tests := []struct {
		interfaceType string
		want          sensor.SensorType
	}{
		{"NVMe", sensor.TypeNVMe},
		{"nvme", sensor.TypeNVMe},
		{"PCIe", sensor.TypeNVMe},
		{"SATA", sensor.TypeDisk},
		{"sat", sensor.TypeDisk},
		{"scsi", sensor.TypeDisk},
		{"", sensor.TypeDisk},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, disktemp.TypeForInterface(tt.interfaceType), tt.interfaceType)
	}
}
