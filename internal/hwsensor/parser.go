package hwsensor

import (
	"encoding/json"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"codeberg.org/mutker/tempmon/internal/errors"
	"codeberg.org/mutker/tempmon/internal/sensor"
)

// Readings below this are disconnected sensors reporting absolute zero.
const minPlausibleTemp = -200

// chipTypeMap maps chip name prefixes to sensor types.
var chipTypeMap = []struct {
	prefix     string
	sensorType sensor.SensorType
}{
	{"coretemp", sensor.TypeCPUCore},
	{"k10temp", sensor.TypeCPUPackage},
	{"zenpower", sensor.TypeCPUPackage},
	{"amdgpu", sensor.TypeGPU},
	{"radeon", sensor.TypeGPU},
	{"nouveau", sensor.TypeGPU},
	{"nvidia", sensor.TypeGPU},
	{"i915", sensor.TypeGPU},
	{"nvme", sensor.TypeNVMe},
	{"drivetemp", sensor.TypeDisk},
}

// InferType determines the sensor type from a chip name and label.
// Package-level readings on CPU chips ("Package id 0") classify as
// cpu_package rather than cpu_core.
func InferType(chip, label string) sensor.SensorType {
	lower := strings.ToLower(chip)
	for _, entry := range chipTypeMap {
		if !strings.HasPrefix(lower, entry.prefix) {
			continue
		}
		if entry.sensorType == sensor.TypeCPUCore && strings.HasPrefix(strings.ToLower(label), "package") {
			return sensor.TypeCPUPackage
		}

		return entry.sensorType
	}

	return sensor.TypeUnknown
}

// ParseJSON parses `sensors -j` output. Chips and labels are walked in
// sorted order so reading order is deterministic across cycles.
func ParseJSON(out []byte) ([]sensor.RawReading, error) {
	errFactory := errors.New()

	var data map[string]json.RawMessage
	if err := json.Unmarshal(out, &data); err != nil {
		return nil, errFactory.Wrap(ErrParseFailed, err)
	}

	chipNames := make([]string, 0, len(data))
	for name := range data {
		chipNames = append(chipNames, name)
	}
	sort.Strings(chipNames)

	var readings []sensor.RawReading
	for _, chipName := range chipNames {
		var chip map[string]json.RawMessage
		if err := json.Unmarshal(data[chipName], &chip); err != nil {
			continue
		}

		labels := make([]string, 0, len(chip))
		for label := range chip {
			if label != "Adapter" {
				labels = append(labels, label)
			}
		}
		sort.Strings(labels)

		for _, label := range labels {
			var fields map[string]float64
			if err := json.Unmarshal(chip[label], &fields); err != nil {
				continue
			}

			temp, ok := tempInput(fields)
			if !ok || temp < minPlausibleTemp {
				continue
			}

			readings = append(readings, sensor.RawReading{
				SourceID:    chipName + "/" + label,
				DisplayName: label,
				Type:        InferType(chipName, label),
				Value:       temp,
				Unit:        sensor.UnitCelsius,
			})
		}
	}

	return readings, nil
}

func tempInput(fields map[string]float64) (float64, bool) {
	for key, value := range fields {
		if strings.Contains(key, "temp") && strings.HasSuffix(key, "_input") {
			return value, true
		}
	}

	return 0, false
}

var (
	adapterRe = regexp.MustCompile(`^Adapter:\s+`)
	tempValRe = regexp.MustCompile(`([+-]?\d+\.?\d*)°C`)
)

// ParseText parses the human-readable `sensors` output. Lines without a
// temperature value (fans, voltages, threshold continuations) are
// skipped.
func ParseText(output string) []sensor.RawReading {
	var readings []sensor.RawReading
	var currentChip string

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if adapterRe.MatchString(line) {
			continue
		}

		// Chip headers sit at column zero without a colon.
		if !strings.HasPrefix(line, " ") && !strings.Contains(line, ":") {
			currentChip = strings.TrimSpace(line)
			continue
		}

		if !strings.Contains(line, "°C") || currentChip == "" {
			continue
		}

		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		label := strings.TrimSpace(line[:idx])

		m := tempValRe.FindStringSubmatch(line[idx+1:])
		if m == nil {
			continue
		}
		temp, err := strconv.ParseFloat(m[1], 64)
		if err != nil || temp < minPlausibleTemp {
			continue
		}

		readings = append(readings, sensor.RawReading{
			SourceID:    currentChip + "/" + label,
			DisplayName: label,
			Type:        InferType(currentChip, label),
			Value:       temp,
			Unit:        sensor.UnitCelsius,
		})
	}

	return readings
}
