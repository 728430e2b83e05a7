package sensor

// Thresholds holds the boundaries separating the health states for one
// sensor type. Boundaries are inclusive toward the more severe state.
type Thresholds struct {
	Warning  float64
	Critical float64
}

// ThresholdTable maps sensor types to their thresholds. The table is
// read-only at runtime; values may be sourced from configuration.
type ThresholdTable map[SensorType]Thresholds

// defaultPair applies to sensor types without an explicit table entry.
var defaultPair = Thresholds{Warning: 80, Critical: 90}

// DefaultThresholds returns the built-in threshold table.
func DefaultThresholds() ThresholdTable {
	return ThresholdTable{
		TypeCPUPackage: {Warning: 80, Critical: 85},
		TypeCPUCore:    {Warning: 80, Critical: 85},
		TypeGPU:        {Warning: 85, Critical: 95},
		TypeNVMe:       {Warning: 70, Critical: 80},
		TypeDisk:       {Warning: 50, Critical: 60},
	}
}

// Classify maps a temperature value to a health status using the table's
// thresholds for the given sensor type.
func (t ThresholdTable) Classify(value float64, sensorType SensorType) Status {
	pair, ok := t[sensorType]
	if !ok {
		pair = defaultPair
	}

	switch {
	case value >= pair.Critical:
		return StatusCritical
	case value >= pair.Warning:
		return StatusWarning
	default:
		return StatusNormal
	}
}

// Classify classifies against the built-in threshold table.
func Classify(value float64, sensorType SensorType) Status {
	return DefaultThresholds().Classify(value, sensorType)
}
