package sensor

import "time"

// SensorType identifies the kind of component a reading belongs to.
// The set is open: providers may introduce new types, and classification
// falls back to default thresholds for types without an explicit entry.
type SensorType string

const (
	TypeCPUPackage SensorType = "cpu_package"
	TypeCPUCore    SensorType = "cpu_core"
	TypeGPU        SensorType = "gpu"
	TypeDisk       SensorType = "disk"
	TypeNVMe       SensorType = "nvme"
	TypeUnknown    SensorType = "unknown"
)

// Unit represents a temperature unit. Celsius is canonical; providers
// are expected to convert before emitting readings.
type Unit string

const UnitCelsius Unit = "celsius"

// Status represents the health classification of a reading. It is always
// derived from the reading's value, never stored independently.
type Status string

const (
	StatusNormal   Status = "normal"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
)

// RawReading is a single unclassified data point produced by a provider
// for one collection cycle.
type RawReading struct {
	SourceID    string
	DisplayName string
	Type        SensorType
	Value       float64
	Unit        Unit
}

// Record is a normalized reading with its computed status. A record
// belongs to exactly one snapshot.
type Record struct {
	RawReading
	Status    Status
	Timestamp time.Time
}

// Summary aggregates the records of one snapshot. Hottest and Coolest
// always reference entries of the same snapshot.
type Summary struct {
	Average       float64
	Hottest       Record
	Coolest       Record
	WarningCount  int
	CriticalCount int
}

// Snapshot is the complete classified and aggregated result of one
// collection cycle. Immutable once built.
type Snapshot struct {
	ID      string
	Records []Record
	Summary Summary
}
