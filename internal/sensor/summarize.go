package sensor

import "codeberg.org/mutker/tempmon/internal/errors"

// Summarize builds a Summary from a non-empty list of classified records.
// Hottest and coolest ties resolve to the first such record in input
// order. Warning and critical counts are mutually exclusive.
func Summarize(records []Record) (Summary, error) {
	if len(records) == 0 {
		errFactory := errors.New()
		return Summary{}, errFactory.New(ErrNoRecords)
	}

	var (
		sum      float64
		hottest  int
		coolest  int
		warning  int
		critical int
	)

	for i, r := range records {
		sum += r.Value

		if r.Value > records[hottest].Value {
			hottest = i
		}
		if r.Value < records[coolest].Value {
			coolest = i
		}

		switch r.Status {
		case StatusWarning:
			warning++
		case StatusCritical:
			critical++
		}
	}

	return Summary{
		Average:       sum / float64(len(records)),
		Hottest:       records[hottest],
		Coolest:       records[coolest],
		WarningCount:  warning,
		CriticalCount: critical,
	}, nil
}
