package collector

import (
	"context"
	"sync"
	"time"

	"codeberg.org/mutker/tempmon/internal/errors"
	"codeberg.org/mutker/tempmon/internal/logger"
	"codeberg.org/mutker/tempmon/internal/sensor"
	"github.com/google/uuid"
)

type service struct {
	providers []sensor.Provider
	table     sensor.ThresholdTable
	ttl       time.Duration

	rebuildMu sync.Mutex // serializes cache-miss rebuilds

	cacheMu  sync.RWMutex
	snapshot *sensor.Snapshot
	builtAt  time.Time
}

// New probes the candidate providers in the given order and builds a
// collector over the available ones. Probe failures exclude a candidate
// but never abort startup. The active set is fixed for the lifetime of
// the collector.
func New(cfg Config, candidates ...sensor.Provider) (Collector, error) {
	errFactory := errors.New()

	if err := cfg.Validate(); err != nil {
		return nil, errFactory.Wrap(ErrInvalidConfig, err)
	}

	table := cfg.Thresholds
	if table == nil {
		table = sensor.DefaultThresholds()
	}

	active := make([]sensor.Provider, 0, len(candidates))
	for _, p := range candidates {
		if probe(p) {
			logger.Info().Str("provider", p.Name()).Msg("Sensor provider registered")
			active = append(active, p)
			continue
		}
		logger.Info().Str("provider", p.Name()).Msg("Sensor provider unavailable, excluded")
	}

	if len(active) == 0 {
		logger.Warn().Msg("No sensor providers available; collector is degraded")
	}

	return &service{
		providers: active,
		table:     table,
		ttl:       cfg.TTL,
	}, nil
}

// probe calls Available with panic containment so a misbehaving
// candidate cannot abort startup.
func probe(p sensor.Provider) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn().Str("provider", p.Name()).Interface("panic", r).Msg("Availability probe panicked")
			ok = false
		}
	}()

	return p.Available()
}

func (s *service) Providers() []string {
	names := make([]string, 0, len(s.providers))
	for _, p := range s.providers {
		names = append(names, p.Name())
	}

	return names
}

func (s *service) Collect(ctx context.Context) (*sensor.Snapshot, error) {
	if snap, ok := s.cached(); ok {
		return snap, nil
	}

	// Concurrent cache-missers share one rebuild: whoever wins the lock
	// computes, the rest re-check the cache and return the fresh result.
	s.rebuildMu.Lock()
	defer s.rebuildMu.Unlock()

	if snap, ok := s.cached(); ok {
		return snap, nil
	}

	errFactory := errors.New()

	if len(s.providers) == 0 {
		return nil, errFactory.New(ErrUnavailable)
	}

	readings := s.readAll(ctx)
	if len(readings) == 0 {
		// The cache keeps its previous (stale) snapshot untouched.
		return nil, errFactory.WithMessage(ErrUnavailable, "no sensor readings this cycle")
	}

	now := time.Now()
	records := make([]sensor.Record, 0, len(readings))
	for _, raw := range readings {
		records = append(records, sensor.Record{
			RawReading: raw,
			Status:     s.table.Classify(raw.Value, raw.Type),
			Timestamp:  now,
		})
	}

	summary, err := sensor.Summarize(records)
	if err != nil {
		logger.ErrorWithCode(errFactory.Wrap(ErrAggregate, err)).Msg("Snapshot aggregation failed")
		return nil, errFactory.Wrap(ErrUnavailable, err)
	}

	snap := &sensor.Snapshot{
		ID:      uuid.NewString(),
		Records: records,
		Summary: summary,
	}

	s.cacheMu.Lock()
	s.snapshot = snap
	s.builtAt = now
	s.cacheMu.Unlock()

	logger.Debug().
		Str("snapshot_id", snap.ID).
		Int("records", len(records)).
		Float64("average", summary.Average).
		Msg("Snapshot rebuilt")

	return snap, nil
}

func (s *service) cached() (*sensor.Snapshot, bool) {
	s.cacheMu.RLock()
	defer s.cacheMu.RUnlock()

	if s.snapshot == nil || time.Since(s.builtAt) >= s.ttl {
		return nil, false
	}

	return s.snapshot, true
}

// readAll fans out to every active provider in parallel and assembles
// the results in registration order, not completion order. Providers'
// internal reading order is preserved within each slot.
func (s *service) readAll(ctx context.Context) []sensor.RawReading {
	results := make([][]sensor.RawReading, len(s.providers))

	var wg sync.WaitGroup
	for i, p := range s.providers {
		wg.Add(1)
		go func(i int, p sensor.Provider) {
			defer wg.Done()

			readings, err := read(ctx, p)
			if err != nil {
				logger.Warn().Str("provider", p.Name()).Err(err).Msg("Provider read failed, no readings this cycle")
				return
			}
			results[i] = readings
		}(i, p)
	}
	wg.Wait()

	var all []sensor.RawReading
	for _, readings := range results {
		all = append(all, readings...)
	}

	return all
}

// read isolates a single provider call; a panic is converted to an error
// so one faulty provider cannot take down the whole cycle.
func read(ctx context.Context, p sensor.Provider) (readings []sensor.RawReading, err error) {
	defer func() {
		if r := recover(); r != nil {
			errFactory := errors.New()
			err = errFactory.WithData(ErrProviderPanic, r)
			readings = nil
		}
	}()

	return p.Read(ctx)
}
