package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/mutker/tempmon/internal/collector"
	"codeberg.org/mutker/tempmon/internal/config"
	"codeberg.org/mutker/tempmon/internal/disktemp"
	"codeberg.org/mutker/tempmon/internal/errors"
	"codeberg.org/mutker/tempmon/internal/gputemp"
	"codeberg.org/mutker/tempmon/internal/hwsensor"
	"codeberg.org/mutker/tempmon/internal/logger"
	"codeberg.org/mutker/tempmon/internal/pid"
	"codeberg.org/mutker/tempmon/internal/sensor"
)

var (
	cfg         *config.Config
	metrics     collector.Collector
	gpuProvider *gputemp.Provider
)

func init() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Debug, cfg.Verbose, logger.IsService())
	logger.Debug().Msg("Config loaded")

	var candidates []sensor.Provider
	if cfg.Hardware {
		candidates = append(candidates, hwsensor.New())
	}
	if cfg.Disks {
		candidates = append(candidates, disktemp.New(disktemp.NewSmartctlEnumerator()))
	}
	if cfg.GPU {
		gpuProvider = gputemp.New()
		candidates = append(candidates, gpuProvider)
	}

	metrics, err = collector.New(collector.Config{
		TTL:        cfg.TTL(),
		Thresholds: cfg.ThresholdTable(),
	}, candidates...)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize collector")
	}
}

func main() {
	if err := pid.Write(); err != nil {
		logger.Fatal().Err(err).Msg("failed to write PID file")
	}
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleSignals(cancel)

	if err := loop(ctx); err != nil {
		logger.Error().Err(err).Msg("error in main loop")
	}
}

func loop(ctx context.Context) error {
	errFactory := errors.New()
	if cfg.Interval <= 0 {
		return errFactory.New(errors.ErrInvalidConfig)
	}

	interval := time.Duration(cfg.Interval) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	report(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			report(ctx)
		}
	}
}

func report(ctx context.Context) {
	snapshot, err := metrics.Collect(ctx)
	if err != nil {
		if errors.IsCode(err, collector.ErrUnavailable) {
			logger.Warn().Msg("No sensor data available")
		} else {
			logger.Error().Err(err).Msg("Snapshot collection failed")
		}

		return
	}

	summary := snapshot.Summary
	logger.Info().
		Int("sensors", len(snapshot.Records)).
		Float64("average", summary.Average).
		Str("hottest", summary.Hottest.DisplayName).
		Float64("hottest_temp", summary.Hottest.Value).
		Int("warning", summary.WarningCount).
		Int("critical", summary.CriticalCount).
		Msg("Temperatures collected")

	for _, r := range snapshot.Records {
		if r.Status == sensor.StatusNormal {
			continue
		}
		logger.Warn().
			Str("sensor", r.DisplayName).
			Str("status", string(r.Status)).
			Float64("temperature", r.Value).
			Msg("Sensor above threshold")
	}
}

func handleSignals(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	logger.Info().Msg("Shutting down")
	cancel()
}

func cleanup() {
	if gpuProvider != nil {
		if err := gpuProvider.Close(); err != nil {
			logger.Warn().Err(err).Msg("GPU shutdown failed")
		}
	}

	if err := pid.Remove(); err != nil {
		logger.Warn().Err(err).Msg("failed to remove PID file")
	}
	logger.Info().Msg("Exiting")
}
