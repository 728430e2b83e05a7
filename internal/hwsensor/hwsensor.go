// Package hwsensor reads temperature sensors exposed by lm-sensors.
// It prefers the JSON output of `sensors -j` and falls back to parsing
// the human-readable text output on older lm-sensors installations.
package hwsensor

import (
	"context"
	"os/exec"

	"codeberg.org/mutker/tempmon/internal/errors"
	"codeberg.org/mutker/tempmon/internal/sensor"
)

const defaultBinary = "sensors"

type Provider struct {
	bin string
}

func New() *Provider {
	return &Provider{bin: defaultBinary}
}

func (p *Provider) Name() string {
	return "hwsensor"
}

func (p *Provider) Available() bool {
	path, err := exec.LookPath(p.bin)

	return err == nil && path != ""
}

func (p *Provider) Read(ctx context.Context) ([]sensor.RawReading, error) {
	errFactory := errors.New()

	out, err := exec.CommandContext(ctx, p.bin, "-j").Output()
	if err == nil {
		readings, parseErr := ParseJSON(out)
		if parseErr == nil {
			return readings, nil
		}
	}

	out, err = exec.CommandContext(ctx, p.bin).Output()
	if err != nil {
		return nil, errFactory.Wrap(ErrCommandFailed, err)
	}

	return ParseText(string(out)), nil
}

// Compile-time interface check
var _ sensor.Provider = (*Provider)(nil)
