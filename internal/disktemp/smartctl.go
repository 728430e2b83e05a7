package disktemp

import (
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"codeberg.org/mutker/tempmon/internal/errors"
)

const defaultBinary = "smartctl"

// SmartctlEnumerator implements Enumerator on top of smartmontools.
type SmartctlEnumerator struct {
	bin string
}

func NewSmartctlEnumerator() *SmartctlEnumerator {
	return &SmartctlEnumerator{bin: defaultBinary}
}

func (e *SmartctlEnumerator) ListDisks() ([]Disk, error) {
	errFactory := errors.New()

	if _, err := exec.LookPath(e.bin); err != nil {
		return nil, errFactory.Wrap(ErrScanFailed, err)
	}

	out, err := exec.Command(e.bin, "--scan").Output()
	if err != nil {
		return nil, errFactory.Wrap(ErrScanFailed, err)
	}

	disks := parseScan(string(out))
	for i := range disks {
		disks[i].DisplayName = e.model(disks[i].Device)
	}

	return disks, nil
}

func (e *SmartctlEnumerator) Temperature(device string) (*float64, error) {
	errFactory := errors.New()

	out, err := exec.Command(e.bin, "-A", device).Output()
	if err != nil {
		return nil, errFactory.Wrap(ErrProbeFailed, err)
	}

	return parseTemperature(string(out)), nil
}

// parseScan parses `smartctl --scan` lines of the form
// "/dev/sda -d sat # /dev/sda [SAT], ATA device".
func parseScan(output string) []Disk {
	var disks []Disk
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 || !strings.HasPrefix(fields[0], "/dev/") {
			continue
		}

		device := fields[0]
		interfaceType := ""
		for i := 1; i < len(fields)-1; i++ {
			if fields[i] == "-d" {
				interfaceType = fields[i+1]
				break
			}
		}

		disks = append(disks, Disk{
			ID:            filepath.Base(device),
			Device:        device,
			InterfaceType: interfaceType,
		})
	}

	return disks
}

func (e *SmartctlEnumerator) model(device string) string {
	out, err := exec.Command(e.bin, "-i", device).Output()
	if err != nil {
		return ""
	}

	for _, line := range strings.Split(string(out), "\n") {
		if strings.HasPrefix(line, "Device Model:") {
			return strings.TrimSpace(strings.TrimPrefix(line, "Device Model:"))
		}
		if strings.HasPrefix(line, "Model Number:") {
			return strings.TrimSpace(strings.TrimPrefix(line, "Model Number:"))
		}
	}

	return ""
}

var nvmeTempRe = regexp.MustCompile(`(?m)^Temperature:\s+(\d+)\s+Celsius`)

// parseTemperature extracts the drive temperature from `smartctl -A`
// output. ATA drives report attribute 194 (or 190), NVMe drives a
// "Temperature:" line. Returns nil when the drive exposes neither.
func parseTemperature(output string) *float64 {
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 10 {
			continue
		}
		if fields[0] != "194" && fields[0] != "190" {
			continue
		}
		if !strings.Contains(fields[1], "Temperature") {
			continue
		}

		// RAW_VALUE may carry a suffix like "36 (Min/Max 15/53)".
		if v, err := strconv.ParseFloat(fields[9], 64); err == nil {
			return &v
		}
	}

	if m := nvmeTempRe.FindStringSubmatch(output); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return &v
		}
	}

	return nil
}
