package hwsensor

import "codeberg.org/mutker/tempmon/internal/errors"

const (
	ErrCommandFailed = errors.ErrorCode("hwsensor_command_failed")
	ErrParseFailed   = errors.ErrorCode("hwsensor_parse_failed")
)
