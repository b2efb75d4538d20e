package cli

import "errors"

var (
	// ErrUsage is returned for a missing command or missing arguments.
	ErrUsage = errors.New("invalid usage")

	// ErrUnknownCommand is returned for a command other than check, watch or serve.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrInvalidOutput is returned for an output format other than text or json.
	ErrInvalidOutput = errors.New("invalid output format")

	// ErrInvalidValues is returned by check when at least one value fails.
	ErrInvalidValues = errors.New("one or more values are invalid")
)

// ExitCode maps a Run or ParseConfig error to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrUsage), errors.Is(err, ErrUnknownCommand), errors.Is(err, ErrInvalidOutput):
		return 2
	default:
		return 1
	}
}
