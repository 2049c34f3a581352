package errors

import "errors"

// Exit codes returned by the crc binary.
const (
	ExitSuccess         = 0
	ExitGeneralError    = 1 // unspecified and filesystem failures
	ExitValidationError = 2 // invalid arguments or configuration
	ExitAlreadyExists   = 5 // target path exists or two components collide
)

var exitCodeNames = map[int]string{
	ExitSuccess:         "Success",
	ExitGeneralError:    "General Error",
	ExitValidationError: "Validation Error",
	ExitAlreadyExists:   "Already Exists",
}

// sentinelExitCodes is checked in order by ExitCodeFromError.
var sentinelExitCodes = []struct {
	sentinel error
	code     int
}{
	{ErrValidation, ExitValidationError},
	{ErrAlreadyExists, ExitAlreadyExists},
	{ErrConflict, ExitAlreadyExists},
}

// ExitError carries the exit code of a failed command to main.
type ExitError struct {
	Err  error
	Code int

	// Printed is set once the command layer has shown the error to the user.
	Printed bool
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError wraps err with an explicit exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError maps err to a process exit code. An ExitError in the
// chain takes precedence over sentinel matching.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	for _, m := range sentinelExitCodes {
		if errors.Is(err, m.sentinel) {
			return m.code
		}
	}
	return ExitGeneralError
}

// ExitCodeName returns a label for code, "Unknown" for codes crc never uses.
func ExitCodeName(code int) string {
	if name, ok := exitCodeNames[code]; ok {
		return name
	}
	return "Unknown"
}
