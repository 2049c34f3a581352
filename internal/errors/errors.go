// Package errors provides sentinel errors for the crc CLI.
package errors

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates malformed or missing CLI input or configuration.
	ErrValidation = errors.New("validation error")

	// ErrAlreadyExists indicates the target component path already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrConflict indicates two requested components resolve to the same path.
	ErrConflict = errors.New("conflicting components")

	// ErrFilesystem indicates a directory creation or file write failure.
	ErrFilesystem = errors.New("filesystem error")

	// ErrNotFound indicates a file or directory was not found.
	ErrNotFound = errors.New("not found")
)

// DetailError is an error rendered for the terminal. Type and Message are
// always set; the other fields are printed only when present.
type DetailError struct {
	Type     string
	Message  string
	Location string // file or directory the error refers to
	Field    string // config key, for configuration errors
	Context  map[string]string
	Hint     string
	Cause    error
}

func (e *DetailError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Error: %s\n", e.Type)
	writeDetail(&b, "Location", e.Location)
	writeDetail(&b, "Field", e.Field)
	for _, k := range slices.Sorted(maps.Keys(e.Context)) {
		writeDetail(&b, k, e.Context[k])
	}
	fmt.Fprintf(&b, "\n  %s\n", e.Message)
	if e.Hint != "" {
		fmt.Fprintf(&b, "\nHint: %s\n", e.Hint)
	}
	return b.String()
}

func (e *DetailError) Unwrap() error {
	return e.Cause
}

func writeDetail(b *strings.Builder, key, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "  %s: %s\n", key, value)
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, field, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Field:    field,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewAlreadyExistsError reports a path that would be overwritten.
func NewAlreadyExistsError(path string) error {
	return &DetailError{
		Type:     "already exists",
		Message:  fmt.Sprintf("Folder already exists at %s", path),
		Location: path,
		Hint:     "Choose a different component name or remove the existing folder.",
		Cause:    ErrAlreadyExists,
	}
}

// NewFileExistsError reports a single file that would be overwritten.
func NewFileExistsError(path string) error {
	return &DetailError{
		Type:     "already exists",
		Message:  fmt.Sprintf("File already exists at %s", path),
		Location: path,
		Hint:     "Remove the existing file or choose a different component name.",
		Cause:    ErrAlreadyExists,
	}
}

// NewConflictError reports two arguments that resolve to the same directory.
func NewConflictError(first, second, path string) error {
	return &DetailError{
		Type:     "conflicting components",
		Message:  fmt.Sprintf("%q and %q both resolve to %s", first, second, path),
		Location: path,
		Hint:     "Pass each component name only once.",
		Cause:    ErrConflict,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// WrapFilesystem marks err as a filesystem failure while keeping it unwrappable.
func WrapFilesystem(err error, msg string) error {
	return fmt.Errorf("%s: %w: %w", msg, ErrFilesystem, err)
}
