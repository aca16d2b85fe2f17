package unitfile

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors returned by unit file operations
var (
	// ErrNoName indicates an identity with an empty unit name
	ErrNoName = errors.New("unitfile: unit name not specified")

	// ErrBadName indicates a unit name that cannot form a file name
	ErrBadName = errors.New("unitfile: invalid unit name")

	// ErrUnknownKind indicates an unrecognized unit kind or extension
	ErrUnknownKind = errors.New("unitfile: unknown unit kind")

	// ErrNoTemplate indicates a template name with no catalog entry
	ErrNoTemplate = errors.New("unitfile: no such template")
)

// ParseError reports malformed unit file text. The in-memory configuration
// is left untouched when Parse fails.
type ParseError struct {
	// Line is the 1-based line number of the offending input line
	Line int
	// Text is the offending line with surrounding whitespace trimmed
	Text string
	// Reason describes what was wrong with the line
	Reason string
}

// Error returns a formatted error message
func (e *ParseError) Error() string {
	return fmt.Sprintf("unitfile: parse line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// ValidationError carries the blocking problems that made Save refuse to
// touch the filesystem. Warnings are included so callers can surface the
// complete picture in one place.
type ValidationError struct {
	// Errors are the blocking rule violations
	Errors []string
	// Warnings are the non-blocking findings from the same run
	Warnings []string
}

// Error returns a summary listing every blocking violation
func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return "unitfile: validation: " + e.Errors[0]
	}
	return fmt.Sprintf("unitfile: validation: %d errors: %s",
		len(e.Errors), strings.Join(e.Errors, "; "))
}

// Store operation steps reported by StoreError
const (
	// StepWriteUnit is the primary unit file write
	StepWriteUnit = "write-unit"
	// StepDropin is the drop-in directory and README creation
	StepDropin = "write-dropin"
	// StepRemoveDropin is the drop-in directory removal
	StepRemoveDropin = "remove-dropin"
	// StepRemoveUnit is the primary unit file removal
	StepRemoveUnit = "remove-unit"
	// StepReadUnit is the primary unit file read during Load
	StepReadUnit = "read-unit"
)

// StoreError represents a filesystem failure during a Store operation. Step
// names which part of the operation failed; artifacts touched by earlier
// steps stay as they are.
type StoreError struct {
	// Step is the operation step that failed
	Step string
	// Path is the file path involved
	Path string
	// Err is the underlying error
	Err error
}

// Error returns a formatted error message
func (e *StoreError) Error() string {
	return fmt.Sprintf("unitfile: %s %q: %v", e.Step, e.Path, e.Err)
}

// Unwrap returns the underlying error for error chain inspection
func (e *StoreError) Unwrap() error {
	return e.Err
}
