// Package errors defines the coded error type shared by every colplot
// surface. A Code names what went wrong in machine-readable form, the
// message says it in words, and an optional cause keeps the original
// error reachable through the standard errors.Is and errors.As.
//
// Codes group by affix:
//   - INVALID_*, SHAPE_MISMATCH, STYLE_COUNT, TOO_MANY_COLUMNS: rejected input
//   - *_NOT_FOUND: missing resources
//   - CACHE_ERROR, STORE_ERROR: storage backends
//   - RENDER_FAILED, INTERNAL_ERROR: failures past validation
//
// The CLI prints UserMessage and the HTTP server maps codes to status
// lines, so new code paths should pick (or add) a code rather than
// return bare errors.
//
//	err := errors.New(errors.ErrCodeShapeMismatch, "x has %d rows, y has %d", xr, yr)
//
//	if errors.Is(err, errors.ErrCodeShapeMismatch) {
//		fmt.Println(errors.UserMessage(err))
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code is a stable, machine-readable error identifier.
type Code string

// Error codes recognized across the CLI and HTTP API.
const (
	// Rejected input
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidFigType  Code = "INVALID_FIG_TYPE"
	ErrCodeInvalidStyle    Code = "INVALID_STYLE"
	ErrCodeStyleCount      Code = "STYLE_COUNT"
	ErrCodeShapeMismatch   Code = "SHAPE_MISMATCH"
	ErrCodeTooManyColumns  Code = "TOO_MANY_COLUMNS"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidDataset  Code = "INVALID_DATASET"
	ErrCodeInvalidManifest Code = "INVALID_MANIFEST"
	ErrCodeInvalidPath     Code = "INVALID_PATH"

	// Missing resources
	ErrCodeNotFound         Code = "NOT_FOUND"
	ErrCodeFigureNotFound   Code = "FIGURE_NOT_FOUND"
	ErrCodeScenarioNotFound Code = "SCENARIO_NOT_FOUND"
	ErrCodeFileNotFound     Code = "FILE_NOT_FOUND"

	// Storage backends
	ErrCodeCache Code = "CACHE_ERROR"
	ErrCodeStore Code = "STORE_ERROR"

	// Rendering
	ErrCodeRenderFailed Code = "RENDER_FAILED"

	// Everything else
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error pairs a Code with a human-readable message. Cause, when set, is
// the wrapped error and stays reachable via Unwrap.
type Error struct {
	Code    Code   // stable identifier, e.g. SHAPE_MISMATCH
	Message string // what UserMessage shows to users
	Cause   error  // wrapped error, may be nil
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

// Unwrap exposes the cause to errors.Is and errors.As chains.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New builds an Error from a code and a Sprintf-style message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap attaches a code and message to an existing error, keeping the
// cause in the unwrap chain.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether the first coded error in err's chain carries code.
// Wrapping a coded error in another coded error shadows the inner code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode returns the code of the first *Error in err's chain, or the
// empty string when there is none.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage strips the code prefix for display. Errors without a code
// pass through unchanged.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
