// Package failure defines the driver's terminal error taxonomy and the
// JSON payload written to standard error. The category strings are part
// of the wire contract with the calling pipeline and must not change.
package failure

import (
	"encoding/json"
	"fmt"
	"io"
)

// Category identifies one of the recognized failure kinds. The taxonomy
// is flat and exhaustive: callers branch on the category string.
type Category string

const (
	// MissingArgument means no PDF path was supplied on the command line.
	MissingArgument Category = "No PDF path provided"

	// FileNotFound means the supplied path does not refer to an existing file.
	FileNotFound Category = "File not found"

	// ExtractionFailure covers any error raised by the detection capability,
	// from malformed PDF bytes to internal library failures.
	ExtractionFailure Category = "PDF extraction failed"
)

// Error is a terminal driver failure carrying the machine-readable
// category alongside the human-readable detail.
type Error struct {
	Category Category
	Message  string
	cause    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

// Unwrap exposes the underlying cause, if any, for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.cause
}

// New builds a failure with a fixed detail message.
func New(category Category, message string) *Error {
	return &Error{Category: category, Message: message}
}

// Newf builds a failure with a formatted detail message.
func Newf(category Category, format string, args ...any) *Error {
	return &Error{Category: category, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an ExtractionFailure around an error raised by the
// detection capability, keeping it as the cause and using its text as
// the detail.
func Wrap(err error) *Error {
	return &Error{Category: ExtractionFailure, Message: err.Error(), cause: err}
}

// Payload is the JSON object written to standard error on failure.
type Payload struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Emit writes the failure as a single JSON line to w. The driver always
// passes standard error; nothing else may be written to that stream.
func Emit(w io.Writer, e *Error) error {
	payload := Payload{Error: string(e.Category), Message: e.Message}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode error payload: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("failed to write error payload: %w", err)
	}
	return nil
}
