package types

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput is matched by MalformedInputError via errors.Is.
	ErrMalformedInput = errors.New("malformed ANLZ input")

	// ErrMissingField is matched by MissingFieldError via errors.Is.
	ErrMissingField = errors.New("field not present")
)

// MalformedInputError is returned when the byte stream does not parse as an
// ANLZ tag container. It is fatal for the load call.
type MalformedInputError struct {
	Path   string
	Offset int64
	Reason string
	Err    error
}

func (e *MalformedInputError) Error() string {
	msg := fmt.Sprintf("%s: malformed ANLZ data at offset %d: %s", e.Path, e.Offset, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrMalformedInput.
func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

// MissingFieldError is returned by an accessor when the requested field was
// never set by the load, either because its tag was absent or because the
// field belongs to the other profile.
type MissingFieldError struct {
	Field Field
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("anlz: no %s found", e.Field.Description())
}

// Is reports whether target is ErrMissingField.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// UnsupportedProfileError is returned when a load is requested with a profile
// other than DAT or EXT, or a profile cannot be derived from a path.
type UnsupportedProfileError struct {
	Path   string
	Reason string
}

func (e *UnsupportedProfileError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("unsupported profile: %s", e.Reason)
	}
	return fmt.Sprintf("%s: unsupported profile: %s", e.Path, e.Reason)
}

// InputTooLargeError is returned when the input exceeds the configured size limit.
type InputTooLargeError struct {
	Path  string
	Size  int64
	Limit int64
}

func (e *InputTooLargeError) Error() string {
	return fmt.Sprintf("%s: input of %d bytes exceeds limit of %d bytes", e.Path, e.Size, e.Limit)
}

// Warning represents a non-fatal issue encountered while loading.
//
// Warnings never abort a load. The usual cause is an expected tag that is
// absent from an otherwise valid container; the matching field is left unset.
type Warning struct {
	// Stage where the warning occurred ("extract")
	Stage string

	// Warning message
	Message string

	// Tag type the warning refers to, if any
	Tag string

	// File offset where the issue occurred (0 if not applicable)
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
