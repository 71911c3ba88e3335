package anlz

import (
	"github.com/simonhull/anlz/internal/types"
)

// MalformedInputError is returned when the data is not a valid ANLZ container.
// Re-exported from internal/types.
type MalformedInputError = types.MalformedInputError

// MissingFieldError is returned by an accessor whose field was never set.
// Re-exported from internal/types.
type MissingFieldError = types.MissingFieldError

// UnsupportedProfileError is returned for a profile other than DAT or EXT.
// Re-exported from internal/types.
type UnsupportedProfileError = types.UnsupportedProfileError

// InputTooLargeError is returned when WithMaxSize rejects an input.
// Re-exported from internal/types.
type InputTooLargeError = types.InputTooLargeError

// Warning is a non-fatal issue recorded during a load.
// Re-exported from internal/types.
type Warning = types.Warning

var (
	// ErrMalformedInput matches any MalformedInputError with errors.Is.
	ErrMalformedInput = types.ErrMalformedInput

	// ErrMissingField matches any MissingFieldError with errors.Is.
	ErrMissingField = types.ErrMissingField
)
