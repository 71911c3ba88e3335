package anlz

import (
	"io"

	"go.uber.org/zap"

	"github.com/simonhull/anlz/internal/tag"
)

// Option configures a load.
//
// Options use the functional options pattern:
//
//	db, err := anlz.Load(anlz.ProfileDAT, "ANLZ0000.DAT",
//	    anlz.WithLogger(log),
//	    anlz.WithMaxSize(4<<20),
//	)
type Option func(*loadOptions)

// decodeFunc is the tag decoder consulted by a load.
type decodeFunc func(r io.ReaderAt, size int64, path string) ([]tag.Tag, error)

// loadOptions holds configuration for one load call.
type loadOptions struct {
	logger         *zap.Logger
	ignoreWarnings bool  // Drop collected warnings
	maxSize        int64 // Maximum input size in bytes (0 = no limit)
	decode         decodeFunc
}

// defaultOptions returns the default configuration.
func defaultOptions() *loadOptions {
	return &loadOptions{
		logger: Logger(),
		decode: tag.Decode,
	}
}

func applyOptions(opts []Option) *loadOptions {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithLogger sets the logger for a single load, overriding the package logger.
//
// Missing tags are logged at warn level, cue counts at info level and
// decoding progress at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(o *loadOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithIgnoreWarnings discards the warnings collected in Database.Warnings.
//
// Missing tags are still logged; only the returned slice stays empty.
func WithIgnoreWarnings() Option {
	return func(o *loadOptions) {
		o.ignoreWarnings = true
	}
}

// WithMaxSize rejects inputs larger than the given number of bytes before
// anything is decoded.
//
// Default is 0 (no limit). Real analysis files are well under a megabyte,
// so a limit protects batch tooling from misnamed media files.
func WithMaxSize(bytes int64) Option {
	return func(o *loadOptions) {
		o.maxSize = bytes
	}
}

// withDecoder replaces the tag decoder. Used by tests.
func withDecoder(fn decodeFunc) Option {
	return func(o *loadOptions) {
		o.decode = fn
	}
}
