// Package binary provides bounds-checked big-endian primitives for reading and
// building ANLZ containers.
package binary

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrOutOfBounds is matched by every BoundsError via errors.Is.
var ErrOutOfBounds = errors.New("read out of bounds")

// BoundsError is returned when a read would leave the readable window.
// Offsets are absolute positions in the underlying file.
type BoundsError struct {
	Path   string
	What   string
	Offset int64
	Length int
	Limit  int64
}

func (e *BoundsError) Error() string {
	if e.Offset >= e.Limit {
		return fmt.Sprintf("%s: offset %d out of bounds (limit: %d) while reading %s",
			e.Path, e.Offset, e.Limit, e.What)
	}
	return fmt.Sprintf("%s: read of %d bytes at offset %d would exceed limit %d while reading %s",
		e.Path, e.Length, e.Offset, e.Limit, e.What)
}

// Is reports whether target is ErrOutOfBounds.
func (e *BoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// SafeReader wraps io.ReaderAt with a readable window [base, base+size).
// All offsets passed to its methods are relative to base.
type SafeReader struct {
	r    io.ReaderAt
	path string
	base int64
	size int64
}

// NewSafeReader creates a new SafeReader covering the first size bytes of r.
func NewSafeReader(r io.ReaderAt, size int64, path string) *SafeReader {
	return &SafeReader{
		r:    r,
		size: size,
		path: path,
	}
}

// Path returns the file path associated with this reader.
func (sr *SafeReader) Path() string {
	return sr.path
}

// Size returns the length of the readable window.
func (sr *SafeReader) Size() int64 {
	return sr.size
}

// Sub returns a reader restricted to length bytes starting at off.
func (sr *SafeReader) Sub(off, length int64, what string) (*SafeReader, error) {
	if off < 0 || length < 0 || off+length > sr.size {
		return nil, &BoundsError{
			Path:   sr.path,
			What:   what,
			Offset: sr.base + off,
			Length: int(length),
			Limit:  sr.base + sr.size,
		}
	}
	return &SafeReader{
		r:    sr.r,
		path: sr.path,
		base: sr.base + off,
		size: length,
	}, nil
}

// ReadAt reads len(b) bytes at the given offset with context for error messages.
func (sr *SafeReader) ReadAt(b []byte, off int64, what string) error {
	if off < 0 || off+int64(len(b)) > sr.size {
		return &BoundsError{
			Path:   sr.path,
			What:   what,
			Offset: sr.base + off,
			Length: len(b),
			Limit:  sr.base + sr.size,
		}
	}
	if len(b) == 0 {
		return nil
	}

	n, err := sr.r.ReadAt(b, sr.base+off)
	if err != nil && err != io.EOF {
		return fmt.Errorf("%s: failed to read %s at offset %d: %w", sr.path, what, sr.base+off, err)
	}

	if n < len(b) {
		return fmt.Errorf("%s: short read for %s at offset %d: got %d bytes, expected %d: %w",
			sr.path, what, sr.base+off, n, len(b), io.ErrUnexpectedEOF)
	}

	return nil
}

// Read reads a big-endian value of type T from the given offset.
func Read[T uint8 | uint16 | uint32 | uint64](sr *SafeReader, off int64, what string) (T, error) {
	var zero T
	buf := make([]byte, sizeOf[T]())
	if err := sr.ReadAt(buf, off, what); err != nil {
		return zero, err
	}

	var val T
	switch any(zero).(type) {
	case uint8:
		val = T(buf[0])
	case uint16:
		val = T(binary.BigEndian.Uint16(buf))
	case uint32:
		val = T(binary.BigEndian.Uint32(buf))
	case uint64:
		val = T(binary.BigEndian.Uint64(buf))
	}

	return val, nil
}

func sizeOf[T uint8 | uint16 | uint32 | uint64]() int {
	var zero T
	switch any(zero).(type) {
	case uint16:
		return 2
	case uint32:
		return 4
	case uint64:
		return 8
	default:
		return 1
	}
}

// Reader provides sequential reading with automatic offset tracking.
type Reader struct {
	*SafeReader
	offset int64
}

// NewReader creates a new Reader starting at the given offset.
func NewReader(sr *SafeReader, offset int64) *Reader {
	return &Reader{
		SafeReader: sr,
		offset:     offset,
	}
}

// ReadValue reads a numeric value and advances the offset.
func ReadValue[T uint8 | uint16 | uint32 | uint64](r *Reader, what string) (T, error) {
	val, err := Read[T](r.SafeReader, r.offset, what)
	if err != nil {
		var zero T
		return zero, err
	}

	r.offset += int64(sizeOf[T]())
	return val, nil
}

// ReadBytes reads n bytes and advances the offset.
func (r *Reader) ReadBytes(n int, what string) ([]byte, error) {
	if n < 0 {
		return nil, &BoundsError{Path: r.path, What: what, Offset: r.base + r.offset, Length: n, Limit: r.base + r.size}
	}
	buf := make([]byte, n)
	if err := r.SafeReader.ReadAt(buf, r.offset, what); err != nil {
		return nil, err
	}

	r.offset += int64(n)
	return buf, nil
}

// ReadString reads a string of the given length and advances the offset.
func (r *Reader) ReadString(length int, what string) (string, error) {
	buf, err := r.ReadBytes(length, what)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// Skip advances the offset by n bytes.
func (r *Reader) Skip(n int64) {
	r.offset += n
}

// Offset returns the current offset.
func (r *Reader) Offset() int64 {
	return r.offset
}

// ChainReader allows chaining multiple reads with deferred error checking.
// This avoids repetitive "if err != nil" checks in fixed-layout headers.
type ChainReader struct {
	*Reader
	err error
}

// NewChainReader creates a new ChainReader.
func NewChainReader(r *Reader) *ChainReader {
	return &ChainReader{Reader: r}
}

// ReadChained reads a value with deferred error checking.
// If a previous read failed, returns zero value without attempting read.
func ReadChained[T uint8 | uint16 | uint32 | uint64](cr *ChainReader, what string) T {
	if cr.err != nil {
		var zero T
		return zero
	}

	val, err := ReadValue[T](cr.Reader, what)
	if err != nil {
		cr.err = err
		var zero T
		return zero
	}

	return val
}

// String reads a string, accumulating any error.
func (cr *ChainReader) String(length int, what string) string {
	if cr.err != nil {
		return ""
	}

	val, err := cr.Reader.ReadString(length, what)
	if err != nil {
		cr.err = err
		return ""
	}

	return val
}

// Error returns the accumulated error, if any.
func (cr *ChainReader) Error() error {
	return cr.err
}
