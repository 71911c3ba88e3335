package binary

import (
	"encoding/binary"

	"golang.org/x/text/encoding/unicode"
)

// SafeWriter builds a big-endian record in memory. Length fields whose value
// depends on later content are reserved with Reserve and filled in with PutAt.
type SafeWriter struct {
	buf []byte
}

// NewSafeWriter returns an empty writer.
func NewSafeWriter() *SafeWriter {
	return &SafeWriter{}
}

// Offset returns the number of bytes written so far.
func (sw *SafeWriter) Offset() int64 {
	return int64(len(sw.buf))
}

// Bytes returns the written record. The slice aliases the writer's buffer.
func (sw *SafeWriter) Bytes() []byte {
	return sw.buf
}

// WriteBytes appends raw bytes.
func (sw *SafeWriter) WriteBytes(b []byte) {
	sw.buf = append(sw.buf, b...)
}

// WriteString appends the bytes of s, e.g. a four-character type code.
func (sw *SafeWriter) WriteString(s string) {
	sw.buf = append(sw.buf, s...)
}

// WriteUTF16 appends s as UTF-16BE followed by a NUL code unit.
func (sw *SafeWriter) WriteUTF16(s string) error {
	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder()
	b, err := enc.Bytes([]byte(s + "\x00"))
	if err != nil {
		return err
	}
	sw.WriteBytes(b)
	return nil
}

// PadTo appends zero bytes until the record is off bytes long.
// It does nothing if the record is already that long.
func (sw *SafeWriter) PadTo(off int64) {
	for int64(len(sw.buf)) < off {
		sw.buf = append(sw.buf, 0)
	}
}

// Write appends val in big-endian byte order.
func Write[T uint8 | uint16 | uint32 | uint64](sw *SafeWriter, val T) {
	switch sizeOf[T]() {
	case 1:
		sw.buf = append(sw.buf, byte(val))
	case 2:
		sw.buf = binary.BigEndian.AppendUint16(sw.buf, uint16(val))
	case 4:
		sw.buf = binary.BigEndian.AppendUint32(sw.buf, uint32(val))
	default:
		sw.buf = binary.BigEndian.AppendUint64(sw.buf, uint64(val))
	}
}

// Reserve appends a zero value of type T and returns its offset for PutAt.
func Reserve[T uint8 | uint16 | uint32 | uint64](sw *SafeWriter) int64 {
	off := sw.Offset()
	Write[T](sw, 0)
	return off
}

// PutAt overwrites the value at off, which must lie within the written record.
func PutAt[T uint8 | uint16 | uint32 | uint64](sw *SafeWriter, off int64, val T) error {
	n := sizeOf[T]()
	if off < 0 || off+int64(n) > sw.Offset() {
		return &BoundsError{Path: "<writer>", What: "patched field", Offset: off, Length: n, Limit: sw.Offset()}
	}

	b := sw.buf[off : off+int64(n)]
	switch n {
	case 1:
		b[0] = byte(val)
	case 2:
		binary.BigEndian.PutUint16(b, uint16(val))
	case 4:
		binary.BigEndian.PutUint32(b, uint32(val))
	default:
		binary.BigEndian.PutUint64(b, uint64(val))
	}
	return nil
}
