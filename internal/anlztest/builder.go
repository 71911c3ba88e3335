// Package anlztest builds ANLZ containers in memory for tests.
package anlztest

import (
	"github.com/simonhull/anlz/internal/binary"
	"github.com/simonhull/anlz/internal/types"
)

// FileHeaderLen matches the PMAI header length written by the hardware.
const FileHeaderLen = 28

// Builder accumulates tags and renders a complete PMAI container.
type Builder struct {
	tags []*binary.SafeWriter
}

// New returns an empty builder.
func New() *Builder {
	return &Builder{}
}

// Tag appends a tag with the given type-specific header fields and body.
func (b *Builder) Tag(code string, headerFields, body []byte) *Builder {
	w := binary.NewSafeWriter()
	w.WriteString(code)
	headerLen := binary.Reserve[uint32](w)
	tagLen := binary.Reserve[uint32](w)
	w.WriteBytes(headerFields)
	_ = binary.PutAt(w, headerLen, uint32(w.Offset()))
	w.WriteBytes(body)
	_ = binary.PutAt(w, tagLen, uint32(w.Offset()))

	b.tags = append(b.tags, w)
	return b
}

// BeatGrid appends a PQTZ tag.
func (b *Builder) BeatGrid(beats ...types.Beat) *Builder {
	hdr := binary.NewSafeWriter()
	binary.Write[uint32](hdr, 0)
	binary.Write[uint32](hdr, 0x00080000)
	binary.Write[uint32](hdr, uint32(len(beats)))

	body := binary.NewSafeWriter()
	for _, beat := range beats {
		binary.Write(body, beat.Number)
		binary.Write(body, beat.Tempo)
		binary.Write(body, beat.Time)
	}
	return b.Tag("PQTZ", hdr.Bytes(), body.Bytes())
}

// CueList appends a PCOB tag of the given subtype.
func (b *Builder) CueList(kind types.CueListType, cues ...types.CuePoint) *Builder {
	hdr := binary.NewSafeWriter()
	binary.Write(hdr, uint32(kind))
	binary.Write[uint16](hdr, 0)
	binary.Write(hdr, uint16(len(cues)))
	binary.Write[uint32](hdr, 0xffffffff)

	body := binary.NewSafeWriter()
	for _, cue := range cues {
		body.WriteBytes(CuePoint(cue))
	}
	return b.Tag("PCOB", hdr.Bytes(), body.Bytes())
}

// CuePoint renders a 56-byte PCPT entry.
func CuePoint(cue types.CuePoint) []byte {
	const headerLen, entryLen = 28, 56
	w := binary.NewSafeWriter()
	w.WriteString("PCPT")
	binary.Write[uint32](w, headerLen)
	binary.Write[uint32](w, entryLen)
	binary.Write(w, cue.HotCue)
	binary.Write(w, uint32(cue.Status))
	binary.Write[uint32](w, 0x00010000)
	binary.Write(w, cue.OrderFirst)
	binary.Write(w, cue.OrderLast)
	binary.Write(w, uint8(cue.Type))
	binary.Write[uint8](w, 0)
	binary.Write[uint16](w, 1000)
	binary.Write(w, cue.Time)
	binary.Write(w, cue.LoopTime)
	w.PadTo(entryLen)
	return w.Bytes()
}

// Preview appends a PWAV tag.
func (b *Builder) Preview(cols ...types.WaveformColumn) *Builder {
	return b.preview("PWAV", cols)
}

// TinyPreview appends a PWV2 tag.
func (b *Builder) TinyPreview(cols ...types.WaveformColumn) *Builder {
	return b.preview("PWV2", cols)
}

func (b *Builder) preview(code string, cols []types.WaveformColumn) *Builder {
	hdr := binary.NewSafeWriter()
	binary.Write(hdr, uint32(len(cols)))
	binary.Write[uint32](hdr, 0x00010000)
	return b.Tag(code, hdr.Bytes(), packColumns(cols))
}

// Waveform appends a PWV3 tag.
func (b *Builder) Waveform(cols ...types.WaveformColumn) *Builder {
	return b.Tag("PWV3", sizedHeader(1, len(cols), 0x00960000), packColumns(cols))
}

// ColorPreview appends a PWV4 tag.
func (b *Builder) ColorPreview(cols ...types.ColorPreviewColumn) *Builder {
	body := binary.NewSafeWriter()
	for _, c := range cols {
		body.WriteBytes(c[:])
	}
	return b.Tag("PWV4", sizedHeader(6, len(cols), 0), body.Bytes())
}

// ColorWaveform appends a PWV5 tag.
func (b *Builder) ColorWaveform(cols ...types.ColorWaveformColumn) *Builder {
	body := binary.NewSafeWriter()
	for _, c := range cols {
		v := uint16(c.Red&7)<<13 | uint16(c.Green&7)<<10 | uint16(c.Blue&7)<<7 | uint16(c.Height&0x1f)<<2
		binary.Write(body, v)
	}
	return b.Tag("PWV5", sizedHeader(2, len(cols), 0x00960305), body.Bytes())
}

// Path appends a PPTH tag.
func (b *Builder) Path(p string) *Builder {
	body := binary.NewSafeWriter()
	_ = body.WriteUTF16(p)
	hdr := binary.NewSafeWriter()
	binary.Write(hdr, uint32(body.Offset()))
	return b.Tag("PPTH", hdr.Bytes(), body.Bytes())
}

// Bytes renders the container.
func (b *Builder) Bytes() []byte {
	w := binary.NewSafeWriter()
	w.WriteString("PMAI")
	binary.Write[uint32](w, FileHeaderLen)
	fileLen := binary.Reserve[uint32](w)
	w.PadTo(FileHeaderLen)
	for _, t := range b.tags {
		w.WriteBytes(t.Bytes())
	}
	_ = binary.PutAt(w, fileLen, uint32(w.Offset()))
	return w.Bytes()
}

func sizedHeader(entrySize, count int, unknown uint32) []byte {
	w := binary.NewSafeWriter()
	binary.Write(w, uint32(entrySize))
	binary.Write(w, uint32(count))
	binary.Write(w, unknown)
	return w.Bytes()
}

func packColumns(cols []types.WaveformColumn) []byte {
	data := make([]byte, len(cols))
	for i, c := range cols {
		data[i] = c.Whiteness<<5 | c.Height&0x1f
	}
	return data
}
