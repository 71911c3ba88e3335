// Package tag decodes the ANLZ tagged-record container into typed tags.
//
// An ANLZ file is a "PMAI" header followed by a flat sequence of tags. Every
// tag starts with a 4-character type code, its header length and its total
// length, all big-endian. The type-specific remainder is decoded by a content
// decoder registered for that code; unknown codes are kept as Raw content.
package tag

import (
	"github.com/simonhull/anlz/internal/binary"
	"github.com/simonhull/anlz/internal/registry"
	"github.com/simonhull/anlz/internal/types"
)

// Type codes of the tags this package understands.
const (
	TypeBeatGrid      = "PQTZ"
	TypeCueList       = "PCOB"
	TypeCuePoint      = "PCPT"
	TypePreview       = "PWAV"
	TypeTinyPreview   = "PWV2"
	TypeWaveform      = "PWV3"
	TypeColorPreview  = "PWV4"
	TypeColorWaveform = "PWV5"
	TypePath          = "PPTH"
)

// commonHeaderLen is the size of type code, header length and tag length.
const commonHeaderLen = 12

// Tag is one decoded record of an ANLZ container.
type Tag struct {
	// Type is the 4-character type code exactly as stored.
	Type string

	// Offset is the absolute file position of the tag.
	Offset int64

	// HeaderLen and Len are the declared header and total tag lengths.
	HeaderLen uint32
	Len       uint32

	// Content is the type-specific decoded record.
	Content Content
}

// Content is the decoded payload of a tag.
type Content interface {
	// Len returns the number of entries carried by the tag.
	Len() int
}

// header carries the common tag fields to content decoders.
type header struct {
	typ       string
	offset    int64
	headerLen uint32
	tagLen    uint32
}

// contentDecoder decodes a tag payload. sr covers the whole tag, starting
// with its common header.
type contentDecoder func(sr *binary.SafeReader, h header) (Content, error)

var decoders = registry.New[contentDecoder]()

// Known returns the type codes that decode to typed content.
func Known() []string {
	return decoders.Codes()
}

// BeatGrid is the content of a PQTZ tag.
type BeatGrid struct {
	Entries []types.Beat
}

func (c *BeatGrid) Len() int { return len(c.Entries) }

// CueList is the content of a PCOB tag.
type CueList struct {
	// Type tells memory cues and hot cues apart; both share the PCOB code.
	Type types.CueListType

	// MemoryCount is stored by the hardware; 0xffffffff when unused.
	MemoryCount uint32

	Entries []types.CuePoint
}

func (c *CueList) Len() int { return len(c.Entries) }

// PreviewWaveform is the content of a PWAV or PWV2 tag.
type PreviewWaveform struct {
	Entries []types.WaveformColumn
}

func (c *PreviewWaveform) Len() int { return len(c.Entries) }

// Waveform is the content of a PWV3 tag.
type Waveform struct {
	Entries []types.WaveformColumn
}

func (c *Waveform) Len() int { return len(c.Entries) }

// ColorPreviewWaveform is the content of a PWV4 tag.
type ColorPreviewWaveform struct {
	Entries []types.ColorPreviewColumn
}

func (c *ColorPreviewWaveform) Len() int { return len(c.Entries) }

// ColorWaveform is the content of a PWV5 tag.
type ColorWaveform struct {
	Entries []types.ColorWaveformColumn
}

func (c *ColorWaveform) Len() int { return len(c.Entries) }

// TrackPath is the content of a PPTH tag: the audio file the analysis belongs to.
type TrackPath struct {
	Path string
}

func (c *TrackPath) Len() int { return 1 }

// Raw holds the payload of a tag without a registered decoder.
type Raw struct {
	Data []byte
}

func (c *Raw) Len() int { return len(c.Data) }
