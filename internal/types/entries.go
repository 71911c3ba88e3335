package types

import (
	"fmt"
	"time"
)

// Beat is one entry of a beat grid.
type Beat struct {
	// Number is the position within the bar, 1 to 4.
	Number uint16
	// Tempo is the tempo at this beat in hundredths of a BPM.
	Tempo uint16
	// Time is the beat position in milliseconds from the start of the track.
	Time uint32
}

// BPM returns the tempo in beats per minute.
func (b Beat) BPM() float64 {
	return float64(b.Tempo) / 100
}

// Offset returns the beat position as a duration.
func (b Beat) Offset() time.Duration {
	return time.Duration(b.Time) * time.Millisecond
}

// IsDownbeat reports whether the beat starts a bar.
func (b Beat) IsDownbeat() bool {
	return b.Number == 1
}

// BeatGridBars returns the number of bars (4 beats per bar) covered by beats.
func BeatGridBars(beats []Beat) float64 {
	if len(beats) == 0 {
		return 0
	}
	return float64(len(beats)) / 4.0
}

// CueListType is the subtype carried inside a PCOB tag.
type CueListType uint32

const (
	// CueListMemory marks a list of memory cues.
	CueListMemory CueListType = 0
	// CueListHotCue marks a list of hot cues.
	CueListHotCue CueListType = 1
)

func (t CueListType) String() string {
	switch t {
	case CueListMemory:
		return "memory"
	case CueListHotCue:
		return "hotcue"
	default:
		return fmt.Sprintf("unknown(%d)", uint32(t))
	}
}

// CueType distinguishes single cue points from loops.
type CueType uint8

const (
	CueTypeSingle CueType = 1
	CueTypeLoop   CueType = 2
)

func (t CueType) String() string {
	switch t {
	case CueTypeSingle:
		return "cue"
	case CueTypeLoop:
		return "loop"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// CueStatus reports whether a cue point is in use.
type CueStatus uint32

const (
	CueStatusDisabled   CueStatus = 0
	CueStatusEnabled    CueStatus = 1
	CueStatusActiveLoop CueStatus = 4
)

func (s CueStatus) String() string {
	switch s {
	case CueStatusDisabled:
		return "disabled"
	case CueStatusEnabled:
		return "enabled"
	case CueStatusActiveLoop:
		return "active_loop"
	default:
		return fmt.Sprintf("unknown(%d)", uint32(s))
	}
}

// CuePoint is one PCPT entry of a cue list.
type CuePoint struct {
	// HotCue is 0 for memory cues, otherwise 1 for A, 2 for B and so on.
	HotCue uint32
	Status CueStatus
	// OrderFirst and OrderLast link memory cues into a list; 0xffff marks an end.
	OrderFirst uint16
	OrderLast  uint16
	Type       CueType
	// Time is the cue position in milliseconds.
	Time uint32
	// LoopTime is the loop end in milliseconds, meaningful only for loops.
	LoopTime uint32
}

// Offset returns the cue position as a duration.
func (c CuePoint) Offset() time.Duration {
	return time.Duration(c.Time) * time.Millisecond
}

// IsLoop reports whether the cue point describes a loop.
func (c CuePoint) IsLoop() bool {
	return c.Type == CueTypeLoop
}

// LoopLength returns the loop duration, or 0 for single cues.
func (c CuePoint) LoopLength() time.Duration {
	if !c.IsLoop() || c.LoopTime < c.Time {
		return 0
	}
	return time.Duration(c.LoopTime-c.Time) * time.Millisecond
}

// HotCueLabel returns the pad letter for a hot cue ("A", "B", ...) or "" for memory cues.
func (c CuePoint) HotCueLabel() string {
	if c.HotCue == 0 || c.HotCue > 26 {
		return ""
	}
	return string(rune('A' + c.HotCue - 1))
}

// WaveformColumn is one column of a monochrome waveform (PWAV, PWV2, PWV3).
type WaveformColumn struct {
	// Height is 0 to 31.
	Height uint8
	// Whiteness is 0 to 7; higher values render lighter.
	Whiteness uint8
}

// NewWaveformColumn splits a packed waveform byte.
func NewWaveformColumn(b byte) WaveformColumn {
	return WaveformColumn{
		Height:    b & 0x1f,
		Whiteness: b >> 5,
	}
}

// ColorPreviewColumn is one 6-byte column of the color preview waveform (PWV4).
// The bytes are kept as stored; their meaning is only partially documented.
type ColorPreviewColumn [6]byte

// ColorWaveformColumn is one column of the detailed color waveform (PWV5).
type ColorWaveformColumn struct {
	Red    uint8 // 0-7
	Green  uint8 // 0-7
	Blue   uint8 // 0-7
	Height uint8 // 0-31
}

// NewColorWaveformColumn unpacks a big-endian PWV5 entry.
func NewColorWaveformColumn(v uint16) ColorWaveformColumn {
	return ColorWaveformColumn{
		Red:    uint8(v>>13) & 0x07,
		Green:  uint8(v>>10) & 0x07,
		Blue:   uint8(v>>7) & 0x07,
		Height: uint8(v>>2) & 0x1f,
	}
}
