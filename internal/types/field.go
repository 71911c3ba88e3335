package types

// Field identifies one of the semantic views extracted from an ANLZ file.
type Field int

const (
	// FieldBeatGrid is the beat grid (PQTZ, DAT files).
	FieldBeatGrid Field = iota
	// FieldMemoryCues is the memory cue list (PCOB with memory subtype, DAT files).
	FieldMemoryCues
	// FieldHotCues is the hot cue list (PCOB with hotcue subtype, DAT files).
	FieldHotCues
	// FieldWaveform is the detailed monochrome waveform (PWV3, EXT files).
	FieldWaveform
	// FieldPreviewWaveform is the monochrome preview waveform (PWAV, DAT files).
	FieldPreviewWaveform
	// FieldColorPreviewWaveform is the color preview waveform (PWV4, EXT files).
	FieldColorPreviewWaveform
	// FieldColorWaveform is the detailed color waveform (PWV5, EXT files).
	FieldColorWaveform

	fieldCount
)

// AllFields returns every field in key order.
func AllFields() []Field {
	fields := make([]Field, 0, fieldCount)
	for f := Field(0); f < fieldCount; f++ {
		fields = append(fields, f)
	}
	return fields
}

// String returns the semantic key name, e.g. "memory_cues".
func (f Field) String() string {
	switch f {
	case FieldBeatGrid:
		return "beatgrid"
	case FieldMemoryCues:
		return "memory_cues"
	case FieldHotCues:
		return "hot_cues"
	case FieldWaveform:
		return "waveform"
	case FieldPreviewWaveform:
		return "preview_waveform"
	case FieldColorPreviewWaveform:
		return "color_preview_waveform"
	case FieldColorWaveform:
		return "color_waveform"
	default:
		return "unknown"
	}
}

// Description returns a human-readable name used in error messages.
func (f Field) Description() string {
	switch f {
	case FieldMemoryCues:
		return "memory cue points"
	case FieldHotCues:
		return "hot cue points"
	case FieldPreviewWaveform:
		return "preview waveform"
	case FieldColorPreviewWaveform:
		return "color preview waveform"
	case FieldColorWaveform:
		return "color waveform"
	default:
		return f.String()
	}
}
