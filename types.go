package anlz

import "github.com/simonhull/anlz/internal/types"

// Entry types carried by the extracted fields. Re-exported from internal/types.
type (
	Beat                = types.Beat
	CuePoint            = types.CuePoint
	CueType             = types.CueType
	CueStatus           = types.CueStatus
	CueListType         = types.CueListType
	WaveformColumn      = types.WaveformColumn
	ColorPreviewColumn  = types.ColorPreviewColumn
	ColorWaveformColumn = types.ColorWaveformColumn
)

// Re-export entry constants.
const (
	CueTypeSingle = types.CueTypeSingle
	CueTypeLoop   = types.CueTypeLoop

	CueStatusDisabled   = types.CueStatusDisabled
	CueStatusEnabled    = types.CueStatusEnabled
	CueStatusActiveLoop = types.CueStatusActiveLoop

	CueListMemory = types.CueListMemory
	CueListHotCue = types.CueListHotCue
)

// BeatGridBars returns the number of bars (4 beats per bar) covered by beats.
func BeatGridBars(beats []Beat) float64 {
	return types.BeatGridBars(beats)
}
