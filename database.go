package anlz

import (
	"iter"

	"github.com/simonhull/anlz/internal/types"
)

// optional holds one extracted field. set distinguishes a field that was
// never extracted from one extracted with zero entries.
type optional[T any] struct {
	entries []T
	set     bool
}

func (o *optional[T]) store(entries []T) {
	o.entries = entries
	o.set = true
}

func (o *optional[T]) get(f Field) ([]T, error) {
	if !o.set {
		return nil, &types.MissingFieldError{Field: f}
	}
	return o.entries, nil
}

// Database holds the views extracted from one ANLZ file.
//
// Each field is either present, possibly with zero entries, or absent.
// Accessors of absent fields return a *MissingFieldError, so an empty beat
// grid is never confused with a file that had no beat grid at all.
//
// A Database is created by one load call and never modified afterwards;
// it may be read from multiple goroutines.
type Database struct {
	// Profile the data was loaded with
	Profile Profile

	// Path of the source file, or "<buffer>" for in-memory loads
	Path string

	// Warnings encountered during extraction (missing tags)
	Warnings []Warning

	beatGrid             optional[Beat]
	memoryCues           optional[CuePoint]
	hotCues              optional[CuePoint]
	waveform             optional[WaveformColumn]
	previewWaveform      optional[WaveformColumn]
	colorPreviewWaveform optional[ColorPreviewColumn]
	colorWaveform        optional[ColorWaveformColumn]
}

// BeatGrid returns the beat grid (DAT).
func (db *Database) BeatGrid() ([]Beat, error) {
	return db.beatGrid.get(FieldBeatGrid)
}

// MemoryCues returns the memory cue points (DAT).
func (db *Database) MemoryCues() ([]CuePoint, error) {
	return db.memoryCues.get(FieldMemoryCues)
}

// HotCues returns the hot cue points (DAT).
func (db *Database) HotCues() ([]CuePoint, error) {
	return db.hotCues.get(FieldHotCues)
}

// Waveform returns the detailed monochrome waveform (EXT).
func (db *Database) Waveform() ([]WaveformColumn, error) {
	return db.waveform.get(FieldWaveform)
}

// PreviewWaveform returns the monochrome preview waveform (DAT).
func (db *Database) PreviewWaveform() ([]WaveformColumn, error) {
	return db.previewWaveform.get(FieldPreviewWaveform)
}

// ColorPreviewWaveform returns the color preview waveform (EXT).
func (db *Database) ColorPreviewWaveform() ([]ColorPreviewColumn, error) {
	return db.colorPreviewWaveform.get(FieldColorPreviewWaveform)
}

// ColorWaveform returns the detailed color waveform (EXT).
func (db *Database) ColorWaveform() ([]ColorWaveformColumn, error) {
	return db.colorWaveform.get(FieldColorWaveform)
}

// Has reports whether a field was extracted.
func (db *Database) Has(f Field) bool {
	switch f {
	case FieldBeatGrid:
		return db.beatGrid.set
	case FieldMemoryCues:
		return db.memoryCues.set
	case FieldHotCues:
		return db.hotCues.set
	case FieldWaveform:
		return db.waveform.set
	case FieldPreviewWaveform:
		return db.previewWaveform.set
	case FieldColorPreviewWaveform:
		return db.colorPreviewWaveform.set
	case FieldColorWaveform:
		return db.colorWaveform.set
	default:
		return false
	}
}

// Fields iterates over the extracted fields in key order.
//
//	for f := range db.Fields() {
//		fmt.Println(f)
//	}
func (db *Database) Fields() iter.Seq[Field] {
	return func(yield func(Field) bool) {
		for _, f := range types.AllFields() {
			if db.Has(f) && !yield(f) {
				return
			}
		}
	}
}
