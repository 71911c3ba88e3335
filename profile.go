package anlz

import (
	"github.com/simonhull/anlz/internal/tag"
	"github.com/simonhull/anlz/internal/types"
)

// Profile selects the physical ANLZ variant being loaded.
// Re-exported from internal/types.
type Profile = types.Profile

// Field names one of the seven extracted views.
// Re-exported from internal/types.
type Field = types.Field

// Re-export profile constants.
const (
	ProfileDAT = types.ProfileDAT
	ProfileEXT = types.ProfileEXT
)

// Re-export field constants.
const (
	FieldBeatGrid             = types.FieldBeatGrid
	FieldMemoryCues           = types.FieldMemoryCues
	FieldHotCues              = types.FieldHotCues
	FieldWaveform             = types.FieldWaveform
	FieldPreviewWaveform      = types.FieldPreviewWaveform
	FieldColorPreviewWaveform = types.FieldColorPreviewWaveform
	FieldColorWaveform        = types.FieldColorWaveform
)

// DetectProfile derives the profile from a .DAT or .EXT file extension.
func DetectProfile(path string) (Profile, error) {
	return types.DetectProfile(path)
}

// route sends the first tag of a type to a field.
type route struct {
	tag   string
	field Field
}

// routeTable describes what a profile extracts. The tables of different
// profiles never share a tag type.
type routeTable struct {
	routes []route

	// cueLists enables the PCOB memory/hot cue split.
	cueLists bool
}

var routeTables = map[Profile]routeTable{
	ProfileDAT: {
		routes: []route{
			{tag.TypePreview, FieldPreviewWaveform},
			{tag.TypeBeatGrid, FieldBeatGrid},
		},
		cueLists: true,
	},
	ProfileEXT: {
		routes: []route{
			{tag.TypeWaveform, FieldWaveform},
			{tag.TypeColorPreview, FieldColorPreviewWaveform},
			{tag.TypeColorWaveform, FieldColorWaveform},
		},
	},
}

// ProfileFields returns the fields a profile can populate, in key order.
func ProfileFields(p Profile) []Field {
	table, ok := routeTables[p]
	if !ok {
		return nil
	}

	want := make(map[Field]bool, len(table.routes)+2)
	for _, r := range table.routes {
		want[r.field] = true
	}
	if table.cueLists {
		want[FieldMemoryCues] = true
		want[FieldHotCues] = true
	}

	var fields []Field
	for _, f := range types.AllFields() {
		if want[f] {
			fields = append(fields, f)
		}
	}
	return fields
}
