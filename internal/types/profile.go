package types

import (
	"path/filepath"
	"strings"
)

// Profile selects which physical ANLZ variant is being loaded.
//
// Both variants share the container grammar; they differ in the tag types
// they carry for the same track.
type Profile int

const (
	// ProfileUnknown is the zero value and is rejected by every load.
	ProfileUnknown Profile = iota
	// ProfileDAT is the ANLZ0000.DAT variant: beat grid, cues, preview waveform.
	ProfileDAT
	// ProfileEXT is the ANLZ0000.EXT variant: detailed and color waveforms.
	ProfileEXT
)

func (p Profile) String() string {
	switch p {
	case ProfileDAT:
		return "DAT"
	case ProfileEXT:
		return "EXT"
	default:
		return "unknown"
	}
}

// Extension returns the file extension conventionally used for this profile.
func (p Profile) Extension() string {
	switch p {
	case ProfileDAT:
		return ".DAT"
	case ProfileEXT:
		return ".EXT"
	default:
		return ""
	}
}

// Valid reports whether p is DAT or EXT.
func (p Profile) Valid() bool {
	return p == ProfileDAT || p == ProfileEXT
}

// DetectProfile derives the profile from a file extension.
// Matching is case-insensitive since exports from different hosts vary.
func DetectProfile(path string) (Profile, error) {
	switch strings.ToUpper(filepath.Ext(path)) {
	case ".DAT":
		return ProfileDAT, nil
	case ".EXT":
		return ProfileEXT, nil
	}
	return ProfileUnknown, &UnsupportedProfileError{
		Path:   path,
		Reason: "extension is neither .DAT nor .EXT",
	}
}
