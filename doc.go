// Package anlz reads the track analysis files that DJ software exports next
// to the music on a USB stick (PIONEER/USBANLZ/.../ANLZ0000.DAT and .EXT).
//
// Both files use the same tagged-record container: a "PMAI" header followed
// by tags identified by four-character codes. They carry different tags for
// the same track, so each load names the variant it expects:
//
//	dat, err := anlz.Load(anlz.ProfileDAT, "ANLZ0000.DAT")
//	if err != nil {
//		log.Fatal(err)
//	}
//	beats, err := dat.BeatGrid()
//
// # Fields
//
// A DAT file yields:
//
//   - beatgrid (PQTZ)
//   - memory_cues and hot_cues (PCOB, split by the list type inside the tag)
//   - preview_waveform (PWAV)
//
// An EXT file yields:
//
//   - waveform (PWV3)
//   - color_preview_waveform (PWV4)
//   - color_waveform (PWV5)
//
// # Absent and empty fields
//
// Every accessor returns ([]T, error). A field whose tag was not in the file,
// or that belongs to the other profile, returns a *MissingFieldError. A tag
// that was present but empty returns an empty slice and no error:
//
//	cues, err := dat.HotCues()
//	if errors.Is(err, anlz.ErrMissingField) {
//		// the file has no hot cue list at all
//	}
//
// # Error Handling
//
// A container that does not parse fails the whole load with a
// *MalformedInputError; no partial result is returned. Missing tags do not
// fail the load. They are logged and recorded in Database.Warnings:
//
//	for _, w := range dat.Warnings {
//		log.Printf("warning: %s", w)
//	}
//
// # Logging
//
// Diagnostics go through go.uber.org/zap. The default logger discards
// everything; use SetLogger or the WithLogger option to see them.
//
// # Concurrency
//
// Each load is synchronous and builds its own result, so different files
// may be loaded from different goroutines without coordination.
package anlz
