package anlz

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/simonhull/anlz/internal/tag"
)

// extractor fills a Database from a decoded tag sequence.
type extractor struct {
	db    *Database
	table routeTable
	log   *zap.Logger
}

// run routes tags into the database. It never fails: a missing tag only
// leaves its field unset and records a warning.
func (e *extractor) run(tags []tag.Tag) {
	// One pass groups tags by type, keeping file order within each group.
	byType := make(map[string][]tag.Tag, len(tags))
	for _, t := range tags {
		byType[t.Type] = append(byType[t.Type], t)
	}

	for _, r := range e.table.routes {
		e.collectEntries(r, byType[r.tag])
	}
	if e.table.cueLists {
		e.collectCuePoints(byType[tag.TypeCueList])
	}
}

// collectEntries stores the entries of the first matching tag. The format
// carries at most one tag of each routed type.
func (e *extractor) collectEntries(r route, matches []tag.Tag) {
	if len(matches) == 0 {
		e.warn(r.tag, 0, fmt.Sprintf("tag %s not found in file", r.tag))
		return
	}

	first := matches[0]
	if !e.assign(r.field, first.Content) {
		e.warn(r.tag, first.Offset, fmt.Sprintf("tag %s has unexpected content %T", r.tag, first.Content))
	}
}

// assign stores content in field and reports whether the content type fits.
func (e *extractor) assign(f Field, content tag.Content) bool {
	db := e.db
	switch c := content.(type) {
	case *tag.BeatGrid:
		if f == FieldBeatGrid {
			db.beatGrid.store(c.Entries)
			return true
		}
	case *tag.PreviewWaveform:
		if f == FieldPreviewWaveform {
			db.previewWaveform.store(c.Entries)
			return true
		}
	case *tag.Waveform:
		if f == FieldWaveform {
			db.waveform.store(c.Entries)
			return true
		}
	case *tag.ColorPreviewWaveform:
		if f == FieldColorPreviewWaveform {
			db.colorPreviewWaveform.store(c.Entries)
			return true
		}
	case *tag.ColorWaveform:
		if f == FieldColorWaveform {
			db.colorWaveform.store(c.Entries)
			return true
		}
	}
	return false
}

// collectCuePoints splits PCOB tags into memory and hot cues by their list
// type. Usually there are two PCOB tags, one of each type. A later list of
// the same type replaces an earlier one; unknown types are skipped.
func (e *extractor) collectCuePoints(lists []tag.Tag) {
	if len(lists) == 0 {
		e.warn(tag.TypeCueList, 0, "no cue information found in file")
		return
	}

	for _, t := range lists {
		list, ok := t.Content.(*tag.CueList)
		if !ok {
			e.warn(t.Type, t.Offset, fmt.Sprintf("tag %s has unexpected content %T", t.Type, t.Content))
			continue
		}

		switch list.Type {
		case CueListMemory:
			e.db.memoryCues.store(list.Entries)
			e.log.Info("found memory cues", zap.Int("count", len(list.Entries)))
		case CueListHotCue:
			e.db.hotCues.store(list.Entries)
			e.log.Info("found hot cues", zap.Int("count", len(list.Entries)))
		default:
			e.log.Debug("skipping cue list of unknown type",
				zap.Stringer("type", list.Type),
				zap.Int64("offset", t.Offset))
		}
	}
}

func (e *extractor) warn(tagType string, offset int64, msg string) {
	e.log.Warn(msg, zap.String("tag", tagType))
	e.db.Warnings = append(e.db.Warnings, Warning{
		Stage:   "extract",
		Message: msg,
		Tag:     tagType,
		Offset:  offset,
	})
}
