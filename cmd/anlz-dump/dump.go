package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cespare/xxhash/v2"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/simonhull/anlz"
	"github.com/simonhull/anlz/internal/tag"
)

// dumpFile writes the tag listing and, for .DAT/.EXT names, the extracted fields.
func dumpFile(w io.Writer, log *zap.Logger, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	tags, err := tag.DecodeBytes(data, path)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s (%s, %d tags)\n", path, humanize.IBytes(uint64(len(data))), len(tags))
	writeTags(w, data, tags)

	profile, err := anlz.DetectProfile(path)
	if err != nil {
		fmt.Fprintf(w, "  fields: skipped (%v)\n\n", err)
		return nil
	}

	db, err := anlz.LoadBuffer(profile, data, anlz.WithLogger(log.With(zap.String("file", path))))
	if err != nil {
		return err
	}
	writeFields(w, db)
	fmt.Fprintln(w)
	return nil
}

func writeTags(w io.Writer, data []byte, tags []tag.Tag) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  TYPE\tOFFSET\tSIZE\tENTRIES\tXXH64\tDETAIL")
	for _, t := range tags {
		payload := data[t.Offset+int64(t.HeaderLen) : t.Offset+int64(t.Len)]
		fmt.Fprintf(tw, "  %s\t%d\t%s\t%d\t%016x\t%s\n",
			t.Type, t.Offset, humanize.IBytes(uint64(t.Len)), t.Content.Len(), xxhash.Sum64(payload), detail(t.Content))
	}
	_ = tw.Flush()
}

func detail(c tag.Content) string {
	switch c := c.(type) {
	case *tag.CueList:
		return "list type " + c.Type.String()
	case *tag.TrackPath:
		return c.Path
	case *tag.BeatGrid:
		if len(c.Entries) > 0 {
			return fmt.Sprintf("%.2f BPM, %.0f bars", c.Entries[0].BPM(), anlz.BeatGridBars(c.Entries))
		}
	case *tag.Raw:
		return "undecoded"
	}
	return ""
}

func writeFields(w io.Writer, db *anlz.Database) {
	fmt.Fprintf(w, "  fields (%s):\n", db.Profile)
	for _, f := range anlz.ProfileFields(db.Profile) {
		n, err := fieldLen(db, f)
		if err != nil {
			fmt.Fprintf(w, "    %-24s missing\n", f)
			continue
		}
		fmt.Fprintf(w, "    %-24s %d entries\n", f, n)
	}
	for _, warning := range db.Warnings {
		fmt.Fprintf(w, "  warning: %s\n", warning)
	}
}

func fieldLen(db *anlz.Database, f anlz.Field) (int, error) {
	switch f {
	case anlz.FieldBeatGrid:
		v, err := db.BeatGrid()
		return len(v), err
	case anlz.FieldMemoryCues:
		v, err := db.MemoryCues()
		return len(v), err
	case anlz.FieldHotCues:
		v, err := db.HotCues()
		return len(v), err
	case anlz.FieldWaveform:
		v, err := db.Waveform()
		return len(v), err
	case anlz.FieldPreviewWaveform:
		v, err := db.PreviewWaveform()
		return len(v), err
	case anlz.FieldColorPreviewWaveform:
		v, err := db.ColorPreviewWaveform()
		return len(v), err
	case anlz.FieldColorWaveform:
		v, err := db.ColorWaveform()
		return len(v), err
	}
	return 0, fmt.Errorf("unknown field %s", f)
}
