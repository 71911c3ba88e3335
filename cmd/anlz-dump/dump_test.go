package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/simonhull/anlz"
	"github.com/simonhull/anlz/internal/anlztest"
)

func writeFixture(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestDumpFile_DAT(t *testing.T) {
	path := writeFixture(t, "ANLZ0000.DAT", anlztest.New().
		Path("/Contents/track.mp3").
		BeatGrid(anlz.Beat{Number: 1, Tempo: 12800, Time: 38}).
		CueList(anlz.CueListHotCue, anlz.CuePoint{HotCue: 1, Type: anlz.CueTypeSingle}).
		Bytes())

	var buf bytes.Buffer
	require.NoError(t, dumpFile(&buf, zap.NewNop(), path))

	out := buf.String()
	assert.Contains(t, out, "3 tags")
	assert.Contains(t, out, "PPTH")
	assert.Contains(t, out, "/Contents/track.mp3")
	assert.Contains(t, out, "128.00 BPM")
	assert.Contains(t, out, "list type hotcue")
	assert.Regexp(t, `hot_cues\s+1 entries`, out)
	assert.Regexp(t, `memory_cues\s+missing`, out)
	assert.Contains(t, out, "warning: extract: tag PWAV not found in file")
}

func TestDumpFile_UnknownExtension(t *testing.T) {
	path := writeFixture(t, "analysis.bin", anlztest.New().Waveform().Bytes())

	var buf bytes.Buffer
	require.NoError(t, dumpFile(&buf, zap.NewNop(), path))
	assert.Contains(t, buf.String(), "fields: skipped")
}

func TestDumpAll_Order(t *testing.T) {
	dat := writeFixture(t, "ANLZ0000.DAT", anlztest.New().BeatGrid().Bytes())
	ext := writeFixture(t, "ANLZ0000.EXT", anlztest.New().ColorWaveform().Bytes())

	reports, err := dumpAll(context.Background(), zap.NewNop(), []string{ext, dat})
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Contains(t, reports[0], ext)
	assert.Contains(t, reports[1], dat)
}

func TestDumpAll_Error(t *testing.T) {
	broken := writeFixture(t, "ANLZ0000.DAT", []byte("PMAI"))

	_, err := dumpAll(context.Background(), zap.NewNop(), []string{broken})
	require.Error(t, err)
	assert.ErrorIs(t, err, anlz.ErrMalformedInput)
	assert.Contains(t, err.Error(), broken)
}
