package anlz

import (
	"errors"
	"io"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/simonhull/anlz/internal/anlztest"
	"github.com/simonhull/anlz/internal/tag"
	"github.com/simonhull/anlz/internal/types"
)

// staticDecoder returns a decoder that yields a fresh copy of tags per call.
func staticDecoder(calls *int, tags ...tag.Tag) decodeFunc {
	return func(io.ReaderAt, int64, string) ([]tag.Tag, error) {
		*calls++
		return append([]tag.Tag(nil), tags...), nil
	}
}

func beatGridTag(beats ...Beat) tag.Tag {
	return tag.Tag{Type: tag.TypeBeatGrid, Content: &tag.BeatGrid{Entries: beats}}
}

func cueListTag(kind CueListType, cues ...CuePoint) tag.Tag {
	return tag.Tag{Type: tag.TypeCueList, Content: &tag.CueList{Type: kind, Entries: cues}}
}

func TestExtract_FirstMatchWins(t *testing.T) {
	var calls int
	first := []Beat{{Number: 1, Tempo: 12000, Time: 0}}
	second := []Beat{{Number: 2, Tempo: 13000, Time: 500}}

	db, err := LoadBuffer(ProfileDAT, nil, withDecoder(staticDecoder(&calls,
		beatGridTag(first...),
		beatGridTag(second...),
	)))
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	beats, err := db.BeatGrid()
	require.NoError(t, err)
	assert.Equal(t, first, beats)
}

func TestExtract_DuplicateCueSubtypeLastWins(t *testing.T) {
	var calls int
	early := []CuePoint{{Time: 100}}
	late := []CuePoint{{Time: 200}, {Time: 300}}

	db, err := LoadBuffer(ProfileDAT, nil, withDecoder(staticDecoder(&calls,
		cueListTag(CueListMemory, early...),
		cueListTag(CueListHotCue),
		cueListTag(CueListMemory, late...),
	)))
	require.NoError(t, err)

	memory, err := db.MemoryCues()
	require.NoError(t, err)
	assert.Equal(t, late, memory)

	hot, err := db.HotCues()
	require.NoError(t, err)
	assert.Empty(t, hot)
}

func TestExtract_UnexpectedContent(t *testing.T) {
	var calls int
	db, err := LoadBuffer(ProfileDAT, nil, withDecoder(staticDecoder(&calls,
		tag.Tag{Type: tag.TypeBeatGrid, Offset: 40, Content: &tag.Raw{Data: []byte{1}}},
		tag.Tag{Type: tag.TypeCueList, Offset: 90, Content: &tag.Raw{}},
	)))
	require.NoError(t, err)

	assert.False(t, db.Has(FieldBeatGrid))
	assert.False(t, db.Has(FieldMemoryCues))

	var offsets []int64
	for _, w := range db.Warnings {
		offsets = append(offsets, w.Offset)
	}
	assert.Contains(t, offsets, int64(40))
	assert.Contains(t, offsets, int64(90))
}

func TestExtract_WarningsAndLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)

	data := anlztest.New().
		CueList(CueListMemory, CuePoint{Time: 1}, CuePoint{Time: 2}).
		CueList(CueListType(9)).
		Bytes()

	db, err := LoadBuffer(ProfileDAT, data, WithLogger(log))
	require.NoError(t, err)

	// PWAV and PQTZ are missing.
	require.Len(t, db.Warnings, 2)
	assert.Equal(t, "PWAV", db.Warnings[0].Tag)
	assert.Equal(t, "PQTZ", db.Warnings[1].Tag)

	warns := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warns, 2)
	assert.Equal(t, "tag PWAV not found in file", warns[0].Message)
	assert.Equal(t, "tag PQTZ not found in file", warns[1].Message)

	infos := logs.FilterMessage("found memory cues").All()
	require.Len(t, infos, 1)
	assert.Equal(t, int64(2), infos[0].ContextMap()["count"])

	assert.Equal(t, 1, logs.FilterMessage("skipping cue list of unknown type").Len())
	assert.Equal(t, 1, logs.FilterMessage("loaded tags").Len())
}

func TestExtract_NoCueInformation(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	db, err := LoadBuffer(ProfileDAT, anlztest.New().BeatGrid().Preview().Bytes(), WithLogger(zap.New(core)))
	require.NoError(t, err)

	require.Len(t, db.Warnings, 1)
	assert.Equal(t, "no cue information found in file", db.Warnings[0].Message)
	assert.Equal(t, 1, logs.Len())
}

func TestWithIgnoreWarnings(t *testing.T) {
	db, err := LoadBuffer(ProfileEXT, anlztest.New().Bytes(), WithIgnoreWarnings())
	require.NoError(t, err)
	assert.Empty(t, db.Warnings)
	assert.False(t, db.Has(FieldWaveform))
}

func TestWithMaxSize(t *testing.T) {
	data := anlztest.New().BeatGrid(make([]Beat, 64)...).Bytes()

	_, err := LoadBuffer(ProfileDAT, data, WithMaxSize(64))
	var tooLarge *types.InputTooLargeError
	require.True(t, errors.As(err, &tooLarge))
	assert.Equal(t, int64(len(data)), tooLarge.Size)

	_, err = LoadBuffer(ProfileDAT, data, WithMaxSize(int64(len(data))))
	assert.NoError(t, err)
}

func TestWithLogger_NilKeepsDefault(t *testing.T) {
	o := applyOptions([]Option{WithLogger(nil)})
	assert.NotNil(t, o.logger)
}

func TestDecoderFailureReturnsNoDatabase(t *testing.T) {
	boom := &types.MalformedInputError{Path: "<buffer>", Offset: 12, Reason: "truncated tag header"}
	decode := func(io.ReaderAt, int64, string) ([]tag.Tag, error) { return nil, boom }

	db, err := LoadBuffer(ProfileDAT, nil, withDecoder(decode))
	assert.Nil(t, db)
	assert.ErrorIs(t, err, ErrMalformedInput)
	assert.ErrorIs(t, err, boom)
}

func TestLoadDropsDecodedTags(t *testing.T) {
	released := make(chan struct{})
	decode := func(io.ReaderAt, int64, string) ([]tag.Tag, error) {
		tags := []tag.Tag{
			beatGridTag(Beat{Number: 1, Tempo: 12800}),
			cueListTag(CueListHotCue, CuePoint{HotCue: 1}),
		}
		runtime.AddCleanup(&tags[0], func(ch chan struct{}) { close(ch) }, released)
		return tags, nil
	}

	db, err := LoadBuffer(ProfileDAT, nil, withDecoder(decode))
	require.NoError(t, err)

	deadline := time.After(5 * time.Second)
	for done := false; !done; {
		runtime.GC()
		select {
		case <-released:
			done = true
		case <-deadline:
			t.Fatal("decoded tag sequence still reachable after load")
		case <-time.After(10 * time.Millisecond):
		}
	}

	// The extracted entries outlive the tag sequence.
	beats, err := db.BeatGrid()
	require.NoError(t, err)
	assert.Equal(t, []Beat{{Number: 1, Tempo: 12800}}, beats)
	runtime.KeepAlive(db)
}

func TestPackageLogger(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	core, logs := observer.New(zapcore.WarnLevel)
	SetLogger(zap.New(core))

	_, err := LoadBuffer(ProfileEXT, anlztest.New().Waveform().ColorPreview().Bytes())
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("tag PWV5 not found in file").Len())
}

func TestSetLogger_NilRestoresNop(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	SetLogger(nil)
	require.NotNil(t, Logger())

	db, err := LoadBuffer(ProfileDAT, anlztest.New().BeatGrid().Bytes())
	require.NoError(t, err)
	assert.True(t, db.Has(FieldBeatGrid))
}
