package types

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMalformedInputError(t *testing.T) {
	err := &MalformedInputError{
		Path:   "ANLZ0000.DAT",
		Offset: 28,
		Reason: "tag length smaller than header",
		Err:    io.ErrUnexpectedEOF,
	}

	msg := err.Error()
	assert.Contains(t, msg, "ANLZ0000.DAT")
	assert.Contains(t, msg, "offset 28")
	assert.Contains(t, msg, "tag length smaller than header")
	assert.ErrorIs(t, err, ErrMalformedInput)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	wrapped := fmt.Errorf("load DAT: %w", err)
	var target *MalformedInputError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, int64(28), target.Offset)
}

func TestMissingFieldError(t *testing.T) {
	tests := []struct {
		field Field
		want  string
	}{
		{FieldBeatGrid, "anlz: no beatgrid found"},
		{FieldMemoryCues, "anlz: no memory cue points found"},
		{FieldHotCues, "anlz: no hot cue points found"},
		{FieldWaveform, "anlz: no waveform found"},
		{FieldPreviewWaveform, "anlz: no preview waveform found"},
		{FieldColorPreviewWaveform, "anlz: no color preview waveform found"},
		{FieldColorWaveform, "anlz: no color waveform found"},
	}

	for _, tt := range tests {
		t.Run(tt.field.String(), func(t *testing.T) {
			err := &MissingFieldError{Field: tt.field}
			assert.Equal(t, tt.want, err.Error())
			assert.ErrorIs(t, err, ErrMissingField)
			assert.NotErrorIs(t, err, ErrMalformedInput)
		})
	}
}

func TestUnsupportedProfileError(t *testing.T) {
	err := &UnsupportedProfileError{Path: "track.mp3", Reason: "extension is neither .DAT nor .EXT"}
	assert.Equal(t, "track.mp3: unsupported profile: extension is neither .DAT nor .EXT", err.Error())

	err = &UnsupportedProfileError{Reason: "profile unknown"}
	assert.Equal(t, "unsupported profile: profile unknown", err.Error())
}

func TestInputTooLargeError(t *testing.T) {
	err := &InputTooLargeError{Path: "big.EXT", Size: 2048, Limit: 1024}
	assert.Contains(t, err.Error(), "2048")
	assert.Contains(t, err.Error(), "1024")
}

func TestWarning_String(t *testing.T) {
	w := Warning{Stage: "extract", Message: "tag PQTZ not found in file", Tag: "PQTZ"}
	assert.Equal(t, "extract: tag PQTZ not found in file", w.String())

	w.Offset = 96
	assert.Equal(t, "extract (at offset 96): tag PQTZ not found in file", w.String())
}
