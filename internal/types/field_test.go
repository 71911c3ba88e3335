package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllFields(t *testing.T) {
	names := make([]string, 0, 7)
	for _, f := range AllFields() {
		names = append(names, f.String())
	}

	assert.Equal(t, []string{
		"beatgrid",
		"memory_cues",
		"hot_cues",
		"waveform",
		"preview_waveform",
		"color_preview_waveform",
		"color_waveform",
	}, names)
}

func TestField_Unknown(t *testing.T) {
	assert.Equal(t, "unknown", Field(42).String())
	assert.Equal(t, "unknown", Field(-1).Description())
}
