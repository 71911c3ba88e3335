package tag

import (
	"fmt"

	"github.com/simonhull/anlz/internal/binary"
	"github.com/simonhull/anlz/internal/types"
)

func init() {
	decoders.Register(TypePreview, decodePreview)
	decoders.Register(TypeTinyPreview, decodePreview)
	decoders.Register(TypeWaveform, decodeWaveform)
	decoders.Register(TypeColorPreview, decodeColorPreview)
	decoders.Register(TypeColorWaveform, decodeColorWaveform)
}

// decodePreview decodes PWAV and PWV2: data length, an unknown word, then
// one packed byte per column.
func decodePreview(sr *binary.SafeReader, h header) (Content, error) {
	count, err := binary.Read[uint32](sr, commonHeaderLen, "preview length")
	if err != nil {
		return nil, err
	}
	data, err := readEntries(sr, h, uint64(count), 1, "preview columns")
	if err != nil {
		return nil, err
	}

	cols := make([]types.WaveformColumn, len(data))
	for i, b := range data {
		cols[i] = types.NewWaveformColumn(b)
	}
	return &PreviewWaveform{Entries: cols}, nil
}

// decodeWaveform decodes PWV3: entry size (1), entry count, unknown word,
// then one packed byte per column.
func decodeWaveform(sr *binary.SafeReader, h header) (Content, error) {
	data, err := readSizedEntries(sr, h, 1, "waveform columns")
	if err != nil {
		return nil, err
	}

	cols := make([]types.WaveformColumn, len(data))
	for i, b := range data {
		cols[i] = types.NewWaveformColumn(b)
	}
	return &Waveform{Entries: cols}, nil
}

// decodeColorPreview decodes PWV4: entry size (6), entry count, unknown
// word, then 6-byte columns.
func decodeColorPreview(sr *binary.SafeReader, h header) (Content, error) {
	const colLen = 6
	data, err := readSizedEntries(sr, h, colLen, "color preview columns")
	if err != nil {
		return nil, err
	}

	cols := make([]types.ColorPreviewColumn, len(data)/colLen)
	for i := range cols {
		copy(cols[i][:], data[i*colLen:])
	}
	return &ColorPreviewWaveform{Entries: cols}, nil
}

// decodeColorWaveform decodes PWV5: entry size (2), entry count, unknown
// word, then big-endian 16-bit packed RGB and height columns.
func decodeColorWaveform(sr *binary.SafeReader, h header) (Content, error) {
	const colLen = 2
	data, err := readSizedEntries(sr, h, colLen, "color waveform columns")
	if err != nil {
		return nil, err
	}

	cols := make([]types.ColorWaveformColumn, len(data)/colLen)
	for i := range cols {
		v := uint16(data[2*i])<<8 | uint16(data[2*i+1])
		cols[i] = types.NewColorWaveformColumn(v)
	}
	return &ColorWaveform{Entries: cols}, nil
}

// readSizedEntries handles the PWV3-PWV5 header layout: it checks the stored
// entry size against want and returns the raw entry bytes.
func readSizedEntries(sr *binary.SafeReader, h header, want uint32, what string) ([]byte, error) {
	cr := binary.NewChainReader(binary.NewReader(sr, commonHeaderLen))
	entrySize := binary.ReadChained[uint32](cr, "entry size")
	count := binary.ReadChained[uint32](cr, "entry count")
	if err := cr.Error(); err != nil {
		return nil, err
	}
	if entrySize != want {
		return nil, fmt.Errorf("%s: entry size %d, expected %d", what, entrySize, want)
	}
	return readEntries(sr, h, uint64(count), uint64(entrySize), what)
}

// readEntries returns count*size bytes starting at the end of the tag header.
func readEntries(sr *binary.SafeReader, h header, count, size uint64, what string) ([]byte, error) {
	if err := checkEntries(sr, h, count, size, what); err != nil {
		return nil, err
	}
	data := make([]byte, count*size)
	if err := sr.ReadAt(data, int64(h.headerLen), what); err != nil {
		return nil, err
	}
	return data, nil
}
