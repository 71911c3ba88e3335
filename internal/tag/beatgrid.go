package tag

import (
	"github.com/simonhull/anlz/internal/binary"
	"github.com/simonhull/anlz/internal/types"
)

const beatLen = 8

func init() {
	decoders.Register(TypeBeatGrid, decodeBeatGrid)
}

// decodeBeatGrid decodes PQTZ: two unknown words, the beat count, then
// 8-byte beats (beat number, tempo ×100, time in ms).
func decodeBeatGrid(sr *binary.SafeReader, h header) (Content, error) {
	cr := binary.NewChainReader(binary.NewReader(sr, commonHeaderLen))
	cr.Skip(8)
	count := binary.ReadChained[uint32](cr, "beat count")
	if err := cr.Error(); err != nil {
		return nil, err
	}
	if err := checkEntries(sr, h, uint64(count), beatLen, "beats"); err != nil {
		return nil, err
	}

	cr = binary.NewChainReader(binary.NewReader(sr, int64(h.headerLen)))
	beats := make([]types.Beat, count)
	for i := range beats {
		beats[i] = types.Beat{
			Number: binary.ReadChained[uint16](cr, "beat number"),
			Tempo:  binary.ReadChained[uint16](cr, "beat tempo"),
			Time:   binary.ReadChained[uint32](cr, "beat time"),
		}
	}
	if err := cr.Error(); err != nil {
		return nil, err
	}

	return &BeatGrid{Entries: beats}, nil
}
