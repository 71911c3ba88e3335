package tag

import (
	"fmt"

	"github.com/simonhull/anlz/internal/binary"
	"github.com/simonhull/anlz/internal/types"
)

// cuePointMinLen covers every PCPT field up to and including the loop time.
const cuePointMinLen = 40

func init() {
	decoders.Register(TypeCueList, decodeCueList)
}

// decodeCueList decodes PCOB: list type, cue count, memory count, then
// len_cues nested PCPT entries each carrying its own length.
func decodeCueList(sr *binary.SafeReader, h header) (Content, error) {
	cr := binary.NewChainReader(binary.NewReader(sr, commonHeaderLen))
	listType := binary.ReadChained[uint32](cr, "cue list type")
	cr.Skip(2)
	count := binary.ReadChained[uint16](cr, "cue count")
	memoryCount := binary.ReadChained[uint32](cr, "memory count")
	if err := cr.Error(); err != nil {
		return nil, err
	}
	if err := checkEntries(sr, h, uint64(count), cuePointMinLen, "cue points"); err != nil {
		return nil, err
	}

	list := &CueList{
		Type:        types.CueListType(listType),
		MemoryCount: memoryCount,
		Entries:     make([]types.CuePoint, 0, count),
	}

	offset := int64(h.headerLen)
	for i := 0; i < int(count); i++ {
		cue, n, err := decodeCuePoint(sr, offset)
		if err != nil {
			return nil, fmt.Errorf("cue point %d: %w", i, err)
		}
		list.Entries = append(list.Entries, cue)
		offset += n
	}

	return list, nil
}

// decodeCuePoint decodes one PCPT entry at offset and returns it with its length.
func decodeCuePoint(sr *binary.SafeReader, offset int64) (types.CuePoint, int64, error) {
	cr := binary.NewChainReader(binary.NewReader(sr, offset))
	magic := cr.String(4, "cue point magic")
	headerLen := binary.ReadChained[uint32](cr, "cue point header length")
	entryLen := binary.ReadChained[uint32](cr, "cue point length")
	if err := cr.Error(); err != nil {
		return types.CuePoint{}, 0, err
	}
	if magic != TypeCuePoint {
		return types.CuePoint{}, 0, fmt.Errorf("invalid cue point magic %q", magic)
	}
	if entryLen < cuePointMinLen || headerLen > entryLen {
		return types.CuePoint{}, 0, fmt.Errorf("invalid cue point lengths: header %d, entry %d", headerLen, entryLen)
	}

	entry, err := sr.Sub(offset, int64(entryLen), "cue point")
	if err != nil {
		return types.CuePoint{}, 0, err
	}

	cr = binary.NewChainReader(binary.NewReader(entry, commonHeaderLen))
	cue := types.CuePoint{
		HotCue: binary.ReadChained[uint32](cr, "hot cue number"),
		Status: types.CueStatus(binary.ReadChained[uint32](cr, "cue status")),
	}
	cr.Skip(4)
	cue.OrderFirst = binary.ReadChained[uint16](cr, "cue order first")
	cue.OrderLast = binary.ReadChained[uint16](cr, "cue order last")
	cue.Type = types.CueType(binary.ReadChained[uint8](cr, "cue type"))
	cr.Skip(3)
	cue.Time = binary.ReadChained[uint32](cr, "cue time")
	cue.LoopTime = binary.ReadChained[uint32](cr, "cue loop time")
	if err := cr.Error(); err != nil {
		return types.CuePoint{}, 0, err
	}

	return cue, int64(entryLen), nil
}
