package tag

import (
	"strings"

	"golang.org/x/text/encoding/unicode"

	"github.com/simonhull/anlz/internal/binary"
)

func init() {
	decoders.Register(TypePath, decodePath)
}

var utf16BE = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// decodePath decodes PPTH: byte length, then a NUL-terminated UTF-16BE path.
func decodePath(sr *binary.SafeReader, h header) (Content, error) {
	n, err := binary.Read[uint32](sr, commonHeaderLen, "path length")
	if err != nil {
		return nil, err
	}
	data, err := readEntries(sr, h, uint64(n)/2, 2, "path")
	if err != nil {
		return nil, err
	}

	path, err := utf16BE.NewDecoder().Bytes(data)
	if err != nil {
		return nil, err
	}
	return &TrackPath{Path: strings.TrimRight(string(path), "\x00")}, nil
}
