package tag

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/simonhull/anlz/internal/binary"
	"github.com/simonhull/anlz/internal/types"
)

const fileMagic = "PMAI"

// DecodeBytes decodes an in-memory ANLZ container.
func DecodeBytes(data []byte, path string) ([]Tag, error) {
	return Decode(bytes.NewReader(data), int64(len(data)), path)
}

// Decode reads the ANLZ container in r and returns its tags in file order.
//
// Any violation of the container grammar, including truncation anywhere in
// the file, yields a *types.MalformedInputError and no tags.
func Decode(r io.ReaderAt, size int64, path string) ([]Tag, error) {
	sr := binary.NewSafeReader(r, size, path)

	if size < commonHeaderLen {
		return nil, malformed(path, 0, "file too small for PMAI header", nil)
	}

	cr := binary.NewChainReader(binary.NewReader(sr, 0))
	magic := cr.String(4, "file magic")
	headerLen := binary.ReadChained[uint32](cr, "file header length")
	fileLen := binary.ReadChained[uint32](cr, "file length")
	if err := cr.Error(); err != nil {
		return nil, malformed(path, 0, "read file header", err)
	}

	if magic != fileMagic {
		return nil, malformed(path, 0, fmt.Sprintf("invalid magic %q, expected %q", magic, fileMagic), nil)
	}
	if headerLen < commonHeaderLen || int64(headerLen) > size {
		return nil, malformed(path, 4, fmt.Sprintf("invalid file header length %d", headerLen), nil)
	}
	if fileLen < headerLen {
		return nil, malformed(path, 8, fmt.Sprintf("file length %d smaller than header length %d", fileLen, headerLen), nil)
	}
	if int64(fileLen) > size {
		return nil, malformed(path, 8, fmt.Sprintf("truncated: header declares %d bytes, input has %d", fileLen, size), nil)
	}

	end := int64(fileLen)
	var tags []Tag
	for offset := int64(headerLen); offset < end; {
		t, err := decodeTag(sr, offset, end)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
		offset += int64(t.Len)
	}

	return tags, nil
}

// decodeTag decodes the tag at offset; end bounds the tag sequence.
func decodeTag(sr *binary.SafeReader, offset, end int64) (Tag, error) {
	path := sr.Path()
	if end-offset < commonHeaderLen {
		return Tag{}, malformed(path, offset, "truncated tag header", nil)
	}

	cr := binary.NewChainReader(binary.NewReader(sr, offset))
	typ := cr.String(4, "tag type")
	headerLen := binary.ReadChained[uint32](cr, "tag header length")
	tagLen := binary.ReadChained[uint32](cr, "tag length")
	if err := cr.Error(); err != nil {
		return Tag{}, malformed(path, offset, "read tag header", err)
	}

	if headerLen < commonHeaderLen {
		return Tag{}, malformed(path, offset, fmt.Sprintf("%s tag header length %d below minimum", typ, headerLen), nil)
	}
	if tagLen < headerLen {
		return Tag{}, malformed(path, offset, fmt.Sprintf("%s tag length %d smaller than header length %d", typ, tagLen, headerLen), nil)
	}
	if offset+int64(tagLen) > end {
		return Tag{}, malformed(path, offset, fmt.Sprintf("truncated %s tag: %d bytes declared, %d available", typ, tagLen, end-offset), nil)
	}

	tagReader, err := sr.Sub(offset, int64(tagLen), typ+" tag")
	if err != nil {
		return Tag{}, malformed(path, offset, "bound tag", err)
	}

	h := header{typ: typ, offset: offset, headerLen: headerLen, tagLen: tagLen}
	decode, ok := decoders.Get(typ)
	if !ok {
		decode = decodeRaw
	}

	content, err := decode(tagReader, h)
	if err != nil {
		errOffset := offset
		var be *binary.BoundsError
		if errors.As(err, &be) {
			errOffset = be.Offset
		}
		return Tag{}, malformed(path, errOffset, fmt.Sprintf("decode %s tag", typ), err)
	}

	return Tag{
		Type:      typ,
		Offset:    offset,
		HeaderLen: headerLen,
		Len:       tagLen,
		Content:   content,
	}, nil
}

// checkEntries verifies that count entries of entrySize bytes fit in the tag
// body, so a corrupt count cannot trigger a huge allocation.
func checkEntries(sr *binary.SafeReader, h header, count uint64, entrySize uint64, what string) error {
	body := uint64(sr.Size()) - uint64(h.headerLen)
	if entrySize == 0 || count > body/entrySize {
		return fmt.Errorf("%d %s of %d bytes exceed tag body of %d bytes", count, what, entrySize, body)
	}
	return nil
}

func malformed(path string, offset int64, reason string, err error) *types.MalformedInputError {
	return &types.MalformedInputError{
		Path:   path,
		Offset: offset,
		Reason: reason,
		Err:    err,
	}
}

func decodeRaw(sr *binary.SafeReader, h header) (Content, error) {
	data := make([]byte, h.tagLen-h.headerLen)
	if err := sr.ReadAt(data, int64(h.headerLen), h.typ+" payload"); err != nil {
		return nil, err
	}
	return &Raw{Data: data}, nil
}
