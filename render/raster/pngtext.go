package raster

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
)

const (
	// KeyConfig holds the VIL document a PNG was rendered from.
	KeyConfig    = "vilConfig"
	KeyGenerator = "generator"

	maxKeywordLen = 79
	maxChunkLen   = 1<<31 - 1
	ihdrEnd       = 8 + 4 + 4 + 13 + 4
)

var (
	pngSignature = []byte("\x89PNG\r\n\x1a\n")

	ErrNotPNG     = errors.New("not a PNG image")
	ErrBadChunk   = errors.New("corrupt PNG chunk")
	ErrBadKeyword = errors.New("invalid tEXt keyword")
)

type textChunk struct {
	key   string
	value string
}

// SetText stores a key/value pair that Encode writes as a tEXt chunk right
// after the image header. Setting a key again replaces its value.
func (s *Surface) SetText(key, value string) error {
	if key == "" || len(key) > maxKeywordLen || bytes.IndexByte([]byte(key), 0) >= 0 {
		return fmt.Errorf("%w: %q", ErrBadKeyword, key)
	}

	for i := range s.texts {
		if s.texts[i].key == key {
			s.texts[i].value = value
			return nil
		}
	}

	s.texts = append(s.texts, textChunk{key: key, value: value})

	return nil
}

func writeChunk(w *bytes.Buffer, kind string, data []byte) {
	var n [4]byte

	binary.BigEndian.PutUint32(n[:], uint32(len(data)))
	w.Write(n[:])

	crc := crc32.NewIEEE()
	crc.Write([]byte(kind))
	crc.Write(data)

	w.WriteString(kind)
	w.Write(data)

	binary.BigEndian.PutUint32(n[:], crc.Sum32())
	w.Write(n[:])
}

// withText splices tEXt chunks into an encoded PNG.
func withText(encoded []byte, texts []textChunk) ([]byte, error) {
	if len(encoded) < ihdrEnd || !bytes.Equal(encoded[:8], pngSignature) || string(encoded[12:16]) != "IHDR" {
		return nil, ErrNotPNG
	}

	var out bytes.Buffer

	out.Grow(len(encoded))
	out.Write(encoded[:ihdrEnd])

	for _, t := range texts {
		data := make([]byte, 0, len(t.key)+1+len(t.value))
		data = append(data, t.key...)
		data = append(data, 0)
		data = append(data, t.value...)

		writeChunk(&out, "tEXt", data)
	}

	out.Write(encoded[ihdrEnd:])

	return out.Bytes(), nil
}

// ReadText returns every tEXt entry of a PNG stream.
func ReadText(r io.Reader) (map[string]string, error) {
	sig := make([]byte, len(pngSignature))
	if _, err := io.ReadFull(r, sig); err != nil || !bytes.Equal(sig, pngSignature) {
		return nil, ErrNotPNG
	}

	texts := make(map[string]string)

	var header [8]byte

	for {
		if _, err := io.ReadFull(r, header[:]); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadChunk, err)
		}

		size := binary.BigEndian.Uint32(header[:4])
		kind := string(header[4:])

		if size > maxChunkLen {
			return nil, fmt.Errorf("%w: %s length %d", ErrBadChunk, kind, size)
		}

		body := make([]byte, int64(size)+4)
		if _, err := io.ReadFull(r, body); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrBadChunk, kind, err)
		}

		data := body[:size]

		crc := crc32.NewIEEE()
		crc.Write(header[4:])
		crc.Write(data)

		if crc.Sum32() != binary.BigEndian.Uint32(body[size:]) {
			return nil, fmt.Errorf("%w: %s checksum mismatch", ErrBadChunk, kind)
		}

		switch kind {
		case "tEXt":
			if key, value, ok := bytes.Cut(data, []byte{0}); ok {
				texts[string(key)] = string(value)
			}
		case "IEND":
			return texts, nil
		}
	}
}
