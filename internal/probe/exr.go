package probe

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/h2non/filetype"
)

// exrType is registered with filetype, which has no built-in OpenEXR matcher.
var exrType = filetype.NewType("exr", "image/x-exr")

func init() {
	filetype.AddMatcher(exrType, isEXR)
}

// isEXR reports whether head starts with the OpenEXR magic 76 2f 31 01.
func isEXR(head []byte) bool {
	return len(head) >= 4 &&
		head[0] == 0x76 && head[1] == 0x2f && head[2] == 0x31 && head[3] == 0x01
}

const (
	// maxDimension rejects absurd sizes from corrupt headers.
	maxDimension = 1 << 20

	// exrMaxAttrSize bounds a single attribute value we are willing to skip.
	exrMaxAttrSize = 1 << 24

	// exrMaxNameLen matches the long-names limit of the format.
	exrMaxNameLen = 255
)

// readEXR walks the OpenEXR header attribute list (name, type, size, value)
// until it finds dataWindow (box2i) and returns its extent. For multi-part
// files the first part's header is used.
func readEXR(br *bufio.Reader) (Resolution, error) {
	var preamble [8]byte // magic + version/flags
	if _, err := io.ReadFull(br, preamble[:]); err != nil {
		return Resolution{}, fmt.Errorf("exr: short preamble: %w", ErrMalformed)
	}

	for {
		name, err := readCString(br)
		if err != nil {
			return Resolution{}, err
		}
		if name == "" {
			return Resolution{}, fmt.Errorf("exr: no dataWindow attribute: %w", ErrMalformed)
		}
		typ, err := readCString(br)
		if err != nil {
			return Resolution{}, err
		}
		var size int32
		if err := binary.Read(br, binary.LittleEndian, &size); err != nil {
			return Resolution{}, fmt.Errorf("exr: attribute %q: %w", name, ErrMalformed)
		}
		if size < 0 || size > exrMaxAttrSize {
			return Resolution{}, fmt.Errorf("exr: attribute %q size %d: %w", name, size, ErrMalformed)
		}

		if name == "dataWindow" && typ == "box2i" && size == 16 {
			var box [4]int32 // xMin, yMin, xMax, yMax
			if err := binary.Read(br, binary.LittleEndian, &box); err != nil {
				return Resolution{}, fmt.Errorf("exr: dataWindow: %w", ErrMalformed)
			}
			w := int64(box[2]) - int64(box[0]) + 1
			h := int64(box[3]) - int64(box[1]) + 1
			if w <= 0 || h <= 0 || w > maxDimension || h > maxDimension {
				return Resolution{}, fmt.Errorf("exr: dataWindow %v: %w", box, ErrMalformed)
			}
			return Resolution{Width: int(w), Height: int(h)}, nil
		}

		if _, err := br.Discard(int(size)); err != nil {
			return Resolution{}, fmt.Errorf("exr: attribute %q: %w", name, ErrMalformed)
		}
	}
}

func readCString(br *bufio.Reader) (string, error) {
	buf := make([]byte, 0, 32)
	for {
		c, err := br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", fmt.Errorf("exr: truncated header: %w", ErrMalformed)
			}
			return "", err
		}
		if c == 0 {
			return string(buf), nil
		}
		if len(buf) == exrMaxNameLen {
			return "", fmt.Errorf("exr: attribute name too long: %w", ErrMalformed)
		}
		buf = append(buf, c)
	}
}
