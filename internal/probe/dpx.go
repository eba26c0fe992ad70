package probe

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// DPX (SMPTE 268M) file header layout. The image information header starts
// at byte 768; only the first element's size is needed.
const (
	dpxHeaderLen     = 780
	dpxPixelsPerLine = 772
	dpxLinesPerElem  = 776
)

var (
	dpxMagicBE = []byte("SDPX")
	dpxMagicLE = []byte("XPDS")
)

func isDPX(head []byte) bool {
	return bytes.HasPrefix(head, dpxMagicBE) || bytes.HasPrefix(head, dpxMagicLE)
}

func readDPX(r io.Reader) (Resolution, error) {
	buf := make([]byte, dpxHeaderLen)
	if _, err := io.ReadFull(r, buf); err != nil {
		return Resolution{}, fmt.Errorf("dpx: short header: %w", ErrMalformed)
	}

	var order binary.ByteOrder = binary.BigEndian
	if bytes.HasPrefix(buf, dpxMagicLE) {
		order = binary.LittleEndian
	}

	w := order.Uint32(buf[dpxPixelsPerLine:])
	h := order.Uint32(buf[dpxLinesPerElem:])
	if w == 0 || h == 0 || w > maxDimension || h > maxDimension {
		return Resolution{}, fmt.Errorf("dpx: size %dx%d: %w", w, h, ErrMalformed)
	}
	return Resolution{Width: int(w), Height: int(h)}, nil
}
