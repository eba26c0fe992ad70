package probe

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped) by ReadResolution.
var (
	ErrUnsupported = errors.New("unsupported image header")
	ErrMalformed   = errors.New("malformed image header")
)

// Resolution is the pixel size declared by an image header.
type Resolution struct {
	Width  int
	Height int
}

// String renders "WxH", the form used in sequence summaries.
func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}
