package sequence

import (
	"fmt"
	"strconv"
)

// Key identifies a sequence. Two files belong to the same sequence iff their
// keys are equal; Padding is part of identity, so "a.01.exr" and "a.001.exr"
// never merge.
type Key struct {
	Base        string
	SubCategory string
	Padding     int
	Ext         string
	Dir         string // Relative to the scan root; "." for the root.
}

// Name is the display name: base plus sub-category.
func (k Key) Name() string { return k.Base + k.SubCategory }

// Frame is the per-file record produced once for each matched file.
type Frame struct {
	Number     int
	Resolution string // "WxH"; empty when not requested or unreadable.
	Size       int64
	HasSize    bool
}

// Entry pairs a frame with the sequence it belongs to.
type Entry struct {
	Key   Key
	Frame Frame
}

// Range is a closed run of frame numbers.
type Range struct {
	Start int
	End   int
}

// String renders "3" for a single frame and "3-4" for a run.
func (r Range) String() string {
	if r.Start == r.End {
		return strconv.Itoa(r.Start)
	}
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// Len returns how many frame numbers the range covers.
func (r Range) Len() int { return r.End - r.Start + 1 }
