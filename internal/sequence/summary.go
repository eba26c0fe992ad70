package sequence

import (
	"fmt"
	"sort"
	"strings"
)

// Summary is the derived, read-only view of one sequence.
type Summary struct {
	Key

	Frames      []int // Ascending; duplicates kept.
	First       int
	Last        int
	Missing     []Range
	Count       int
	Resolutions []string // Distinct, sorted.

	TotalSize   int64
	AverageSize int64 // TotalSize / Count, truncated.
	HasSize     bool  // At least one frame carried a size.
}

// Summarize builds the Summary for k. frames must be non-empty; it is not
// modified.
func Summarize(k Key, frames []Frame) Summary {
	nums := make([]int, len(frames))
	seenRes := make(map[string]struct{}, 1)
	s := Summary{Key: k, Count: len(frames)}

	for i, f := range frames {
		nums[i] = f.Number
		if f.Resolution != "" {
			seenRes[f.Resolution] = struct{}{}
		}
		if f.HasSize {
			s.TotalSize += f.Size
			s.HasSize = true
		}
	}
	sort.Ints(nums)

	s.Frames = nums
	s.First = nums[0]
	s.Last = nums[len(nums)-1]
	s.Missing = MissingRanges(nums)

	for r := range seenRes {
		s.Resolutions = append(s.Resolutions, r)
	}
	sort.Strings(s.Resolutions)

	if s.HasSize {
		s.AverageSize = s.TotalSize / int64(s.Count)
	}
	return s
}

// RangeText renders the frame span as "[first-last]".
func (s Summary) RangeText() string {
	return fmt.Sprintf("[%d-%d]", s.First, s.Last)
}

// MissingText renders the missing runs as "[3, 7-9]", or "" when complete.
func (s Summary) MissingText() string {
	if len(s.Missing) == 0 {
		return ""
	}
	return "[" + strings.Join(s.MissingStrings(), ", ") + "]"
}

// MissingStrings returns each missing run rendered with [Range.String].
func (s Summary) MissingStrings() []string {
	out := make([]string, len(s.Missing))
	for i, r := range s.Missing {
		out[i] = r.String()
	}
	return out
}

// MissingCount returns the number of absent frames inside the span.
func (s Summary) MissingCount() int {
	n := 0
	for _, r := range s.Missing {
		n += r.Len()
	}
	return n
}
