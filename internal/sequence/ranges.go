package sequence

// MissingRanges returns the maximal runs of integers inside [min, max] that
// are absent from sorted (ascending, duplicates allowed). Frames outside the
// observed span are never reported; a single-frame input yields nil.
// Only neighbouring frames are compared, so the cost is linear in
// len(sorted) however wide the span is.
func MissingRanges(sorted []int) []Range {
	var out []Range
	for i := 1; i < len(sorted); i++ {
		prev, next := sorted[i-1], sorted[i]
		if next > prev+1 {
			out = append(out, Range{Start: prev + 1, End: next - 1})
		}
	}
	return out
}
