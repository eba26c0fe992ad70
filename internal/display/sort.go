package display

import (
	"cmp"
	"slices"

	"github.com/backmassage/lss/internal/sequence"
)

// Sort orders sums in place by directory, base name, range text, then
// sequences without a sub-category before those with one, then
// sub-category. Range text is compared as a string, so "[10-12]" sorts
// before "[9-9]".
func Sort(sums []sequence.Summary) {
	slices.SortStableFunc(sums, compareSummary)
}

// Sorted returns a sorted copy of sums.
func Sorted(sums []sequence.Summary) []sequence.Summary {
	out := slices.Clone(sums)
	Sort(out)
	return out
}

func compareSummary(a, b sequence.Summary) int {
	return cmp.Or(
		cmp.Compare(a.Dir, b.Dir),
		cmp.Compare(a.Base, b.Base),
		cmp.Compare(a.RangeText(), b.RangeText()),
		cmp.Compare(hasSub(a), hasSub(b)),
		cmp.Compare(a.SubCategory, b.SubCategory),
	)
}

func hasSub(s sequence.Summary) int {
	if s.SubCategory == "" {
		return 0
	}
	return 1
}
