package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantOK  bool
		base    string
		sub     string
		digits  string
		ext     string
		frame   int
		padding int
	}{
		{"plain", "a.0001.exr", true, "a", "", "0001", "exr", 1, 4},
		{"underscored base", "shot_001.0042.exr", true, "shot_001", "", "0042", "exr", 42, 4},
		{"sub-category", "c.depth.0001.exr", true, "c", ".depth", "0001", "exr", 1, 4},
		{"dotted base keeps last token as sub", "plate.v002.beauty.1001.dpx", true, "plate.v002", ".beauty", "1001", "dpx", 1001, 4},
		{"unpadded", "b.1.exr", true, "b", "", "1", "exr", 1, 1},
		{"two digits", "b.01.exr", true, "b", "", "01", "exr", 1, 2},
		{"numeric sub-category", "a.1.2.exr", true, "a", ".1", "2", "exr", 2, 1},
		{"zero frame", "z.0000.png", true, "z", "", "0000", "png", 0, 4},
		{"empty base", ".0001.exr", true, "", "", "0001", "exr", 1, 4},
		{"unicode sub-category", "a.dépth.0001.exr", true, "a", ".dépth", "0001", "exr", 1, 4},
		{"unicode extension", "plan.0001.bildé", true, "plan", "", "0001", "bildé", 1, 4},
		{"no frame segment", "readme.txt", false, "", "", "", "", 0, 0},
		{"frame without dot", "shot0001.exr", false, "", "", "", "", 0, 0},
		{"no extension", "a.0001", false, "", "", "", "", 0, 0},
		{"trailing dot", "a.0001.", false, "", "", "", "", 0, 0},
		{"overflowing frame", "a.99999999999999999999999.exr", false, "", "", "", "", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := Parse(tt.in)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.base, m.Base)
			assert.Equal(t, tt.sub, m.SubCategory)
			assert.Equal(t, tt.digits, m.Digits)
			assert.Equal(t, tt.ext, m.Ext)
			assert.Equal(t, tt.frame, m.Frame())
			assert.Equal(t, tt.padding, m.Padding())
		})
	}
}

func TestMatchKey_PaddingIsIdentity(t *testing.T) {
	a, ok := Parse("b.1.exr")
	require.True(t, ok)
	b, ok := Parse("b.01.exr")
	require.True(t, ok)

	assert.Equal(t, a.Frame(), b.Frame())
	assert.NotEqual(t, a.Key("."), b.Key("."))
}

func TestMatchKey_SubCategorySplits(t *testing.T) {
	a, _ := Parse("c.depth.0001.exr")
	b, _ := Parse("c.0001.exr")

	assert.Equal(t, a.Base, b.Base)
	assert.NotEqual(t, a.Key("."), b.Key("."))
	assert.Equal(t, "c.depth", a.Key(".").Name())
}

func TestMatchKey_DirIsIdentity(t *testing.T) {
	m, _ := Parse("a.0001.exr")
	assert.NotEqual(t, m.Key("."), m.Key("shots"))
}
