package sequence

import (
	"regexp"
	"strconv"
)

// framePattern splits "<base>[.<sub>].<digits>.<ext>". The base is
// non-greedy so the sub-category and frame groups claim as much as they can.
// Word characters are Unicode letters, digits and underscore, so ".dépth"
// is a sub-category like ".depth".
var framePattern = regexp.MustCompile(`^(.*?)(\.[\p{L}\p{N}_]+)?\.(\d+)\.([\p{L}\p{N}_]+)$`)

// Match is the structured result of classifying one filename.
type Match struct {
	Base        string
	SubCategory string // Leading dot kept (".depth"); "" when absent.
	Digits      string // Literal frame text, leading zeros included.
	Ext         string
	frame       int
}

// Parse classifies name as a sequence member. The second return value is
// false for names that do not have the "<base>.<digits>.<ext>" shape or whose
// frame number does not fit in an int.
func Parse(name string) (Match, bool) {
	m := framePattern.FindStringSubmatch(name)
	if m == nil {
		return Match{}, false
	}
	n, err := strconv.Atoi(m[3])
	if err != nil {
		return Match{}, false
	}
	return Match{
		Base:        m[1],
		SubCategory: m[2],
		Digits:      m[3],
		Ext:         m[4],
		frame:       n,
	}, true
}

// Frame returns the numeric frame value (leading zeros ignored).
func (m Match) Frame() int { return m.frame }

// Padding returns the digit count of the frame text.
func (m Match) Padding() int { return len(m.Digits) }

// Key builds the sequence identity for a file found in dir (relative to the
// scan root, "." for the root itself).
func (m Match) Key(dir string) Key {
	return Key{
		Base:        m.Base,
		SubCategory: m.SubCategory,
		Padding:     m.Padding(),
		Ext:         m.Ext,
		Dir:         dir,
	}
}
