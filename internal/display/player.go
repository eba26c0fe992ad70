package display

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/backmassage/lss/internal/sequence"
)

// RenderPlayer writes one "<player> <dir/>name.*.ext" line per sequence,
// with a blank line between directories. The directory is omitted for
// sequences at the scan root.
func RenderPlayer(w io.Writer, sums []sequence.Summary, player string) error {
	var b strings.Builder
	for i := range sums {
		s := &sums[i]
		if i > 0 && s.Dir != sums[i-1].Dir {
			b.WriteByte('\n')
		}
		b.WriteString(player)
		b.WriteByte(' ')
		b.WriteString(PlayerPattern(s.Key))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// PlayerPattern returns the wildcard path a player opens for k.
func PlayerPattern(k sequence.Key) string {
	name := k.Name() + ".*." + k.Ext
	if k.Dir == "" || k.Dir == "." {
		return name
	}
	return filepath.Join(k.Dir, name)
}
