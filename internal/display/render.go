package display

import (
	"fmt"
	"io"

	"github.com/backmassage/lss/internal/config"
	"github.com/backmassage/lss/internal/sequence"
)

// Render sorts a copy of sums and writes it in the given mode.
func Render(w io.Writer, mode config.OutputMode, sums []sequence.Summary, opts Options) error {
	sorted := Sorted(sums)
	switch mode {
	case config.OutputTable, "":
		return RenderTable(w, sorted, opts)
	case config.OutputPlayer:
		return RenderPlayer(w, sorted, opts.Player)
	case config.OutputJSON:
		return RenderJSON(w, opts.Root, sorted)
	default:
		return fmt.Errorf("unknown output mode %q", mode)
	}
}
