package display

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/backmassage/lss/internal/sequence"
)

// Options selects optional columns and decorations.
type Options struct {
	Count      bool
	Resolution bool
	Size       bool
	PathWidth  int    // Cap of the path column; <= 0 means DefaultPathWidth.
	Player     string // Player mode command.
	Root       string // Reported by JSON mode.
	Color      bool
}

// DefaultPathWidth caps the path column when Options.PathWidth is unset.
const DefaultPathWidth = 30

// column is one table column. sep is written before the cell.
type column struct {
	title string
	width int
	sep   string
	value func(s *sequence.Summary) string
	style func(st styles) lipgloss.Style
}

// RenderTable writes the column table for sums in the given order: a header,
// an "=" rule of header width, then one row per sequence. A "-" rule
// separates directories and repeated directory names are left blank.
// Nothing is written for an empty input.
func RenderTable(w io.Writer, sums []sequence.Summary, opts Options) error {
	if len(sums) == 0 {
		return nil
	}
	st := newStyles(w, opts.Color)
	pathW := pathColumnWidth(sums, opts.PathWidth)
	cols := tableColumns(opts)

	var b strings.Builder
	header, headerW := headerLine(pathW, cols)
	writeLine(&b, st.render(st.header, header))
	writeLine(&b, st.render(st.rule, strings.Repeat("=", headerW)))

	lastDir := ""
	for i := range sums {
		s := &sums[i]
		pathCell := ""
		if i == 0 || s.Dir != lastDir {
			if i > 0 {
				writeLine(&b, st.render(st.rule, strings.Repeat("-", headerW)))
			}
			pathCell = truncate(s.Dir, pathW)
		}
		lastDir = s.Dir

		var row strings.Builder
		row.WriteString(st.render(st.dir, pathCell))
		row.WriteString(pad(pathCell, pathW))
		for _, c := range cols {
			text := c.value(s)
			row.WriteString(c.sep)
			if c.style != nil {
				row.WriteString(st.render(c.style(st), text))
			} else {
				row.WriteString(text)
			}
			row.WriteString(pad(text, c.width))
		}
		writeLine(&b, row.String())
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func tableColumns(opts Options) []column {
	cols := []column{
		{title: "name", width: 20, sep: " ", value: func(s *sequence.Summary) string { return s.Name() }},
		{title: "range", width: 15, sep: " ", value: func(s *sequence.Summary) string { return s.RangeText() }},
		{title: "pad", width: 4, sep: " ", value: func(s *sequence.Summary) string { return strconv.Itoa(s.Padding) }},
		{title: "ext", width: 4, sep: " ", value: func(s *sequence.Summary) string { return s.Ext }},
	}
	if opts.Count {
		cols = append(cols, column{title: "count", width: 6, sep: " ",
			value: func(s *sequence.Summary) string { return strconv.Itoa(s.Count) }})
	}
	if opts.Resolution {
		cols = append(cols, column{title: "resolution", width: 12, sep: " ",
			value: func(s *sequence.Summary) string { return strings.Join(s.Resolutions, ", ") }})
	}
	if opts.Size {
		cols = append(cols,
			column{title: "size", width: 10, sep: "    ", value: func(s *sequence.Summary) string {
				return sizeText(s.HasSize, s.TotalSize)
			}},
			column{title: "avg size", width: 10, sep: " ", value: func(s *sequence.Summary) string {
				return sizeText(s.HasSize, s.AverageSize)
			}},
		)
	}
	cols = append(cols, column{title: "missing", width: 20, sep: " ",
		value: func(s *sequence.Summary) string { return s.MissingText() },
		style: func(st styles) lipgloss.Style { return st.gap },
	})
	return cols
}

// headerLine returns the trimmed header and its untrimmed display width,
// which is the width of both rules.
func headerLine(pathW int, cols []column) (string, int) {
	var b strings.Builder
	b.WriteString(runewidth.FillRight("path", pathW))
	for _, c := range cols {
		b.WriteString(c.sep)
		b.WriteString(runewidth.FillRight(c.title, c.width))
	}
	full := b.String()
	return strings.TrimRight(full, " "), runewidth.StringWidth(full)
}

// pathColumnWidth is the longest directory plus two, capped at limit.
func pathColumnWidth(sums []sequence.Summary, limit int) int {
	if limit <= 0 {
		limit = DefaultPathWidth
	}
	longest := 0
	for i := range sums {
		longest = max(longest, runewidth.StringWidth(sums[i].Dir))
	}
	return min(longest+2, limit)
}

func truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// pad returns the spaces that fill text out to width cells.
func pad(text string, width int) string {
	n := width - runewidth.StringWidth(text)
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

func sizeText(ok bool, n int64) string {
	if !ok {
		return ""
	}
	return FormatSize(n)
}

func writeLine(b *strings.Builder, line string) {
	b.WriteString(strings.TrimRight(line, " "))
	b.WriteByte('\n')
}
