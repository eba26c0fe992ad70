package display

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// styles holds the table decorations. The zero value renders plain text.
type styles struct {
	header lipgloss.Style
	rule   lipgloss.Style
	dir    lipgloss.Style
	gap    lipgloss.Style
	on     bool
}

func newStyles(w io.Writer, color bool) styles {
	if !color {
		return styles{}
	}
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI256)
	return styles{
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		rule:   r.NewStyle().Foreground(lipgloss.Color("242")),
		dir:    r.NewStyle().Foreground(lipgloss.Color("214")),
		gap:    r.NewStyle().Foreground(lipgloss.Color("203")),
		on:     true,
	}
}

func (s styles) render(st lipgloss.Style, text string) string {
	if !s.on || text == "" {
		return text
	}
	return st.Render(text)
}
