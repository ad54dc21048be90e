package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	Primary = lipgloss.Color("#7D56F4")
	Success = lipgloss.Color("#04B575")
	Warning = lipgloss.Color("#FFA500")
	Muted   = lipgloss.Color("#626262")
)

// styles renders for one writer. A renderer bound to a non-terminal writer
// emits plain text.
type styles struct {
	Title lipgloss.Style
	OK    lipgloss.Style
	Warn  lipgloss.Style
	Dim   lipgloss.Style
	Label lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		Title: r.NewStyle().Bold(true).Foreground(Primary),
		OK:    r.NewStyle().Foreground(Success),
		Warn:  r.NewStyle().Foreground(Warning),
		Dim:   r.NewStyle().Foreground(Muted),
		Label: r.NewStyle().Bold(true),
	}
}
