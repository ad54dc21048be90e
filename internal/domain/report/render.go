package report

import (
	"fmt"
	"io"
	"strings"
	"time"
)

const dayLayout = "Monday 02 January 2006"

// TextOptions controls how dates are presented. Location defaults to UTC.
type TextOptions struct {
	Location *time.Location
}

func (o TextOptions) loc() *time.Location {
	if o.Location == nil {
		return time.UTC
	}
	return o.Location
}

// FormatMinutes renders a minute total as "N hours M minutes", using singular
// and zero forms.
func FormatMinutes(minutes int64) string {
	hours := minutes / 60
	rest := minutes % 60

	var b strings.Builder
	switch {
	case hours == 1:
		b.WriteString("1 hour ")
	case hours > 1:
		fmt.Fprintf(&b, "%d hours ", hours)
	default:
		b.WriteString("zero hours ")
	}
	switch {
	case rest == 1:
		b.WriteString("1 minute")
	case rest > 1:
		fmt.Fprintf(&b, "%d minutes", rest)
	default:
		b.WriteString("zero minutes")
	}
	return b.String()
}

func (r *Report) period(opts TextOptions) (string, string) {
	loc := opts.loc()
	from := "the beginning"
	if r.Start != nil {
		from = r.Start.In(loc).Format(dayLayout)
	}
	to := "now"
	if r.End != nil {
		to = r.End.In(loc).Format(dayLayout)
	}
	return from, to
}

// WriteText writes the human-readable report.
func (r *Report) WriteText(w io.Writer, opts TextOptions) error {
	from, to := r.period(opts)
	var b strings.Builder
	fmt.Fprintf(&b, "Report for %s covering period from %s to %s.\n", r.ProjectName, from, to)

	if len(r.Activities) == 0 {
		b.WriteString("\n  There were no activities recorded.\n")
	} else {
		fmt.Fprintf(&b, "\n  There were %d activities recorded with a total time of %s.\n",
			len(r.Activities), FormatMinutes(r.TotalMinutes()))
		for _, a := range r.Activities {
			fmt.Fprintf(&b, "    %s for %s on %s.\n", a.Name, FormatMinutes(a.Minutes), a.Start.In(opts.loc()).Format(dayLayout))
		}
	}

	if len(r.Counts) > 0 {
		fmt.Fprintf(&b, "\n  The total lines of code in the repositories is %d.\n", r.TotalLines())
	}
	for _, p := range r.Paths() {
		if c, ok := r.LatestCount(p); ok {
			fmt.Fprintf(&b, "    %s has %d lines of code.\n", p, c.Count)
		} else {
			fmt.Fprintf(&b, "    %s has no count of lines of code.\n", p)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Markdown returns the report as a markdown document.
func (r *Report) Markdown(opts TextOptions) string {
	from, to := r.period(opts)
	var b strings.Builder
	fmt.Fprintf(&b, "# Report for %s\n\n", r.ProjectName)
	fmt.Fprintf(&b, "Covering the period from **%s** to **%s**.\n\n", from, to)

	b.WriteString("## Activities\n\n")
	if len(r.Activities) == 0 {
		b.WriteString("There were no activities recorded.\n\n")
	} else {
		fmt.Fprintf(&b, "%d activities, total time **%s**.\n\n", len(r.Activities), FormatMinutes(r.TotalMinutes()))
		b.WriteString("| Activity | Date | Time |\n|---|---|---|\n")
		for _, a := range r.Activities {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", tableCell(a.Name), a.Start.In(opts.loc()).Format(dayLayout), FormatMinutes(a.Minutes))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Lines of code\n\n")
	if len(r.Counts) == 0 {
		b.WriteString("No repositories.\n")
		return b.String()
	}
	fmt.Fprintf(&b, "Total: **%d**\n\n", r.TotalLines())
	for _, p := range r.Paths() {
		if c, ok := r.LatestCount(p); ok {
			fmt.Fprintf(&b, "- `%s`: %d\n", p, c.Count)
		} else {
			fmt.Fprintf(&b, "- `%s`: no count\n", p)
		}
	}
	return b.String()
}

// tableCell escapes pipes so s stays inside one markdown table cell.
func tableCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
