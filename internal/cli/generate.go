package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/rpggio/devtracker/internal/app"
	"github.com/rpggio/devtracker/internal/domain/report"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	formatText     = "text"
	formatJSON     = "json"
	formatMarkdown = "markdown"
)

type reportFlags struct {
	start  string
	end    string
	format string
}

func (f *reportFlags) register(cmd *cobra.Command, withFormat bool) {
	cmd.Flags().StringVar(&f.start, "start", "", "Start of the period (YYYY-MM-DDTHH:MM or DD-MM-YYYY)")
	cmd.Flags().StringVar(&f.end, "end", "", "End of the period (YYYY-MM-DDTHH:MM or DD-MM-YYYY)")
	if withFormat {
		cmd.Flags().StringVar(&f.format, "format", formatText, "Output format: text, json or markdown")
	}
}

func (f *reportFlags) window() (start, end *time.Time, err error) {
	if f.start != "" {
		t, err := parseTime(f.start, time.Local)
		if err != nil {
			return nil, nil, err
		}
		start = &t
	}
	if f.end != "" {
		t, err := parseTime(f.end, time.Local)
		if err != nil {
			return nil, nil, err
		}
		end = &t
	}
	return start, end, nil
}

func (c *CLI) generateCmd() *cobra.Command {
	cmd := group("generate", "Generate a report")

	var reportOpts reportFlags
	reportCmd := &cobra.Command{
		Use:   "report <project>",
		Short: "Summarize activities and line counts of a project",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.generate(cmd, args[0], reportOpts)
		},
	}
	reportOpts.register(reportCmd, true)
	cmd.AddCommand(reportCmd)

	var jsonOpts reportFlags
	jsonCmd := &cobra.Command{
		Use:   "json <project>",
		Short: "Write the report of a project as JSON",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOpts.format = formatJSON
			return c.generate(cmd, args[0], jsonOpts)
		},
	}
	jsonOpts.register(jsonCmd, false)
	cmd.AddCommand(jsonCmd)

	return cmd
}

func (c *CLI) generate(cmd *cobra.Command, projectName string, flags reportFlags) error {
	switch flags.format {
	case formatText, formatJSON, formatMarkdown:
	default:
		return newUsageError(fmt.Errorf("unknown format %q, expected text, json or markdown", flags.format))
	}
	start, end, err := flags.window()
	if err != nil {
		return err
	}

	return c.run(cmd, func(ctx context.Context, a *app.App) error {
		proj, err := lookupProject(ctx, a.Store, projectName)
		if err != nil {
			return err
		}
		rep, err := a.Store.CreateReport(ctx, proj, start, end)
		if err != nil {
			return err
		}
		return writeReport(cmd.OutOrStdout(), rep, flags.format)
	})
}

func writeReport(w io.Writer, rep *report.Report, format string) error {
	opts := report.TextOptions{Location: time.Local}

	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case formatMarkdown:
		md := rep.Markdown(opts)
		if width, ok := terminalWidth(w); ok {
			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(width),
			)
			if err != nil {
				return fmt.Errorf("creating markdown renderer: %w", err)
			}
			out, err := renderer.Render(md)
			if err != nil {
				return fmt.Errorf("rendering markdown: %w", err)
			}
			md = out
		}
		_, err := io.WriteString(w, md)
		return err
	default:
		return rep.WriteText(w, opts)
	}
}

// terminalWidth reports the width of w when it is a terminal.
func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 80, true
	}
	return min(width, 120), true
}
