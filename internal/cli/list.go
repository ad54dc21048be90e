package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rpggio/devtracker/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) listCmd() *cobra.Command {
	cmd := group("list", "List projects, activities, activity types, repos or counts")

	var verbose bool
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show ids")

	id := func(n uint64) string {
		if !verbose {
			return ""
		}
		return fmt.Sprintf("[%d] ", n)
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "projects",
		Short: "List all projects",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App) error {
				projects, err := a.Store.GetProjects(ctx)
				if err != nil {
					return err
				}
				if len(projects) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), newStyles(cmd.OutOrStdout()).Dim.Render("No projects"))
				}
				for _, p := range projects {
					fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", id(p.ID), p.Name)
				}
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "activities <project>",
		Short: "List the activities of a project",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App) error {
				st := newStyles(cmd.OutOrStdout())
				proj, err := lookupProject(ctx, a.Store, args[0])
				if err != nil {
					return err
				}
				activities, err := a.Store.GetActivities(ctx, proj)
				if err != nil {
					return err
				}
				types, err := a.Store.GetActivityTypes(ctx)
				if err != nil {
					return err
				}
				names := make(map[uint64]string, len(types))
				for _, at := range types {
					names[at.ID] = at.Name
				}

				now := time.Now()
				for _, act := range activities {
					name, ok := names[act.TypeID]
					if !ok {
						name = "Unknown"
					}
					state := st.Warn.Render("running")
					if !act.IsRunning() {
						state = "until " + formatTime(*act.End)
					}
					line := fmt.Sprintf("%s%s %s %s (%s)", id(act.ID), name, formatTime(act.Start), state,
						formatDuration(act.Elapsed(now)))
					if act.Description != nil {
						line += " " + st.Dim.Render(*act.Description)
					}
					fmt.Fprintln(cmd.OutOrStdout(), line)
				}
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "activity-types",
		Aliases: []string{"ats"},
		Short:   "List activity types",
		Args:    exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App) error {
				st := newStyles(cmd.OutOrStdout())
				types, err := a.Store.GetActivityTypes(ctx)
				if err != nil {
					return err
				}
				for _, at := range types {
					line := id(at.ID) + at.Name
					if at.Description != nil {
						line += " " + st.Dim.Render(*at.Description)
					}
					fmt.Fprintln(cmd.OutOrStdout(), line)
				}
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "repos <project>",
		Short: "List the repos of a project",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App) error {
				proj, err := lookupProject(ctx, a.Store, args[0])
				if err != nil {
					return err
				}
				repos, err := a.Store.GetRepos(ctx, proj)
				if err != nil {
					return err
				}
				for _, rp := range repos {
					fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", id(rp.ID), rp.Path)
				}
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "counts <project>",
		Short: "List the counts of every repo of a project",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App) error {
				st := newStyles(cmd.OutOrStdout())
				proj, err := lookupProject(ctx, a.Store, args[0])
				if err != nil {
					return err
				}
				repos, err := a.Store.GetRepos(ctx, proj)
				if err != nil {
					return err
				}
				for i := range repos {
					counts, err := a.Store.GetCounts(ctx, &repos[i])
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), st.Label.Render(repos[i].Path))
					for _, cnt := range counts {
						fmt.Fprintf(cmd.OutOrStdout(), "  %s%s %d lines\n", id(cnt.ID), formatTime(cnt.Date), cnt.Total)
					}
				}
				return nil
			})
		},
	})

	return cmd
}
