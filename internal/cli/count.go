package cli

import (
	"context"
	"fmt"

	"github.com/rpggio/devtracker/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) countCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count <project>",
		Short: "Count lines of code in every repo of a project",
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
				if len(repos) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\n", st.Warn.Render(proj.Name+" has no repos"))
					return nil
				}

				var total uint64
				for i := range repos {
					cnt, err := a.Store.CreateCount(ctx, &repos[i])
					if err != nil {
						return err
					}
					total += cnt.Total
					fmt.Fprintf(cmd.OutOrStdout(), "  %s %d lines\n", repos[i].Path, cnt.Total)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d lines\n", st.Label.Render("Total"), total)
				return nil
			})
		},
	}
}
