package cli

import (
	"context"
	"fmt"

	"github.com/rpggio/devtracker/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) stopCmd() *cobra.Command {
	cmd := group("stop", "Stop the running activity")

	cmd.AddCommand(&cobra.Command{
		Use:   "activity <project>",
		Short: "Stop the running activity of a project",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App) error {
				st := newStyles(cmd.OutOrStdout())
				proj, err := lookupProject(ctx, a.Store, args[0])
				if err != nil {
					return err
				}
				act, err := a.Store.StopRunningActivity(ctx, proj)
				if err != nil {
					return err
				}
				if act == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\n", st.Warn.Render("No running activity for "+proj.Name))
					return nil
				}
				d, _ := act.Duration()
				fmt.Fprintf(cmd.OutOrStdout(), "%s activity %d on %s after %s\n",
					st.OK.Render("Stopped"), act.ID, proj.Name, formatDuration(d))
				return nil
			})
		},
	})

	return cmd
}
