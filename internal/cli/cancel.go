package cli

import (
	"context"
	"fmt"

	"github.com/rpggio/devtracker/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) cancelCmd() *cobra.Command {
	cmd := group("cancel", "Cancel the running activity")

	cmd.AddCommand(&cobra.Command{
		Use:   "activity <project>",
		Short: "Discard the running activity of a project without recording it",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App) error {
				st := newStyles(cmd.OutOrStdout())
				proj, err := lookupProject(ctx, a.Store, args[0])
				if err != nil {
					return err
				}
				act, err := a.Store.CancelRunningActivity(ctx, proj)
				if err != nil {
					return err
				}
				if act == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\n", st.Warn.Render("No running activity for "+proj.Name))
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s activity %d on %s\n", st.OK.Render("Cancelled"), act.ID, proj.Name)
				return nil
			})
		},
	})

	return cmd
}
