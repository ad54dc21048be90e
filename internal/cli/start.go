package cli

import (
	"context"
	"fmt"

	"github.com/rpggio/devtracker/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) startCmd() *cobra.Command {
	cmd := group("start", "Start an activity")

	cmd.AddCommand(&cobra.Command{
		Use:   "activity <project> <activity-type> [description]",
		Short: "Start timing an activity on a project",
		Args:  rangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App) error {
				proj, err := lookupProject(ctx, a.Store, args[0])
				if err != nil {
					return err
				}
				at, err := lookupActivityType(ctx, a.Store, args[1])
				if err != nil {
					return err
				}
				act, err := a.Store.StartActivity(ctx, proj, at, optionalArg(args, 2))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s on %s at %s (id %d)\n",
					newStyles(cmd.OutOrStdout()).OK.Render("Started"), at.Name, proj.Name, formatTime(act.Start), act.ID)
				return nil
			})
		},
	})

	return cmd
}
