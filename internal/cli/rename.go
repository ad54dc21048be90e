package cli

import (
	"context"
	"fmt"

	"github.com/rpggio/devtracker/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) renameCmd() *cobra.Command {
	cmd := group("rename", "Rename a project or activity type")

	cmd.AddCommand(&cobra.Command{
		Use:   "project <old> <new>",
		Short: "Rename a project",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App) error {
				proj, err := a.Store.RenameProject(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s project %s to %s\n",
					newStyles(cmd.OutOrStdout()).OK.Render("Renamed"), args[0], proj.Name)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "activity-type <old> <new>",
		Aliases: []string{"at"},
		Short:   "Rename an activity type",
		Args:    exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App) error {
				at, err := a.Store.RenameActivityType(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s activity type %s to %s\n",
					newStyles(cmd.OutOrStdout()).OK.Render("Renamed"), args[0], at.Name)
				return nil
			})
		},
	})

	return cmd
}
