package cli

import (
	"context"
	"fmt"

	"github.com/rpggio/devtracker/internal/app"
	"github.com/rpggio/devtracker/internal/datastore"
	"github.com/spf13/cobra"
)

func (c *CLI) deleteCmd() *cobra.Command {
	cmd := group("delete", "Delete a project, activity, activity type, repo or count")

	deleted := func(cmd *cobra.Command, what string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", newStyles(cmd.OutOrStdout()).OK.Render("Deleted"), what)
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "project <name>",
		Short: "Delete a project with its activities, repos and counts",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App) error {
				proj, err := lookupProject(ctx, a.Store, args[0])
				if err != nil {
					return err
				}
				if err := a.Store.DeleteProject(ctx, proj); err != nil {
					return err
				}
				deleted(cmd, "project "+proj.Name)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "activity <id>",
		Short: "Delete an activity",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App) error {
				act, err := lookupActivity(ctx, a.Store, args[0])
				if err != nil {
					return err
				}
				if err := a.Store.DeleteActivity(ctx, act); err != nil {
					return err
				}
				deleted(cmd, fmt.Sprintf("activity %d", act.ID))
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "activity-type <name>",
		Aliases: []string{"at"},
		Short:   "Delete an activity type; its activities become Unknown",
		Args:    exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App) error {
				at, err := lookupActivityType(ctx, a.Store, args[0])
				if err != nil {
					return err
				}
				if err := a.Store.DeleteActivityType(ctx, at); err != nil {
					return err
				}
				deleted(cmd, "activity type "+at.Name)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "repo <path>",
		Short: "Delete a repo with its counts",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App) error {
				rp, err := lookupRepo(ctx, a.Store, args[0])
				if err != nil {
					return err
				}
				if err := a.Store.DeleteRepo(ctx, rp); err != nil {
					return err
				}
				deleted(cmd, "repo "+rp.Path)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "count <id>",
		Short: "Delete a count",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				cnt, err := a.Store.GetCountWithID(ctx, id)
				if err != nil {
					return err
				}
				if cnt == nil {
					return fmt.Errorf("%w: id %d", datastore.ErrCountNotFound, id)
				}
				if err := a.Store.DeleteCount(ctx, cnt); err != nil {
					return err
				}
				deleted(cmd, fmt.Sprintf("count %d", cnt.ID))
				return nil
			})
		},
	})

	return cmd
}
