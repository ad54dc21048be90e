package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rpggio/devtracker/internal/app"
	"github.com/rpggio/devtracker/internal/domain/activity"
	"github.com/spf13/cobra"
)

func (c *CLI) updateCmd() *cobra.Command {
	cmd := group("update", "Update an activity, activity type or repo")

	cmd.AddCommand(c.updateActivityCmd())

	cmd.AddCommand(&cobra.Command{
		Use:     "activity-type <name> [description]",
		Aliases: []string{"at"},
		Short:   "Set or clear the description of an activity type",
		Args:    rangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App) error {
				at, err := lookupActivityType(ctx, a.Store, args[0])
				if err != nil {
					return err
				}
				at.Description = optionalArg(args, 1)
				if err := a.Store.UpdateActivityType(ctx, at); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s activity type %s\n",
					newStyles(cmd.OutOrStdout()).OK.Render("Updated"), at.Name)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "repo <old-path> <new-path>",
		Short: "Move a repo to a new path",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App) error {
				rp, err := lookupRepo(ctx, a.Store, args[0])
				if err != nil {
					return err
				}
				rp.Path = absPath(args[1])
				if err := a.Store.UpdateRepo(ctx, rp); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s repo %s\n",
					newStyles(cmd.OutOrStdout()).OK.Render("Updated"), rp.Path)
				return nil
			})
		},
	})

	return cmd
}

func (c *CLI) updateActivityCmd() *cobra.Command {
	cmd := group("activity", "Update a field of an activity")

	updated := func(cmd *cobra.Command, act *activity.Activity) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s activity %d\n", newStyles(cmd.OutOrStdout()).OK.Render("Updated"), act.ID)
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "end <id> <time>",
		Short: "Set the end time (YYYY-MM-DDTHH:MM or DD-MM-YYYY)",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			end, err := parseTime(args[1], time.Local)
			if err != nil {
				return err
			}
			return c.run(cmd, func(ctx context.Context, a *app.App) error {
				act, err := lookupActivity(ctx, a.Store, args[0])
				if err != nil {
					return err
				}
				act, err = a.Store.UpdateActivityEnd(ctx, act, end)
				if err != nil {
					return err
				}
				updated(cmd, act)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "activity-type <id> <type>",
		Aliases: []string{"at"},
		Short:   "Change the activity type",
		Args:    exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App) error {
				act, err := lookupActivity(ctx, a.Store, args[0])
				if err != nil {
					return err
				}
				at, err := lookupActivityType(ctx, a.Store, args[1])
				if err != nil {
					return err
				}
				act, err = a.Store.UpdateActivityAType(ctx, act, at)
				if err != nil {
					return err
				}
				updated(cmd, act)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "description <id> [text]",
		Short: "Set or clear the description",
		Args:  rangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App) error {
				act, err := lookupActivity(ctx, a.Store, args[0])
				if err != nil {
					return err
				}
				act, err = a.Store.UpdateActivityDescription(ctx, act, optionalArg(args, 1))
				if err != nil {
					return err
				}
				updated(cmd, act)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "project <id> <project>",
		Short: "Move the activity to another project",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App) error {
				act, err := lookupActivity(ctx, a.Store, args[0])
				if err != nil {
					return err
				}
				proj, err := lookupProject(ctx, a.Store, args[1])
				if err != nil {
					return err
				}
				act, err = a.Store.UpdateActivityProject(ctx, act, proj)
				if err != nil {
					return err
				}
				updated(cmd, act)
				return nil
			})
		},
	})

	return cmd
}
