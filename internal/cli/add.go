package cli

import (
	"context"
	"fmt"

	"github.com/rpggio/devtracker/internal/app"
	"github.com/rpggio/devtracker/internal/datastore"
	"github.com/spf13/cobra"
)

func (c *CLI) addCmd() *cobra.Command {
	cmd := group("add", "Add a project, activity type or repo")

	cmd.AddCommand(&cobra.Command{
		Use:   "project <name> [path]",
		Short: "Add a project, optionally with its first repo",
		Args:  rangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App) error {
				st := newStyles(cmd.OutOrStdout())

				var path string
				if len(args) == 2 {
					path = absPath(args[1])
					existing, err := a.Store.GetRepo(ctx, path)
					if err != nil {
						return err
					}
					if existing != nil {
						return fmt.Errorf("%w: %s", datastore.ErrRepoAlreadyExists, path)
					}
				}

				proj, err := a.Store.CreateProject(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s project %s (id %d)\n", st.OK.Render("Added"), proj.Name, proj.ID)

				if path != "" {
					rp, err := a.Store.CreateRepo(ctx, proj, path)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s repo %s\n", st.OK.Render("Added"), rp.Path)
				}
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "activity-type <name> [description]",
		Aliases: []string{"at"},
		Short:   "Add an activity type",
		Args:    rangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App) error {
				at, err := a.Store.CreateActivityType(ctx, args[0], optionalArg(args, 1))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s activity type %s (id %d)\n",
					newStyles(cmd.OutOrStdout()).OK.Render("Added"), at.Name, at.ID)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "repo <project> <path>",
		Short: "Add a repo to a project",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App) error {
				proj, err := lookupProject(ctx, a.Store, args[0])
				if err != nil {
					return err
				}
				rp, err := a.Store.CreateRepo(ctx, proj, absPath(args[1]))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s repo %s to %s\n",
					newStyles(cmd.OutOrStdout()).OK.Render("Added"), rp.Path, proj.Name)
				return nil
			})
		},
	})

	return cmd
}
