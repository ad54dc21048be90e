package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rpggio/devtracker/internal/app"
	"github.com/rpggio/devtracker/internal/datastore"
	"github.com/rpggio/devtracker/internal/domain/activity"
	"github.com/rpggio/devtracker/internal/domain/activitytype"
	"github.com/spf13/cobra"
)

func (c *CLI) describeCmd() *cobra.Command {
	cmd := group("describe", "Show details of a project, activity or count")

	cmd.AddCommand(&cobra.Command{
		Use:   "project <name>",
		Short: "Show a project with its repos and running activity",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App) error {
				return describeProject(ctx, cmd.OutOrStdout(), a.Store, args[0])
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "activity <id>",
		Short: "Show an activity",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App) error {
				act, err := lookupActivity(ctx, a.Store, args[0])
				if err != nil {
					return err
				}
				return describeActivity(ctx, cmd.OutOrStdout(), a.Store, act)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "count <id>",
		Short: "Show a count",
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
				path := "(deleted repo)"
				if rp, err := a.Store.GetRepoWithID(ctx, cnt.RepoID); err != nil {
					return err
				} else if rp != nil {
					path = rp.Path
				}

				st := newStyles(cmd.OutOrStdout())
				w := cmd.OutOrStdout()
				fmt.Fprintf(w, "%s %d\n", st.Title.Render("Count"), cnt.ID)
				fmt.Fprintf(w, "  %s %s\n", st.Label.Render("Repo:"), path)
				fmt.Fprintf(w, "  %s %s\n", st.Label.Render("Date:"), formatTime(cnt.Date))
				fmt.Fprintf(w, "  %s %d\n", st.Label.Render("Lines:"), cnt.Total)
				return nil
			})
		},
	})

	return cmd
}

func describeProject(ctx context.Context, w io.Writer, s *datastore.DataStore, name string) error {
	st := newStyles(w)
	proj, err := lookupProject(ctx, s, name)
	if err != nil {
		return err
	}
	repos, err := s.GetRepos(ctx, proj)
	if err != nil {
		return err
	}
	activities, err := s.GetActivities(ctx, proj)
	if err != nil {
		return err
	}
	running, err := s.GetRunningActivity(ctx, proj)
	if err != nil {
		return err
	}

	var total time.Duration
	now := time.Now()
	for i := range activities {
		total += activities[i].Elapsed(now)
	}

	fmt.Fprintf(w, "%s %s (id %d)\n", st.Title.Render("Project"), proj.Name, proj.ID)
	fmt.Fprintf(w, "  %s %d, %s\n", st.Label.Render("Activities:"), len(activities), formatDuration(total))
	if running != nil {
		fmt.Fprintf(w, "  %s activity %d since %s\n", st.Label.Render("Running:"), running.ID, formatTime(running.Start))
	}
	fmt.Fprintf(w, "  %s\n", st.Label.Render("Repos:"))
	if len(repos) == 0 {
		fmt.Fprintf(w, "    %s\n", st.Dim.Render("none"))
	}
	for i := range repos {
		latest, err := s.GetLatestCount(ctx, &repos[i])
		if err != nil {
			return err
		}
		if latest == nil {
			fmt.Fprintf(w, "    %s %s\n", repos[i].Path, st.Dim.Render("(not counted)"))
			continue
		}
		fmt.Fprintf(w, "    %s %d lines on %s\n", repos[i].Path, latest.Total, formatTime(latest.Date))
	}
	return nil
}

func typeName(ctx context.Context, s *datastore.DataStore, id uint64) (string, error) {
	at, err := s.GetActivityTypeWithID(ctx, id)
	if err != nil {
		return "", err
	}
	if at == nil {
		return activitytype.UnknownName, nil
	}
	return at.Name, nil
}

func describeActivity(ctx context.Context, w io.Writer, s *datastore.DataStore, act *activity.Activity) error {
	st := newStyles(w)
	proj, err := s.GetProjectWithID(ctx, act.ProjectID)
	if err != nil {
		return err
	}
	name, err := typeName(ctx, s, act.TypeID)
	if err != nil {
		return err
	}

	projectName := "(deleted project)"
	if proj != nil {
		projectName = proj.Name
	}

	fmt.Fprintf(w, "%s %d\n", st.Title.Render("Activity"), act.ID)
	fmt.Fprintf(w, "  %s %s\n", st.Label.Render("Project:"), projectName)
	fmt.Fprintf(w, "  %s %s\n", st.Label.Render("Type:"), name)
	if act.Description != nil {
		fmt.Fprintf(w, "  %s %s\n", st.Label.Render("Description:"), *act.Description)
	}
	fmt.Fprintf(w, "  %s %s\n", st.Label.Render("Start:"), formatTime(act.Start))
	if d, ok := act.Duration(); ok {
		fmt.Fprintf(w, "  %s %s\n", st.Label.Render("End:"), formatTime(*act.End))
		fmt.Fprintf(w, "  %s %s\n", st.Label.Render("Duration:"), formatDuration(d))
	} else {
		fmt.Fprintf(w, "  %s %s\n", st.Label.Render("End:"), st.Warn.Render("running"))
	}
	return nil
}
