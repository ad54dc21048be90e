// Package cli implements the devtracker command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rpggio/devtracker/internal/app"
	"github.com/rpggio/devtracker/internal/config"
	"github.com/rpggio/devtracker/internal/datastore"
	"github.com/rpggio/devtracker/internal/domain/activity"
	"github.com/rpggio/devtracker/internal/domain/activitytype"
	"github.com/rpggio/devtracker/internal/domain/project"
	"github.com/rpggio/devtracker/internal/domain/repo"
	"github.com/rpggio/devtracker/internal/linecount"
	"github.com/rpggio/devtracker/internal/logging"
	"github.com/spf13/cobra"
)

// Env carries the process-level inputs of a run.
type Env struct {
	Stdout io.Writer
	Stderr io.Writer
	// Counter overrides the line counter; nil uses gocloc.
	Counter linecount.Counter
}

// CLI holds the global flags shared by every command.
type CLI struct {
	env        Env
	configPath string
	dataFile   string
	logLevel   string
}

// NewRootCmd builds the full command tree.
func NewRootCmd(env Env) *cobra.Command {
	if env.Stdout == nil {
		env.Stdout = os.Stdout
	}
	if env.Stderr == nil {
		env.Stderr = os.Stderr
	}
	c := &CLI{env: env}

	root := &cobra.Command{
		Use:   "devtracker",
		Short: "Track projects, work sessions and lines of code",
		Long: `devtracker records the projects you work on, the repositories that belong to
them, timed activities, and periodic line counts of each repository.

Examples:
  devtracker add project acme ~/src/acme
  devtracker add activity-type coding "writing code"
  devtracker start activity acme coding
  devtracker stop activity acme
  devtracker count acme
  devtracker generate report acme --start 01-03-2024`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetOut(env.Stdout)
	root.SetErr(env.Stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return newUsageError(err)
	})

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "Path to a YAML config file")
	root.PersistentFlags().StringVar(&c.dataFile, "data-file", "", "Path to the database file")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	root.AddCommand(
		c.addCmd(),
		c.startCmd(),
		c.stopCmd(),
		c.cancelCmd(),
		c.countCmd(),
		c.deleteCmd(),
		c.describeCmd(),
		c.listCmd(),
		c.renameCmd(),
		c.updateCmd(),
		c.generateCmd(),
	)
	return root
}

// Execute runs the command tree with os.Args and returns the exit code.
func Execute() int {
	err := NewRootCmd(Env{}).Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return ExitCode(err)
}

// run opens the app for the duration of fn.
func (c *CLI) run(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.dataFile != "" {
		cfg.DB.Path = c.dataFile
	}
	if c.logLevel != "" {
		cfg.Log.Level = c.logLevel
	}

	logger, logCloser, err := logging.New(cfg.Log.Level, cfg.Log.Path)
	if err != nil {
		return fmt.Errorf("log file error: %w", err)
	}
	defer logCloser.Close()
	logger = logger.With("run_id", uuid.NewString(), "command", cmd.CommandPath())

	a, err := app.Open(ctx, cfg, logger, app.Options{Counter: c.env.Counter})
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Error("failed to close", "error", err)
		}
	}()

	return fn(ctx, a)
}

// exactArgs and rangeArgs report usage errors with the expected shape.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return newUsageError(cobra.ExactArgs(n)(cmd, args))
	}
}

func rangeArgs(min, max int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return newUsageError(cobra.RangeArgs(min, max)(cmd, args))
	}
}

func optionalArg(args []string, i int) *string {
	if len(args) <= i {
		return nil
	}
	s := args[i]
	return &s
}

func parseID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an id", datastore.ErrInvalidInput, s)
	}
	return id, nil
}

func lookupProject(ctx context.Context, s *datastore.DataStore, name string) (*project.Project, error) {
	proj, err := s.GetProject(ctx, name)
	if err != nil {
		return nil, err
	}
	if proj == nil {
		return nil, fmt.Errorf("%w: %q", datastore.ErrProjectNotFound, name)
	}
	return proj, nil
}

func lookupActivityType(ctx context.Context, s *datastore.DataStore, name string) (*activitytype.ActivityType, error) {
	at, err := s.GetActivityType(ctx, name)
	if err != nil {
		return nil, err
	}
	if at == nil {
		return nil, fmt.Errorf("%w: %q", datastore.ErrActivityTypeNotFound, name)
	}
	return at, nil
}

func lookupRepo(ctx context.Context, s *datastore.DataStore, path string) (*repo.Repo, error) {
	path = absPath(path)
	rp, err := s.GetRepo(ctx, path)
	if err != nil {
		return nil, err
	}
	if rp == nil {
		return nil, fmt.Errorf("%w: %s", datastore.ErrRepoNotFound, path)
	}
	return rp, nil
}

func lookupActivity(ctx context.Context, s *datastore.DataStore, rawID string) (*activity.Activity, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	a, err := s.GetActivityWithID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fmt.Errorf("%w: id %d", datastore.ErrActivityNotFound, id)
	}
	return a, nil
}

// group returns a verb command whose subcommands name the target noun.
func group(use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return newUsageError(fmt.Errorf("%s needs a target, one of: %s", cmd.Name(), targets(cmd)))
			}
			return newUsageError(fmt.Errorf("unknown %s target %q, expected one of: %s", cmd.Name(), args[0], targets(cmd)))
		},
	}
}

func targets(cmd *cobra.Command) string {
	var names []string
	for _, sub := range cmd.Commands() {
		if sub.IsAvailableCommand() {
			names = append(names, sub.Name())
		}
	}
	return strings.Join(names, ", ")
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
