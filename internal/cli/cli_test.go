package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/rpggio/devtracker/internal/domain/report"
	"github.com/rpggio/devtracker/internal/linecount"
	"github.com/stretchr/testify/require"
)

type harness struct {
	t        *testing.T
	dataFile string
	counter  linecount.Counter
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv("DEVTRACKER_CONFIG_PATH", "")
	t.Setenv("DEVTRACKER_DB_PATH", "")
	t.Setenv("DEVTRACKER_LOG_PATH", "")
	t.Setenv("DEVTRACKER_LOG_LEVEL", "")

	counter := linecount.CounterFunc(func(_ context.Context, path string, _ []string) (*linecount.Result, error) {
		return &linecount.Result{Total: 100, Languages: map[string]uint64{"Go": 100}}, nil
	})
	return &harness{
		t:        t,
		dataFile: filepath.Join(t.TempDir(), "tracker.sqlite"),
		counter:  counter,
	}
}

// exec runs one invocation and returns stdout and the exit code.
func (h *harness) exec(args ...string) (string, int) {
	h.t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd(Env{Stdout: &stdout, Stderr: &stderr, Counter: h.counter})
	root.SetArgs(append([]string{"--data-file", h.dataFile}, args...))
	err := root.Execute()
	return stdout.String(), ExitCode(err)
}

func (h *harness) ok(args ...string) string {
	h.t.Helper()
	out, code := h.exec(args...)
	require.Equal(h.t, ExitSuccess, code, "devtracker %v", args)
	return out
}

func TestProjectLifecycle(t *testing.T) {
	h := newHarness(t)
	repoDir := t.TempDir()

	out := h.ok("add", "project", "acme", repoDir)
	require.Contains(t, out, "Added project acme")
	require.Contains(t, out, repoDir)

	_, code := h.exec("add", "project", "acme")
	require.Equal(t, ExitConflict, code)

	out = h.ok("list", "projects")
	require.Equal(t, "acme\n", out)

	out = h.ok("list", "projects", "-v")
	require.Equal(t, "[1] acme\n", out)

	out = h.ok("list", "repos", "acme")
	require.Contains(t, out, repoDir)

	h.ok("rename", "project", "acme", "beta")
	_, code = h.exec("describe", "project", "acme")
	require.Equal(t, ExitNotFound, code)

	out = h.ok("describe", "project", "beta")
	require.Contains(t, out, "Project beta")
	require.Contains(t, out, "(not counted)")

	h.ok("delete", "project", "beta")
	out = h.ok("list", "projects")
	require.Contains(t, out, "No projects")
}

func TestRenameConflictKeepsProject(t *testing.T) {
	h := newHarness(t)

	h.ok("add", "project", "Acme")
	h.ok("add", "project", "Beta")

	_, code := h.exec("rename", "project", "Acme", "Beta")
	require.Equal(t, ExitConflict, code)

	out := h.ok("list", "projects")
	require.Equal(t, "Acme\nBeta\n", out)
}

func TestAddProjectWithTakenPath(t *testing.T) {
	h := newHarness(t)
	repoDir := t.TempDir()

	h.ok("add", "project", "acme", repoDir)

	out, code := h.exec("add", "project", "beta", repoDir)
	require.Equal(t, ExitConflict, code)
	require.NotContains(t, out, "Added project")

	out = h.ok("list", "projects")
	require.Equal(t, "acme\n", out)
}

func TestActivityCommands(t *testing.T) {
	h := newHarness(t)

	h.ok("add", "project", "acme")
	h.ok("add", "at", "coding", "writing code")

	out := h.ok("start", "activity", "acme", "coding", "parser work")
	require.Contains(t, out, "Started coding on acme")

	_, code := h.exec("start", "activity", "acme", "coding")
	require.Equal(t, ExitConflict, code)

	_, code = h.exec("start", "activity", "acme", "napping")
	require.Equal(t, ExitNotFound, code)

	out = h.ok("list", "activities", "acme", "-v")
	require.Contains(t, out, "[1] coding")
	require.Contains(t, out, "running")

	out = h.ok("stop", "activity", "acme")
	require.Contains(t, out, "Stopped activity 1 on acme")

	out = h.ok("stop", "activity", "acme")
	require.Contains(t, out, "No running activity")

	out = h.ok("describe", "activity", "1")
	require.Contains(t, out, "Type: coding")
	require.Contains(t, out, "Description: parser work")

	h.ok("update", "activity", "description", "1")
	out = h.ok("describe", "activity", "1")
	require.NotContains(t, out, "Description:")

	_, code = h.exec("update", "activity", "end", "1", "01-01-2000")
	require.Equal(t, ExitConflict, code, "end before start")

	_, code = h.exec("update", "activity", "end", "1", "yesterday")
	require.Equal(t, ExitValidation, code)

	end := time.Now().Add(time.Hour).Format(minuteLayout)
	h.ok("update", "activity", "end", "1", end)

	h.ok("delete", "at", "coding")
	out = h.ok("describe", "activity", "1")
	require.Contains(t, out, "Type: Unknown")

	_, code = h.exec("delete", "at", "Unknown")
	require.Equal(t, ExitConflict, code)

	h.ok("start", "activity", "acme", "Unknown")
	out = h.ok("cancel", "activity", "acme")
	require.Contains(t, out, "Cancelled activity 2")

	h.ok("delete", "activity", "1")
	_, code = h.exec("describe", "activity", "1")
	require.Equal(t, ExitNotFound, code)
}

func TestCountAndReport(t *testing.T) {
	h := newHarness(t)
	repoDir := t.TempDir()

	h.ok("add", "project", "acme")
	h.ok("add", "repo", "acme", repoDir)
	h.ok("add", "at", "coding")

	out := h.ok("count", "acme")
	require.Contains(t, out, "Total 100 lines")

	out = h.ok("list", "counts", "acme", "-v")
	require.Contains(t, out, "[1]")
	require.Contains(t, out, "100 lines")

	out = h.ok("describe", "count", "1")
	require.Contains(t, out, "Lines: 100")

	h.ok("start", "activity", "acme", "coding")
	h.ok("stop", "activity", "acme")

	out = h.ok("generate", "report", "acme")
	require.Contains(t, out, "Report for acme covering period from the beginning to now.")
	require.Contains(t, out, "There were 1 activities recorded")
	require.Contains(t, out, "The total lines of code in the repositories is 100.")

	out = h.ok("generate", "json", "acme")
	var rep report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	require.Equal(t, "acme", rep.ProjectName)
	require.Len(t, rep.Activities, 1)
	require.Equal(t, "coding", rep.Activities[0].Name)
	require.Len(t, rep.Counts[repoDir], 1)

	out = h.ok("generate", "report", "acme", "--format", "markdown")
	require.Contains(t, out, "# Report for acme")

	out = h.ok("generate", "report", "acme", "--start", "01-01-2000", "--end", "02-01-2000")
	require.Contains(t, out, "There were no activities recorded.")

	_, code := h.exec("generate", "report", "acme", "--format", "pdf")
	require.Equal(t, ExitUsage, code)

	h.ok("delete", "repo", repoDir)
	_, code = h.exec("describe", "count", "1")
	require.Equal(t, ExitNotFound, code)
}

func TestUpdateRepoAndActivityType(t *testing.T) {
	h := newHarness(t)
	oldDir := t.TempDir()
	newDir := t.TempDir()

	h.ok("add", "project", "acme", oldDir)
	h.ok("update", "repo", oldDir, newDir)
	out := h.ok("list", "repos", "acme")
	require.Contains(t, out, newDir)

	h.ok("add", "activity-type", "review")
	h.ok("update", "activity-type", "review", "reading other people's code")
	out = h.ok("list", "activity-types")
	require.Contains(t, out, "review reading other people's code")

	h.ok("rename", "at", "review", "reviewing")
	out = h.ok("list", "ats", "-v")
	require.Contains(t, out, "[0] Unknown")
	require.Contains(t, out, "reviewing")
}

func TestMoveActivityToProject(t *testing.T) {
	h := newHarness(t)

	h.ok("add", "project", "acme")
	h.ok("add", "project", "beta")
	h.ok("add", "at", "coding")
	h.ok("add", "at", "review")
	h.ok("start", "activity", "acme", "coding")

	h.ok("update", "activity", "project", "1", "beta")
	h.ok("update", "activity", "at", "1", "review")

	out := h.ok("describe", "activity", "1")
	require.Contains(t, out, "Project: beta")
	require.Contains(t, out, "Type: review")

	out = h.ok("describe", "project", "beta")
	require.Contains(t, out, "Running: activity 1")
}

func TestUsageErrors(t *testing.T) {
	h := newHarness(t)

	_, code := h.exec("add")
	require.Equal(t, ExitUsage, code)

	_, code = h.exec("add", "widget", "x")
	require.Equal(t, ExitUsage, code)

	_, code = h.exec("add", "repo", "only-one-arg")
	require.Equal(t, ExitUsage, code)

	_, code = h.exec("frobnicate")
	require.Equal(t, ExitUsage, code)

	_, code = h.exec("list", "projects", "--bogus")
	require.Equal(t, ExitUsage, code)

	_, code = h.exec("delete", "activity", "abc")
	require.Equal(t, ExitValidation, code)
}

func TestParseTime(t *testing.T) {
	loc := time.FixedZone("test", 2*60*60)

	got, err := parseTime("2024-03-04T09:15", loc)
	require.NoError(t, err)
	require.True(t, got.Equal(time.Date(2024, 3, 4, 9, 15, 0, 0, loc)))

	got, err = parseTime("04-03-2024", loc)
	require.NoError(t, err)
	require.True(t, got.Equal(time.Date(2024, 3, 4, 12, 0, 0, 0, loc)))

	_, err = parseTime("2024/03/04", loc)
	require.Error(t, err)
	require.Equal(t, ExitValidation, ExitCode(err))
}

func TestFormatDuration(t *testing.T) {
	require.Equal(t, "0m", formatDuration(20*time.Second))
	require.Equal(t, "45m", formatDuration(45*time.Minute))
	require.Equal(t, "2h 5m", formatDuration(125*time.Minute))
}
