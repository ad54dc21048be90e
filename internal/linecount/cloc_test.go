package linecount

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const goSource = `package main

// comment
func main() {
	println("hi")
}
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestClocCount(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.go"), goSource)

	res, err := NewCloc().Count(context.Background(), dir, nil)
	require.NoError(t, err)
	require.Equal(t, uint64(4), res.Total)
	require.Equal(t, uint64(4), res.Languages["Go"])
}

// generated returns a Go file with n distinct code lines.
func generated(name string, n int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "package %s\n", name)
	for i := 1; i < n; i++ {
		fmt.Fprintf(&b, "var %s%d = %d\n", name, i, i)
	}
	return b.String()
}

func TestClocCountExcludesDirs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.go"), goSource)
	writeFile(t, filepath.Join(dir, "target", "gen.go"), generated("gen", 3))
	writeFile(t, filepath.Join(dir, "pkg", "target", "deep.go"), generated("deep", 5))

	res, err := NewCloc().Count(context.Background(), dir, nil)
	require.NoError(t, err)
	require.Equal(t, uint64(12), res.Total)

	res, err = NewCloc().Count(context.Background(), dir, []string{"target"})
	require.NoError(t, err)
	require.Equal(t, uint64(4), res.Total)
}

func TestClocCountRootUnderExcludedName(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "vendor", "acme")
	writeFile(t, filepath.Join(dir, "main.go"), goSource)
	writeFile(t, filepath.Join(dir, "vendor", "lib.go"), generated("lib", 3))

	res, err := NewCloc().Count(context.Background(), dir, []string{"target", ".git", "node_modules", "vendor"})
	require.NoError(t, err)
	require.Equal(t, uint64(4), res.Total)
}

func TestClocCountKeepsDuplicateFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a", "main.go"), goSource)
	writeFile(t, filepath.Join(dir, "b", "main.go"), goSource)

	res, err := NewCloc().Count(context.Background(), dir, nil)
	require.NoError(t, err)
	require.Equal(t, uint64(8), res.Total)
}

func TestClocCountMissingPath(t *testing.T) {
	_, err := NewCloc().Count(context.Background(), filepath.Join(t.TempDir(), "missing"), nil)
	require.Error(t, err)
}

func TestExcludePattern(t *testing.T) {
	require.Nil(t, excludePattern("/src", nil))
	require.Nil(t, excludePattern("/src", []string{" "}))

	re := excludePattern("/src/acme", []string{"target", "node_modules"})
	require.True(t, re.MatchString("/src/acme/target"))
	require.True(t, re.MatchString("/src/acme/node_modules/x"))
	require.True(t, re.MatchString("/src/acme/pkg/target"))
	require.False(t, re.MatchString("/src/acme"))
	require.False(t, re.MatchString("/src/acme/targets"))
	require.False(t, re.MatchString("/src/acme/mytarget/a"))

	re = excludePattern("/work/target/acme", []string{"target"})
	require.False(t, re.MatchString("/work/target/acme"))
	require.False(t, re.MatchString("/work/target/acme/pkg"))
	require.True(t, re.MatchString("/work/target/acme/target"))

	re = excludePattern("/", []string{"vendor"})
	require.True(t, re.MatchString("/vendor"))
}

func TestCounterFunc(t *testing.T) {
	var c Counter = CounterFunc(func(_ context.Context, path string, _ []string) (*Result, error) {
		return &Result{Total: uint64(len(path))}, nil
	})
	res, err := c.Count(context.Background(), "abc", nil)
	require.NoError(t, err)
	require.Equal(t, uint64(3), res.Total)
}
