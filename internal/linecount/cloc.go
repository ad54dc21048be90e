package linecount

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/hhatto/gocloc"
)

// Cloc counts lines with gocloc's language definitions.
type Cloc struct {
	languages *gocloc.DefinedLanguages
}

// NewCloc creates a Cloc counter
func NewCloc() *Cloc {
	return &Cloc{languages: gocloc.NewDefinedLanguages()}
}

// Count implements Counter.
func (c *Cloc) Count(ctx context.Context, path string, exclude []string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", path)
	}

	root := filepath.Clean(path)
	opts := gocloc.NewClocOptions()
	// gocloc drops files whose content hashes match an earlier file unless
	// SkipDuplicated is set.
	opts.SkipDuplicated = true
	if re := excludePattern(root, exclude); re != nil {
		opts.ReNotMatchDir = re
	}

	result, err := gocloc.NewProcessor(c.languages, opts).Analyze([]string{root})
	if err != nil {
		return nil, fmt.Errorf("failed to count lines in %s: %w", path, err)
	}

	out := &Result{Languages: make(map[string]uint64, len(result.Languages))}
	for name, lang := range result.Languages {
		if lang.Code == 0 {
			continue
		}
		out.Languages[name] = uint64(lang.Code)
		out.Total += uint64(lang.Code)
	}
	return out, nil
}

// excludePattern matches directories below root that have one of names as a
// whole path segment. Segments of root itself never match.
func excludePattern(root string, names []string) *regexp.Regexp {
	quoted := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(n))
	}
	if len(quoted) == 0 {
		return nil
	}
	prefix := regexp.QuoteMeta(strings.TrimRight(root, `/\`))
	return regexp.MustCompile(`^` + prefix + `(?:[/\\].*)?[/\\](?:` + strings.Join(quoted, "|") + `)(?:[/\\]|$)`)
}
