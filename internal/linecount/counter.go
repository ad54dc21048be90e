// Package linecount measures lines of code under a directory.
package linecount

import "context"

// Result is the outcome of counting one path.
type Result struct {
	// Total is the number of code lines across all recognized languages,
	// excluding blanks and comments.
	Total uint64
	// Languages maps a language name to its code lines.
	Languages map[string]uint64
}

// Counter counts the code lines under path, skipping any directory whose name
// is in exclude.
type Counter interface {
	Count(ctx context.Context, path string, exclude []string) (*Result, error)
}

// CounterFunc adapts a function to the Counter interface.
type CounterFunc func(ctx context.Context, path string, exclude []string) (*Result, error)

// Count calls f.
func (f CounterFunc) Count(ctx context.Context, path string, exclude []string) (*Result, error) {
	return f(ctx, path, exclude)
}
