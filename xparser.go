package xparser

import (
	"fmt"
	"os"

	"github.com/taesko/xparser/parse"
	"github.com/taesko/xparser/views"
)

// Parse parses text and returns its read-only view. The first
// malformed non-blank, non-comment line aborts parsing with an error
// wrapping parse.ErrParse.
func Parse(text string, opts ...parse.ParseOption) (*views.XFileView, error) {
	f, err := parse.ParseString(text, opts...)
	if err != nil {
		return nil, err
	}
	return views.NewXFileView(f), nil
}

// ParseFile reads path and delegates to Parse. A read failure is
// returned before any parsing happens.
func ParseFile(path string, opts ...parse.ParseOption) (*views.XFileView, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading resources: %w", err)
	}
	return Parse(string(d), opts...)
}
