// Package wrap word-wraps node labels before they reach the layout engine.
package wrap

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Defaults applied by [Options.Apply] for unset fields.
const (
	DefaultWidth   = 50
	DefaultIndent  = "  "
	DefaultNewline = "\n"
)

// Options is a word-wrap policy.
type Options struct {
	// Width is the maximum line width in cells. Zero means DefaultWidth.
	Width int `json:"width,omitempty" toml:"width,omitempty"`
	// Indent prefixes every line. Nil means DefaultIndent; use a pointer to
	// an empty string to disable indentation.
	Indent *string `json:"indent,omitempty" toml:"indent,omitempty"`
	// Newline joins wrapped lines. Empty means DefaultNewline.
	Newline string `json:"newline,omitempty" toml:"newline,omitempty"`
	// Trim removes trailing whitespace from each line.
	Trim bool `json:"trim,omitempty" toml:"trim,omitempty"`
	// Cut breaks words longer than Width instead of letting them overflow.
	Cut bool `json:"cut,omitempty" toml:"cut,omitempty"`
}

// NoIndent returns a pointer suitable for Options.Indent that disables indentation.
func NoIndent() *string {
	s := ""
	return &s
}

// Apply wraps s according to the policy.
func (o Options) Apply(s string) string {
	if s == "" {
		return s
	}

	width := o.Width
	if width <= 0 {
		width = DefaultWidth
	}
	indent := DefaultIndent
	if o.Indent != nil {
		indent = *o.Indent
	}
	newline := o.Newline
	if newline == "" {
		newline = DefaultNewline
	}

	var wrapped string
	if o.Cut {
		wrapped = ansi.Wrap(s, width, "")
	} else {
		wrapped = ansi.Wordwrap(s, width, "")
	}

	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		if o.Trim {
			line = strings.TrimRight(line, " \t")
		}
		lines[i] = indent + line
	}
	return strings.Join(lines, newline)
}
