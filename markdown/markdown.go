// Package markdown renders markdown text to ANSI-styled terminal output
// using goldmark for parsing and lipgloss for styling. It covers the
// constructs chat endpoints actually emit: paragraphs, headings, fenced
// code, flat lists, and inline emphasis/code/links.
package markdown

import "github.com/flumekit/flume"

// Render parses markdown source and returns ANSI-styled terminal output
// word-wrapped to width. Code blocks are rendered verbatim with a gutter.
func Render(source string, width int, theme flume.Theme) string {
	if source == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	r := newRenderer(theme)
	return r.render([]byte(source), width)
}
