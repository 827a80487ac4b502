// Package cliui renders live streaming progress on a terminal: a single
// status line showing the tail of the accumulated text and the current
// tokens-per-second estimate, redrawn in place as records arrive.
package cliui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/flumekit/flume"
)

// clearLine returns the cursor to column 0 and erases to end of line, so
// each update fully supersedes the previous one.
const clearLine = "\r\x1b[K"

// Progress is a clear-and-redraw status line. It implements the shape of
// [flume.ProgressFunc] via Update and is driven once per streamed record.
// Not safe for concurrent use; streaming is single-threaded by design.
type Progress struct {
	w         io.Writer
	width     int
	gauge     lipgloss.Style
	flattener *strings.Replacer
}

// NewProgress creates a Progress writing to w, bounded to width terminal
// cells per redraw. Widths below 20 are raised to 20.
func NewProgress(w io.Writer, width int, theme flume.Theme) *Progress {
	if width < 20 {
		width = 20
	}
	return &Progress{
		w:         w,
		width:     width,
		gauge:     lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("%d", theme.Muted))).Faint(true),
		flattener: strings.NewReplacer("\n", " ", "\r", " ", "\t", " "),
	}
}

// Update redraws the status line with the latest accumulated text and
// rate. Only the tail of the text that fits next to the rate gauge is
// shown; multi-line text is flattened since the display is one line.
func (p *Progress) Update(text string, tokensPerSec float64) {
	gauge := p.gauge.Render(fmt.Sprintf("%.1f tok/s", tokensPerSec))
	avail := p.width - lipgloss.Width(gauge) - 1
	if avail < 1 {
		avail = 1
	}

	tail := p.flattener.Replace(text)
	if over := runewidth.StringWidth(tail) - avail; over > 0 {
		tail = runewidth.TruncateLeft(tail, over+1, "…")
	}

	fmt.Fprintf(p.w, "%s%s %s", clearLine, tail, gauge)
}

// Done erases the transient status line. The caller prints the final text
// in its place, ending the stream's display with a final newline.
func (p *Progress) Done() {
	fmt.Fprint(p.w, clearLine)
}
