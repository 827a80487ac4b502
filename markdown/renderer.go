package markdown

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/flumekit/flume"
)

type renderer struct {
	bold    lipgloss.Style
	italic  lipgloss.Style
	heading lipgloss.Style
	gutter  lipgloss.Style
	link    lipgloss.Style
}

func newRenderer(theme flume.Theme) *renderer {
	accent := lipgloss.Color(strconv.Itoa(theme.Accent))
	muted := lipgloss.Color(strconv.Itoa(theme.Muted))
	return &renderer{
		bold:    lipgloss.NewStyle().Bold(true),
		italic:  lipgloss.NewStyle().Italic(true),
		heading: lipgloss.NewStyle().Foreground(accent).Bold(true),
		gutter:  lipgloss.NewStyle().Foreground(muted).Faint(true),
		link:    lipgloss.NewStyle().Underline(true),
	}
}

func (r *renderer) render(source []byte, width int) string {
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var buf bytes.Buffer
	for c := doc.FirstChild(); c != nil; c = c.NextSibling() {
		r.block(c, source, width, &buf)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func (r *renderer) block(node ast.Node, source []byte, width int, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Paragraph:
		buf.WriteString(lipgloss.NewStyle().Width(width).Render(r.inline(n, source)))
		r.endBlock(n, buf)

	case *ast.Heading:
		buf.WriteString(lipgloss.NewStyle().Width(width).Render(r.heading.Render(r.inline(n, source))))
		r.endBlock(n, buf)

	case *ast.FencedCodeBlock:
		if lang := string(n.Language(source)); lang != "" {
			buf.WriteString(r.gutter.Render(lang))
			buf.WriteByte('\n')
		}
		r.codeLines(n, source, buf)
		r.endBlock(n, buf)

	case *ast.CodeBlock:
		r.codeLines(n, source, buf)
		r.endBlock(n, buf)

	case *ast.List:
		r.list(n, source, width, buf)
		r.endBlock(n, buf)

	case *ast.ThematicBreak:
		buf.WriteString(r.gutter.Render(strings.Repeat("─", min(width, 32))))
		buf.WriteByte('\n')
		r.endBlock(n, buf)

	default:
		// Blockquotes and anything else unrecognized: render children plainly.
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			r.block(c, source, width, buf)
		}
	}
}

// endBlock writes the blank line separating sibling blocks.
func (r *renderer) endBlock(node ast.Node, buf *bytes.Buffer) {
	buf.WriteByte('\n')
	if node.NextSibling() != nil {
		buf.WriteByte('\n')
	}
}

func (r *renderer) codeLines(node interface {
	Lines() *text.Segments
}, source []byte, buf *bytes.Buffer) {
	gutter := r.gutter.Render("│") + " "
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		content := strings.TrimRight(string(line.Value(source)), "\n")
		buf.WriteString(gutter + content)
		buf.WriteByte('\n')
	}
}

// list renders items with wrapped continuation lines; nested lists are
// flattened one level deep with extra indent.
func (r *renderer) list(node *ast.List, source []byte, width int, buf *bytes.Buffer) {
	num := node.Start
	for item := node.FirstChild(); item != nil; item = item.NextSibling() {
		var marker string
		if node.IsOrdered() {
			marker = fmt.Sprintf("%d. ", num)
			num++
		} else {
			marker = "- "
		}

		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			switch inner := c.(type) {
			case *ast.List:
				var nested bytes.Buffer
				r.list(inner, source, width-2, &nested)
				for _, line := range strings.Split(strings.TrimRight(nested.String(), "\n"), "\n") {
					buf.WriteString("  " + line + "\n")
				}
			default:
				r.listItemText(r.inline(c, source), marker, width, buf)
				marker = strings.Repeat(" ", len(marker))
			}
		}
	}
}

func (r *renderer) listItemText(content, marker string, width int, buf *bytes.Buffer) {
	itemWidth := width - len(marker)
	if itemWidth < 10 {
		itemWidth = 10
	}
	continuation := strings.Repeat(" ", len(marker))
	for i, line := range strings.Split(lipgloss.NewStyle().Width(itemWidth).Render(content), "\n") {
		if i == 0 {
			buf.WriteString(marker + line + "\n")
		} else {
			buf.WriteString(continuation + line + "\n")
		}
	}
}

// inline collects the styled inline text of a node's children.
func (r *renderer) inline(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		r.inlineNode(c, source, &buf)
	}
	return buf.String()
}

func (r *renderer) inlineNode(node ast.Node, source []byte, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Text:
		buf.Write(n.Segment.Value(source))
		if n.SoftLineBreak() {
			buf.WriteByte(' ')
		}
		if n.HardLineBreak() {
			buf.WriteByte('\n')
		}

	case *ast.String:
		buf.Write(n.Value)

	case *ast.Emphasis:
		inner := r.inline(n, source)
		if n.Level == 1 {
			buf.WriteString(r.italic.Render(inner))
		} else {
			buf.WriteString(r.bold.Render(inner))
		}

	case *ast.CodeSpan:
		buf.WriteString(r.bold.Render(r.inline(n, source)))

	case *ast.Link:
		buf.WriteString(r.link.Render(r.inline(n, source)))
		buf.WriteString(r.gutter.Render(" (" + string(n.Destination) + ")"))

	case *ast.AutoLink:
		buf.WriteString(r.link.Render(string(n.URL(source))))

	default:
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			r.inlineNode(c, source, buf)
		}
	}
}
