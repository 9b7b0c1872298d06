package display

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"

	"github.com/ShayCichocki/quill/pkg/models"
)

// maxOutputLines caps how many trailing output lines a code block shows.
const maxOutputLines = 8

// chromaStyle is the syntax highlighting theme for code blocks.
const chromaStyle = "monokai"

var (
	codeFrameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	activeLineStyle = lipgloss.NewStyle().Reverse(true)
	outputStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("243")).PaddingLeft(2)
)

// CodeBlock renders code with syntax highlighting, an active-line marker,
// and captured execution output inside a live session.
type CodeBlock struct {
	base

	code       string
	language   string
	activeLine int
	output     string
}

var _ Block = (*CodeBlock)(nil)

// NewCodeBlock creates a code block and starts its live session.
func NewCodeBlock(opts ...Option) *CodeBlock {
	c := &CodeBlock{}
	c.base = newBase(StartSession(opts...))
	c.refresh = c.Refresh
	return c
}

// UpdateFromMessage takes code, language, active line, and output from
// the message and repaints with the cursor shown.
func (c *CodeBlock) UpdateFromMessage(msg models.Message) {
	c.code = msg.Code
	c.language = msg.Language
	c.activeLine = msg.ActiveLine
	c.output = msg.Output
	c.Refresh(true)
}

// Refresh repaints the highlighted code and any captured output.
func (c *CodeBlock) Refresh(showCursor bool) {
	if c.code == "" {
		c.live.Repaint("", showCursor)
		return
	}

	lines := c.renderCode()
	view := codeFrameStyle.Render(strings.Join(lines, "\n"))

	if out := c.renderOutput(); out != "" {
		view += "\n" + out
	}

	c.live.Repaint(view, showCursor)
}

// renderCode returns the code as highlighted lines, with the active line
// shown reversed instead of highlighted so it stands out.
func (c *CodeBlock) renderCode() []string {
	raw := strings.Split(strings.TrimSuffix(c.code, "\n"), "\n")

	highlighted := raw
	var buf bytes.Buffer
	if err := quick.Highlight(&buf, strings.TrimSuffix(c.code, "\n"), c.language, "terminal256", chromaStyle); err == nil {
		highlighted = strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	}

	lines := make([]string, 0, len(raw))
	for i := range raw {
		if c.activeLine == i+1 {
			lines = append(lines, activeLineStyle.Render(raw[i]))
			continue
		}
		if i < len(highlighted) {
			lines = append(lines, highlighted[i])
		} else {
			lines = append(lines, raw[i])
		}
	}
	return lines
}

// renderOutput returns the trailing output lines, dimmed.
func (c *CodeBlock) renderOutput() string {
	out := strings.TrimRight(c.output, "\n")
	if out == "" || out == "None" {
		return ""
	}

	lines := strings.Split(out, "\n")
	if len(lines) > maxOutputLines {
		lines = lines[len(lines)-maxOutputLines:]
	}
	return outputStyle.Render(strings.Join(lines, "\n"))
}
