package display

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/ShayCichocki/quill/pkg/models"
)

// cursorGlyph is appended to streaming prose while the cursor is shown.
const cursorGlyph = "█"

// MessageBlock renders assistant prose as markdown inside a live session.
type MessageBlock struct {
	base

	content  string
	renderer *glamour.TermRenderer
}

var _ Block = (*MessageBlock)(nil)

// NewMessageBlock creates a message block and starts its live session.
func NewMessageBlock(opts ...Option) *MessageBlock {
	live := StartSession(opts...)

	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(live.Width()),
	)

	m := &MessageBlock{
		base:     newBase(live),
		renderer: renderer,
	}
	m.refresh = m.Refresh
	return m
}

// UpdateFromMessage replaces the block's prose with the message content
// and repaints with the cursor shown.
func (m *MessageBlock) UpdateFromMessage(msg models.Message) {
	m.content = msg.Content
	m.Refresh(true)
}

// Refresh repaints the markdown-rendered prose. While showCursor is true
// a block glyph marks the streaming position.
func (m *MessageBlock) Refresh(showCursor bool) {
	content := m.content
	if showCursor {
		content += cursorGlyph
	}

	rendered := content
	if m.renderer != nil {
		if out, err := m.renderer.Render(content); err == nil {
			rendered = strings.TrimSuffix(out, "\n")
		}
	}

	m.live.Repaint(rendered, showCursor)
}
