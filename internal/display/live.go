// Package display implements quill's live terminal blocks: regions of the
// screen that are repainted in place as the interpreter streams content.
// Repaints happen only when the caller asks for one; there is no timer.
package display

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
)

// DefaultWidth is used for word wrap when the terminal width is unknown.
const DefaultWidth = 80

// Session is a live rendering session bound to a terminal writer.
// It repaints a region in place by moving the cursor back over the
// previously painted lines and rewriting them. Content taller than the
// screen is never truncated; lines that scroll off the top simply stay
// in the scrollback, matching visible vertical overflow.
//
// A session starts rendering as soon as it is created and holds the
// terminal until Stop is called. Callers must serialize all access from
// a single goroutine.
type Session struct {
	id     string
	out    *termenv.Output
	log    zerolog.Logger
	width  int
	tty    bool
	active bool

	mu      sync.Mutex
	painted int    // lines written by the last repaint
	last    string // content of the last repaint, flushed on Stop when not a TTY
}

// Option configures a Session.
type Option func(*sessionConfig)

type sessionConfig struct {
	out   io.Writer
	log   zerolog.Logger
	width int
	tty   *bool
}

// WithOutput directs the session at a writer other than stdout.
func WithOutput(w io.Writer) Option {
	return func(c *sessionConfig) { c.out = w }
}

// WithLogger attaches a debug logger to the session.
func WithLogger(log zerolog.Logger) Option {
	return func(c *sessionConfig) { c.log = log }
}

// WithWidth overrides the detected word-wrap width.
func WithWidth(width int) Option {
	return func(c *sessionConfig) { c.width = width }
}

// WithTTY forces TTY behavior on or off instead of detecting it.
func WithTTY(tty bool) Option {
	return func(c *sessionConfig) { c.tty = &tty }
}

// StartSession creates a session and begins rendering immediately.
// The terminal cursor is hidden while the session is active.
func StartSession(opts ...Option) *Session {
	cfg := sessionConfig{
		out:   os.Stdout,
		log:   zerolog.Nop(),
		width: DefaultWidth,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	tty := detectTTY(cfg.out)
	if cfg.tty != nil {
		tty = *cfg.tty
	}

	s := &Session{
		id:     uuid.NewString(),
		out:    termenv.NewOutput(cfg.out),
		log:    cfg.log,
		width:  cfg.width,
		tty:    tty,
		active: true,
	}

	if s.tty {
		s.out.HideCursor()
	}
	s.log.Debug().Str("session", s.id).Bool("tty", s.tty).Msg("live session started")
	return s
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Width returns the word-wrap width for content painted into the session.
func (s *Session) Width() int { return s.width }

// Active reports whether the session is still rendering.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Repaint replaces the painted region with content. showCursor controls
// whether the terminal cursor is visible once the repaint completes.
func (s *Session) Repaint(content string, showCursor bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return
	}

	s.last = content
	if !s.tty {
		// No in-place repaints on pipes; Stop flushes the final frame.
		return
	}

	s.out.HideCursor()
	if s.painted > 0 {
		s.out.CursorUp(s.painted)
	}
	// Erase the previous frame before writing the new one.
	s.out.WriteString(termenv.CSI + "J")

	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	for _, line := range lines {
		s.out.WriteString(line + "\n")
	}
	s.painted = len(lines)

	if showCursor {
		s.out.ShowCursor()
	}
}

// Stop ends the session, releasing the terminal. On a TTY the cursor is
// restored; on a pipe the final frame is flushed as plain text.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return
	}
	s.active = false

	if s.tty {
		s.out.ShowCursor()
	} else if s.last != "" {
		out := s.last
		if !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
		s.out.WriteString(out)
	}
	s.log.Debug().Str("session", s.id).Msg("live session stopped")
}

// detectTTY reports whether w is an interactive terminal.
func detectTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
