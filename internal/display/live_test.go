package display

import (
	"bytes"
	"strings"
	"testing"
)

func TestSessionStartsActive(t *testing.T) {
	var buf bytes.Buffer
	s := StartSession(WithOutput(&buf), WithTTY(false))

	if !s.Active() {
		t.Error("expected session to be active immediately after start")
	}
	if s.ID() == "" {
		t.Error("expected session to have an id")
	}
}

func TestSessionRepaintWritesContentOnTTY(t *testing.T) {
	var buf bytes.Buffer
	s := StartSession(WithOutput(&buf), WithTTY(true))

	s.Repaint("hello\nworld", false)

	out := buf.String()
	if !strings.Contains(out, "hello") || !strings.Contains(out, "world") {
		t.Errorf("expected repaint to write content, got %q", out)
	}
}

func TestSessionRepaintMovesOverPreviousFrame(t *testing.T) {
	var buf bytes.Buffer
	s := StartSession(WithOutput(&buf), WithTTY(true))

	s.Repaint("one\ntwo\nthree", false)
	buf.Reset()
	s.Repaint("four", false)

	out := buf.String()
	// Three lines were painted, so the second repaint must move up three.
	if !strings.Contains(out, "\x1b[3A") {
		t.Errorf("expected cursor-up over 3 lines in %q", out)
	}
	if !strings.Contains(out, "four") {
		t.Errorf("expected new frame content in %q", out)
	}
}

func TestSessionNonTTYFlushesFinalFrameOnly(t *testing.T) {
	var buf bytes.Buffer
	s := StartSession(WithOutput(&buf), WithTTY(false))

	s.Repaint("draft one", false)
	s.Repaint("draft two", false)
	s.Repaint("final", false)

	if buf.Len() != 0 {
		t.Errorf("expected no output before stop on a pipe, got %q", buf.String())
	}

	s.Stop()

	out := buf.String()
	if !strings.Contains(out, "final") {
		t.Errorf("expected final frame in %q", out)
	}
	if strings.Contains(out, "draft") {
		t.Errorf("expected intermediate frames to be dropped, got %q", out)
	}
}

func TestSessionNoRepaintAfterStop(t *testing.T) {
	var buf bytes.Buffer
	s := StartSession(WithOutput(&buf), WithTTY(true))

	s.Stop()
	if s.Active() {
		t.Fatal("expected session to be inactive after stop")
	}

	buf.Reset()
	s.Repaint("late", false)
	if buf.Len() != 0 {
		t.Errorf("expected no writes after stop, got %q", buf.String())
	}
}

func TestSessionStopRestoresCursor(t *testing.T) {
	var buf bytes.Buffer
	s := StartSession(WithOutput(&buf), WithTTY(true))

	s.Repaint("content", false)
	buf.Reset()
	s.Stop()

	// termenv show-cursor sequence.
	if !strings.Contains(buf.String(), "\x1b[?25h") {
		t.Errorf("expected show-cursor sequence on stop, got %q", buf.String())
	}
}

func TestSessionCursorVisibilityFollowsFlag(t *testing.T) {
	var buf bytes.Buffer
	s := StartSession(WithOutput(&buf), WithTTY(true))

	buf.Reset()
	s.Repaint("content", true)
	if !strings.Contains(buf.String(), "\x1b[?25h") {
		t.Errorf("expected cursor shown when flag is true, got %q", buf.String())
	}

	buf.Reset()
	s.Repaint("content", false)
	if strings.Contains(buf.String(), "\x1b[?25h") {
		t.Errorf("expected cursor to stay hidden when flag is false, got %q", buf.String())
	}
}
