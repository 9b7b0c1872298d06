package history

import (
	"path/filepath"
	"testing"

	"github.com/ShayCichocki/quill/pkg/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "history.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	if s.Path() != path {
		t.Errorf("expected path %q, got %q", path, s.Path())
	}
}

func TestCreateAndListConversations(t *testing.T) {
	s := openTestStore(t)

	first, err := s.CreateConversation("plotting a chart")
	if err != nil {
		t.Fatalf("CreateConversation failed: %v", err)
	}
	if first.ID == "" {
		t.Error("expected conversation to get an id")
	}

	if _, err := s.CreateConversation("cleaning a csv"); err != nil {
		t.Fatalf("CreateConversation failed: %v", err)
	}

	convs, err := s.Conversations()
	if err != nil {
		t.Fatalf("Conversations failed: %v", err)
	}
	if len(convs) != 2 {
		t.Fatalf("expected 2 conversations, got %d", len(convs))
	}
}

func TestMessagesRoundTripInOrder(t *testing.T) {
	s := openTestStore(t)

	conv, err := s.CreateConversation("test")
	if err != nil {
		t.Fatalf("CreateConversation failed: %v", err)
	}

	msgs := []models.Message{
		{Role: models.RoleUser, Content: "plot sales by month"},
		{Role: models.RoleAssistant, Content: "Sure, running this:", Code: "plt.plot(df)", Language: "python"},
		{Role: models.RoleComputer, Output: "<figure saved>"},
	}
	for _, m := range msgs {
		if err := s.AppendMessage(conv.ID, m); err != nil {
			t.Fatalf("AppendMessage failed: %v", err)
		}
	}

	got, err := s.Messages(conv.ID)
	if err != nil {
		t.Fatalf("Messages failed: %v", err)
	}
	if len(got) != len(msgs) {
		t.Fatalf("expected %d messages, got %d", len(msgs), len(got))
	}
	for i := range msgs {
		if got[i].Role != msgs[i].Role {
			t.Errorf("message %d: expected role %q, got %q", i, msgs[i].Role, got[i].Role)
		}
		if got[i].Content != msgs[i].Content {
			t.Errorf("message %d: expected content %q, got %q", i, msgs[i].Content, got[i].Content)
		}
		if got[i].Code != msgs[i].Code {
			t.Errorf("message %d: expected code %q, got %q", i, msgs[i].Code, got[i].Code)
		}
	}
}

func TestDeleteConversationCascades(t *testing.T) {
	s := openTestStore(t)

	conv, err := s.CreateConversation("doomed")
	if err != nil {
		t.Fatalf("CreateConversation failed: %v", err)
	}
	if err := s.AppendMessage(conv.ID, models.Message{Role: models.RoleUser, Content: "hi"}); err != nil {
		t.Fatalf("AppendMessage failed: %v", err)
	}

	if err := s.DeleteConversation(conv.ID); err != nil {
		t.Fatalf("DeleteConversation failed: %v", err)
	}

	msgs, err := s.Messages(conv.ID)
	if err != nil {
		t.Fatalf("Messages failed: %v", err)
	}
	if len(msgs) != 0 {
		t.Errorf("expected messages to cascade on delete, found %d", len(msgs))
	}

	convs, err := s.Conversations()
	if err != nil {
		t.Fatalf("Conversations failed: %v", err)
	}
	if len(convs) != 0 {
		t.Errorf("expected no conversations, found %d", len(convs))
	}
}
