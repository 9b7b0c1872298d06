package models

import "testing"

func TestRoleValid(t *testing.T) {
	valid := []Role{RoleUser, RoleAssistant, RoleComputer}
	for _, r := range valid {
		if !r.Valid() {
			t.Errorf("expected role %q to be valid", r)
		}
	}

	invalid := []Role{"", "system", "unknown"}
	for _, r := range invalid {
		if r.Valid() {
			t.Errorf("expected role %q to be invalid", r)
		}
	}
}

func TestMessageHasCode(t *testing.T) {
	m := Message{Role: RoleAssistant, Content: "prose only"}
	if m.HasCode() {
		t.Error("expected HasCode false without code")
	}

	m.Code = "print(1)"
	if !m.HasCode() {
		t.Error("expected HasCode true with code")
	}
}
