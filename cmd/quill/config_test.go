package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLookupKey(t *testing.T) {
	cfg := map[string]any{
		"model": "claude-sonnet",
		"display": map[string]any{
			"markdown":     true,
			"syntax_theme": "monokai",
		},
	}

	tests := []struct {
		key   string
		want  any
		found bool
	}{
		{"model", "claude-sonnet", true},
		{"display.markdown", true, true},
		{"display.syntax_theme", "monokai", true},
		{"missing", nil, false},
		{"display.missing", nil, false},
		{"model.too.deep", nil, false},
	}

	for _, tt := range tests {
		got, ok := lookupKey(cfg, tt.key)
		if ok != tt.found {
			t.Errorf("lookupKey(%q): found=%v, expected %v", tt.key, ok, tt.found)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("lookupKey(%q) = %v, expected %v", tt.key, got, tt.want)
		}
	}
}

func TestConfigExists(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmpDir)

	if configExists("") {
		t.Error("expected no default config in a fresh environment")
	}

	path := filepath.Join(t.TempDir(), "present.yaml")
	if err := os.WriteFile(path, []byte("model: x\n"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if !configExists(path) {
		t.Error("expected existing candidate to be detected")
	}
}
