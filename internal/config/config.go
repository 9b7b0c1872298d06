// Package config resolves, materializes, and parses quill's YAML
// configuration. A config file is looked up across an ordered list of
// candidate locations; when none exists, the bundled default template is
// copied into place.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/ShayCichocki/quill/internal/storage"
)

// Filename is the configuration file name used in the storage directory.
const Filename = "config.yaml"

//go:embed default.yaml
var defaultTemplate []byte

// DefaultTemplate returns the bundled default configuration, byte for
// byte as it ships.
func DefaultTemplate() []byte {
	out := make([]byte, len(defaultTemplate))
	copy(out, defaultTemplate)
	return out
}

// DefaultPath returns the canonical per-user config path,
// storage-dir/config.yaml. It is computed on every call.
func DefaultPath() string {
	return filepath.Join(storage.Dir(), Filename)
}

// ResolvePath resolves a usable config file path for the given candidate,
// creating one from the bundled default when nothing exists. An empty
// candidate means DefaultPath.
//
// Resolution order:
//  1. the candidate as given
//  2. the candidate inside the storage directory
//  3. the candidate inside the current working directory
//  4. nothing exists: materialize the default template — into the
//     candidate's own directory when it names one that doesn't exist
//     yet, otherwise into the storage directory
//
// Creation is not atomic across processes; two racing first runs may
// both write the same default file.
func ResolvePath(candidate string) (string, error) {
	if candidate == "" {
		candidate = DefaultPath()
	}

	if pathExists(candidate) {
		return candidate, nil
	}
	if p := filepath.Join(storage.Dir(), candidate); pathExists(p) {
		return p, nil
	}
	if cwd, err := os.Getwd(); err == nil {
		if pathExists(filepath.Join(cwd, candidate)) {
			return "." + string(os.PathSeparator) + candidate, nil
		}
	}

	dir := filepath.Dir(candidate)
	var target string
	switch {
	case dir != "." && dir != "" && !pathExists(dir):
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating config directory %s: %w", dir, err)
		}
		target = candidate
	case filepath.IsAbs(candidate):
		target = candidate
	default:
		if _, err := storage.EnsureDir(); err != nil {
			return "", fmt.Errorf("creating storage directory: %w", err)
		}
		target = filepath.Join(storage.Dir(), candidate)
	}

	if err := os.WriteFile(target, defaultTemplate, 0644); err != nil {
		return "", fmt.Errorf("writing default config to %s: %w", target, err)
	}
	return target, nil
}

// Get resolves the candidate path and parses the file as a YAML mapping.
// No schema is enforced; arbitrary keys pass through.
func Get(candidate string) (map[string]any, error) {
	path, err := ResolvePath(candidate)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var out map[string]any
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return out, nil
}

// Settings is the typed view of the keys quill itself consumes.
type Settings struct {
	Model         string          `mapstructure:"model"`
	Temperature   float64         `mapstructure:"temperature"`
	SystemMessage string          `mapstructure:"system_message"`
	Display       DisplaySettings `mapstructure:"display"`
	History       HistorySettings `mapstructure:"history"`
}

// DisplaySettings holds presentation options.
type DisplaySettings struct {
	// Markdown renders assistant prose through the markdown renderer.
	Markdown bool `mapstructure:"markdown"`
	// SyntaxTheme is the highlighting theme for code blocks.
	SyntaxTheme string `mapstructure:"syntax_theme"`
	// MaxOutputLines caps the output pane of a code block.
	MaxOutputLines int `mapstructure:"max_output_lines"`
}

// HistorySettings holds conversation persistence options.
type HistorySettings struct {
	Enabled bool `mapstructure:"enabled"`
}

// Load resolves the default config (creating it on first run) and
// returns the typed settings.
func Load() (*Settings, error) {
	path, err := ResolvePath("")
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath loads typed settings from a specific path.
func LoadFromPath(path string) (*Settings, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	s := &Settings{}
	if err := v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return s, nil
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("model", "claude-sonnet")
	v.SetDefault("temperature", 0.0)
	v.SetDefault("system_message", "")

	v.SetDefault("display.markdown", true)
	v.SetDefault("display.syntax_theme", "monokai")
	v.SetDefault("display.max_output_lines", 8)

	v.SetDefault("history.enabled", true)
}

// pathExists reports whether path exists, file or directory.
func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
