package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ShayCichocki/quill/internal/config"
	"github.com/ShayCichocki/quill/internal/storage"
)

var (
	configFile     string
	configShowPath bool
	configWatch    bool
)

var configCmd = &cobra.Command{
	Use:   "config [key]",
	Short: "Show resolved configuration",
	Long: `Resolve and display quill configuration.

The config file is searched for at the given --file path, then inside the
storage directory, then the current directory. On first run, when no file
exists anywhere, a default config is created in the storage directory.

Without arguments, displays all configuration values. With a key argument
(dotted for nested keys, e.g. display.syntax_theme), displays that value.

Examples:
  quill config                       # Show everything
  quill config display.markdown      # Show one value
  quill config --path                # Show the resolved file path only
  quill config --watch               # Reprint whenever the file changes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		existedBefore := configExists(configFile)

		path, err := config.ResolvePath(configFile)
		if err != nil {
			return err
		}
		if !existedBefore {
			printStatus("✓", fmt.Sprintf("Created default config at %s", path), color.FgGreen)
		}

		if configShowPath {
			fmt.Println(path)
			return nil
		}

		if err := displayConfig(path, args); err != nil {
			return err
		}

		if configWatch {
			return watchConfig(path, args)
		}
		return nil
	},
}

func init() {
	configCmd.Flags().StringVar(&configFile, "file", "", "Config file path or name (default: storage dir config.yaml)")
	configCmd.Flags().BoolVar(&configShowPath, "path", false, "Print the resolved config path and exit")
	configCmd.Flags().BoolVar(&configWatch, "watch", false, "Reprint the config whenever the file changes")
}

// configExists reports whether the candidate resolves without creating
// anything, mirroring the first three resolution steps.
func configExists(candidate string) bool {
	if candidate == "" {
		candidate = config.DefaultPath()
	}
	if _, err := os.Stat(candidate); err == nil {
		return true
	}
	if _, err := os.Stat(filepath.Join(storage.Dir(), candidate)); err == nil {
		return true
	}
	if cwd, err := os.Getwd(); err == nil {
		if _, err := os.Stat(filepath.Join(cwd, candidate)); err == nil {
			return true
		}
	}
	return false
}

// displayConfig prints the whole mapping or a single dotted key.
func displayConfig(path string, args []string) error {
	cfg, err := config.Get(path)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		printMapping("", cfg)
		return nil
	}

	value, ok := lookupKey(cfg, args[0])
	if !ok {
		return fmt.Errorf("unknown config key: %s", args[0])
	}
	fmt.Printf("%v\n", value)
	return nil
}

// printMapping prints a mapping as sorted dotted key/value lines.
func printMapping(prefix string, m map[string]any) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		full := k
		if prefix != "" {
			full = prefix + "." + k
		}
		if nested, ok := m[k].(map[string]any); ok {
			printMapping(full, nested)
			continue
		}
		v := fmt.Sprintf("%v", m[k])
		if strings.Contains(v, "\n") {
			v = strings.SplitN(v, "\n", 2)[0] + " ..."
		}
		fmt.Printf("%s: %s\n", full, v)
	}
}

// lookupKey resolves a dotted key against nested mappings.
func lookupKey(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	var current any = m
	for _, part := range parts {
		mapping, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = mapping[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// watchConfig reprints the config on every change until interrupted.
func watchConfig(path string, args []string) error {
	changed := make(chan struct{}, 1)
	w, err := config.Watch(path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		return err
	}
	defer w.Close()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	printStatus("→", fmt.Sprintf("Watching %s (ctrl-c to stop)", path), color.FgCyan)
	for {
		select {
		case <-changed:
			fmt.Println()
			if err := displayConfig(path, args); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		case <-interrupt:
			return nil
		}
	}
}

// printStatus prints a colored status glyph and message.
func printStatus(glyph, msg string, attr color.Attribute) {
	color.New(attr).Printf("%s ", glyph)
	fmt.Println(msg)
}
