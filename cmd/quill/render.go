package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ShayCichocki/quill/internal/display"
	"github.com/ShayCichocki/quill/internal/imagepath"
	"github.com/ShayCichocki/quill/internal/logging"
	"github.com/ShayCichocki/quill/internal/storage"
	"github.com/ShayCichocki/quill/pkg/models"
)

var (
	renderAsCode   bool
	renderLanguage string
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a file through a live display block",
	Long: `Render a file (or stdin) through a live display block.

By default the input is treated as markdown prose and rendered through a
message block. With --code it is rendered through a code block with
syntax highlighting.

If the input mentions an image file that exists on disk, its path is
reported after rendering.

Examples:
  quill render notes.md
  cat answer.md | quill render
  quill render --code --lang python script.py`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args)
		if err != nil {
			return err
		}

		msg := models.Message{Role: models.RoleAssistant}
		var block display.Block
		if renderAsCode {
			msg.Code = text
			msg.Language = renderLanguage
			block = display.NewCodeBlock(blockOptions()...)
		} else {
			msg.Content = text
			block = display.NewMessageBlock(blockOptions()...)
		}

		block.UpdateFromMessage(msg)
		block.End()

		if img := imagepath.Find(text); img != "" {
			printStatus("→", fmt.Sprintf("Image referenced: %s", img), color.FgCyan)
		}
		return nil
	},
}

// blockOptions returns shared display options; with --debug, sessions
// log to quill.log in the storage directory.
func blockOptions() []display.Option {
	if !debugLogging {
		return nil
	}
	logger, err := logging.New(filepath.Join(storage.Dir(), "quill.log"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: debug logging unavailable: %v\n", err)
		return nil
	}
	return []display.Option{display.WithLogger(logger)}
}

// readInput reads the named file, or stdin when no file is given.
func readInput(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func init() {
	renderCmd.Flags().BoolVar(&renderAsCode, "code", false, "Render the input as code instead of markdown")
	renderCmd.Flags().StringVar(&renderLanguage, "lang", "", "Language for syntax highlighting with --code")
}
