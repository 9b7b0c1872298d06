package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/quill/internal/display"
	"github.com/ShayCichocki/quill/internal/history"
	"github.com/ShayCichocki/quill/pkg/models"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored conversations",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.Open(history.DefaultDBPath())
		if err != nil {
			return err
		}
		defer store.Close()

		convs, err := store.Conversations()
		if err != nil {
			return err
		}
		if len(convs) == 0 {
			fmt.Println("No conversations stored.")
			return nil
		}

		for _, c := range convs {
			fmt.Printf("%-36s  %-19s  %s\n", c.ID, c.CreatedAt.Format("2006-01-02 15:04:05"), c.Name)
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <conversation-id>",
	Short: "Replay a stored conversation through display blocks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.Open(history.DefaultDBPath())
		if err != nil {
			return err
		}
		defer store.Close()

		msgs, err := store.Messages(args[0])
		if err != nil {
			return err
		}
		if len(msgs) == 0 {
			return fmt.Errorf("no messages for conversation %s", args[0])
		}

		for _, msg := range msgs {
			replayMessage(msg)
		}
		return nil
	},
}

// replayMessage paints a single stored message and finalizes its block.
func replayMessage(msg models.Message) {
	switch {
	case msg.Role == models.RoleUser:
		fmt.Printf("> %s\n", msg.Content)
	case msg.HasCode():
		b := display.NewCodeBlock(blockOptions()...)
		b.UpdateFromMessage(msg)
		b.End()
	default:
		b := display.NewMessageBlock(blockOptions()...)
		b.UpdateFromMessage(msg)
		b.End()
	}
}

func init() {
	historyCmd.AddCommand(historyShowCmd)
}
