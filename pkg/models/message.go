package models

import "time"

// Role identifies who produced a message.
type Role string

const (
	// RoleUser is input typed by the person at the terminal.
	RoleUser Role = "user"
	// RoleAssistant is prose produced by the model.
	RoleAssistant Role = "assistant"
	// RoleComputer is output captured from executed code.
	RoleComputer Role = "computer"
)

// Valid returns true if the role is a known value.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAssistant, RoleComputer:
		return true
	default:
		return false
	}
}

// Message is the unit of conversation streamed into display blocks.
// A message may carry prose, code, or captured output; blocks pick the
// fields relevant to them and ignore the rest.
type Message struct {
	// ID is the unique identifier for this message.
	ID string `json:"id,omitempty"`
	// Role identifies the message producer.
	Role Role `json:"role"`
	// Content is prose content, typically markdown.
	Content string `json:"content,omitempty"`
	// Code is source code attached to the message.
	Code string `json:"code,omitempty"`
	// Language is the language of Code, used for syntax highlighting.
	Language string `json:"language,omitempty"`
	// ActiveLine is the 1-based line of Code currently executing.
	// Zero means no line is active.
	ActiveLine int `json:"active_line,omitempty"`
	// Output is captured execution output associated with Code.
	Output string `json:"output,omitempty"`
	// CreatedAt is when the message was produced.
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// HasCode returns true if the message carries code to render.
func (m Message) HasCode() bool {
	return m.Code != ""
}
