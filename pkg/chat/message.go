package chat

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRole is returned when a message carries a role outside the known set.
var ErrInvalidRole = errors.New("chat: invalid role")

// Message is a single conversation turn.
type Message struct {
	Role    Role   `json:"role" yaml:"role" toml:"role"`
	Content string `json:"content" yaml:"content" toml:"content"`
}

// NewMessage returns a Message for role and content.
func NewMessage(role Role, content string) Message {
	return Message{Role: role, Content: content}
}

// Validate checks that the role is known.
func (m Message) Validate() error {
	if !m.Role.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidRole, m.Role)
	}
	return nil
}

// ParseMessage parses the "role=content" form used on the command line.
// Content may itself contain '=' characters.
func ParseMessage(s string) (Message, error) {
	role, content, ok := strings.Cut(s, "=")
	if !ok {
		return Message{}, fmt.Errorf("parse message %q: want role=content", s)
	}
	m := NewMessage(Role(strings.ToLower(strings.TrimSpace(role))), content)
	if err := m.Validate(); err != nil {
		return Message{}, fmt.Errorf("parse message %q: %w", s, err)
	}
	return m, nil
}
