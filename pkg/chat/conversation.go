package chat

import (
	"encoding/json"
	"fmt"
)

// Conversation is an ordered sequence of messages. Order is turn order.
// The zero value is an empty conversation.
type Conversation struct {
	msgs []Message
}

// NewConversation returns a conversation holding a copy of msgs.
func NewConversation(msgs ...Message) Conversation {
	return Conversation{msgs: append([]Message(nil), msgs...)}
}

// Append returns a new conversation with msgs added after the existing turns.
// The receiver is left unchanged.
func (c Conversation) Append(msgs ...Message) Conversation {
	out := make([]Message, 0, len(c.msgs)+len(msgs))
	out = append(out, c.msgs...)
	out = append(out, msgs...)
	return Conversation{msgs: out}
}

// Messages returns a copy of the turns in order.
func (c Conversation) Messages() []Message {
	return append([]Message(nil), c.msgs...)
}

// Len returns the number of turns.
func (c Conversation) Len() int {
	return len(c.msgs)
}

// Validate checks every message, reporting the first bad turn.
func (c Conversation) Validate() error {
	for i, m := range c.msgs {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("message %d: %w", i, err)
		}
	}
	return nil
}

// ConversationPayload is the {"messages": [...]} request body.
type ConversationPayload struct {
	Conversation Conversation
}

// NewConversationPayload wraps c for sending.
func NewConversationPayload(c Conversation) ConversationPayload {
	return ConversationPayload{Conversation: c}
}

type conversationWire struct {
	Messages []Message `json:"messages"`
}

// MarshalJSON encodes the payload. An empty conversation is encoded as an
// empty array, never null.
func (p ConversationPayload) MarshalJSON() ([]byte, error) {
	msgs := p.Conversation.msgs
	if msgs == nil {
		msgs = []Message{}
	}
	return json.Marshal(conversationWire{Messages: msgs})
}

// UnmarshalJSON decodes a {"messages": [...]} document.
func (p *ConversationPayload) UnmarshalJSON(b []byte) error {
	var w conversationWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	p.Conversation = NewConversation(w.Messages...)
	return nil
}

// SimplePayload is the {"message": "..."} request body.
type SimplePayload struct {
	Message string `json:"message"`
}

// NewSimplePayload returns a SimplePayload carrying text.
func NewSimplePayload(text string) SimplePayload {
	return SimplePayload{Message: text}
}
