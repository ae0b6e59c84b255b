// Package chatpost sends JSON payloads to a chatbot HTTP endpoint.
//
// Example usage:
//
//	payload := chatpost.NewConversationPayload(chatpost.NewConversation(
//	    chatpost.NewMessage(chatpost.User, "Hello."),
//	    chatpost.NewMessage(chatpost.Assistant, "Hi."),
//	))
//	resp, err := chatpost.Send(ctx, "http://localhost:5020/chatbot_agent", payload)
//	if err != nil {
//	    var se *chatpost.SendError
//	    if errors.As(err, &se) { ... }
//	}
//
// Subpackages can be imported directly: pkg/chat for payload types,
// pkg/sender for the sender and its options, pkg/log for logging.
package chatpost

import (
	"context"

	"github.com/bft-labs/chatpost/pkg/chat"
	"github.com/bft-labs/chatpost/pkg/sender"
)

type (
	Role                = chat.Role
	Message             = chat.Message
	Conversation        = chat.Conversation
	ConversationPayload = chat.ConversationPayload
	SimplePayload       = chat.SimplePayload

	Response  = sender.Response
	SendError = sender.SendError
)

const (
	User      = chat.User
	Assistant = chat.Assistant
)

// ErrUnexpectedStatus is wrapped by SendError on non-2xx replies.
var ErrUnexpectedStatus = sender.ErrUnexpectedStatus

// Send posts payload to endpoint with default settings and returns the
// parsed JSON reply, or a *SendError.
func Send(ctx context.Context, endpoint string, payload any) (*Response, error) {
	return sender.Send(ctx, endpoint, payload)
}

// NewMessage returns a Message for role and content.
func NewMessage(role Role, content string) Message {
	return chat.NewMessage(role, content)
}

// NewConversation returns a conversation holding a copy of msgs.
func NewConversation(msgs ...Message) Conversation {
	return chat.NewConversation(msgs...)
}

// NewConversationPayload wraps c as {"messages": [...]}.
func NewConversationPayload(c Conversation) ConversationPayload {
	return chat.NewConversationPayload(c)
}

// NewSimplePayload returns {"message": text}.
func NewSimplePayload(text string) SimplePayload {
	return chat.NewSimplePayload(text)
}
