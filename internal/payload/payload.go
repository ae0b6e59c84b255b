// Package payload builds the request bodies chatpost sends, either from
// built-in defaults or from a document on disk.
package payload

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/bft-labs/chatpost/pkg/chat"
)

// DefaultConversation returns the two-turn conversation used when no
// messages are given.
func DefaultConversation() chat.Conversation {
	return chat.NewConversation(
		chat.NewMessage(chat.User, "Hello."),
		chat.NewMessage(chat.Assistant, "Hi."),
	)
}

// DefaultText is the text sent by the message command when none is given.
const DefaultText = "Hello"

// Conversation builds a ConversationPayload from "role=content" specs.
// With no specs it returns the default conversation.
func Conversation(specs []string) (chat.ConversationPayload, error) {
	if len(specs) == 0 {
		return chat.NewConversationPayload(DefaultConversation()), nil
	}
	msgs := make([]chat.Message, 0, len(specs))
	for _, s := range specs {
		m, err := chat.ParseMessage(s)
		if err != nil {
			return chat.ConversationPayload{}, err
		}
		msgs = append(msgs, m)
	}
	return chat.NewConversationPayload(chat.NewConversation(msgs...)), nil
}

// LoadFile reads a payload document. The format follows the extension:
// .yaml/.yml and .toml are converted, anything else is read as JSON.
// The result is always JSON-serializable.
func LoadFile(path string) (any, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}

	var v any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &v); err != nil {
			return nil, fmt.Errorf("parse payload %s: %w", path, err)
		}
		v = normalize(v)
	case ".toml":
		var m map[string]any
		if err := toml.Unmarshal(b, &m); err != nil {
			return nil, fmt.Errorf("parse payload %s: %w", path, err)
		}
		v = m
	default:
		if err := json.Unmarshal(b, &v); err != nil {
			return nil, fmt.Errorf("parse payload %s: %w", path, err)
		}
	}
	return v, nil
}

// normalize converts YAML maps with non-string keys so encoding/json can
// marshal them.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = normalize(e)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[fmt.Sprint(k)] = normalize(e)
		}
		return m
	case []any:
		for i, e := range t {
			t[i] = normalize(e)
		}
		return t
	default:
		return v
	}
}
