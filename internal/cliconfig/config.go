package cliconfig

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bft-labs/chatpost/pkg/log"
	"github.com/bft-labs/chatpost/pkg/sender"
)

// Default endpoints for the two commands.
const (
	DefaultConversationURL = "http://localhost:5020/chatbot_agent"
	DefaultMessageURL      = "http://localhost:5000/chatbot_agent"
)

// Precedence keys for the per-command endpoints. Each command exposes its
// endpoint as --url and records a change under one of these names.
const (
	FlagConversationURL = "conversation-url"
	FlagMessageURL      = "message-url"
)

// Config holds CLI configuration for chatpost.
type Config struct {
	ConversationURL string
	MessageURL      string

	Timeout time.Duration

	// Debounce is how long watch mode waits after a change before resending.
	Debounce time.Duration

	LogLevel string
	LogFile  string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		ConversationURL: DefaultConversationURL,
		MessageURL:      DefaultMessageURL,
		Timeout:         sender.DefaultTimeout,
		Debounce:        200 * time.Millisecond,
		LogLevel:        "info",
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if err := validateURL("conversation url", c.ConversationURL); err != nil {
		return err
	}
	if err := validateURL("message url", c.MessageURL); err != nil {
		return err
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.Debounce < 0 {
		return fmt.Errorf("debounce must not be negative")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func validateURL(name, raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("%s is required", name)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s must be an absolute http(s) URL, got %q", name, raw)
	}
	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}
