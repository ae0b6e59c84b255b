package cliconfig

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// ApplyEnvConfig applies configuration from environment variables (CHATPOST_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString(FlagConversationURL, os.Getenv("CHATPOST_CONVERSATION_URL"), &cfg.ConversationURL)
	s.setString(FlagMessageURL, os.Getenv("CHATPOST_MESSAGE_URL"), &cfg.MessageURL)
	s.setString("log-level", os.Getenv("CHATPOST_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("log-file", os.Getenv("CHATPOST_LOG_FILE"), &cfg.LogFile)

	if err := s.setDuration("timeout", os.Getenv("CHATPOST_TIMEOUT"), &cfg.Timeout); err != nil {
		return err
	}
	if err := s.setDuration("debounce", os.Getenv("CHATPOST_DEBOUNCE"), &cfg.Debounce); err != nil {
		return err
	}
	return nil
}

// LoadDotEnv loads environment variables from path without overriding
// variables already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
