package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
conversation_url = "http://bot:5020/chatbot_agent"
message_url = "http://bot:5000/chatbot_agent"
timeout = "3s"
debounce = "50ms"
log_level = "debug"
log_file = "/tmp/chatpost.log"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	fc, err := LoadFileConfig(path)
	require.NoError(t, err)
	assert.Equal(t, FileConfig{
		ConversationURL: "http://bot:5020/chatbot_agent",
		MessageURL:      "http://bot:5000/chatbot_agent",
		Timeout:         "3s",
		Debounce:        "50ms",
		LogLevel:        "debug",
		LogFile:         "/tmp/chatpost.log",
	}, fc)
}

func TestLoadFileConfig_Errors(t *testing.T) {
	_, err := LoadFileConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("timeout = "), 0644))
	_, err = LoadFileConfig(path)
	assert.Error(t, err)
}

func TestApplyFileConfig(t *testing.T) {
	fc := FileConfig{
		ConversationURL: "http://file:5020/chatbot_agent",
		MessageURL:      "http://file:5000/chatbot_agent",
		Timeout:         "2s",
		LogLevel:        "warn",
	}

	t.Run("applies unset values", func(t *testing.T) {
		cfg := DefaultConfig()
		require.NoError(t, ApplyFileConfig(&cfg, fc, map[string]bool{}))
		assert.Equal(t, "http://file:5020/chatbot_agent", cfg.ConversationURL)
		assert.Equal(t, "http://file:5000/chatbot_agent", cfg.MessageURL)
		assert.Equal(t, 2*time.Second, cfg.Timeout)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, 200*time.Millisecond, cfg.Debounce)
	})

	t.Run("respects changed flags", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.ConversationURL = "http://flag:1/x"
		cfg.Timeout = time.Minute
		changed := map[string]bool{FlagConversationURL: true, "timeout": true}
		require.NoError(t, ApplyFileConfig(&cfg, fc, changed))
		assert.Equal(t, "http://flag:1/x", cfg.ConversationURL)
		assert.Equal(t, time.Minute, cfg.Timeout)
		assert.Equal(t, "http://file:5000/chatbot_agent", cfg.MessageURL)
	})

	t.Run("invalid duration", func(t *testing.T) {
		cfg := DefaultConfig()
		err := ApplyFileConfig(&cfg, FileConfig{Debounce: "soon"}, map[string]bool{})
		assert.ErrorContains(t, err, "parse debounce")
	})
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x")
	assert.False(t, FileExists(path))
	require.NoError(t, os.WriteFile(path, nil, 0644))
	assert.True(t, FileExists(path))
}
