package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{in: "", want: zerolog.InfoLevel},
		{in: "info", want: zerolog.InfoLevel},
		{in: "DEBUG", want: zerolog.DebugLevel},
		{in: " warn ", want: zerolog.WarnLevel},
		{in: "warning", want: zerolog.WarnLevel},
		{in: "error", want: zerolog.ErrorLevel},
		{in: "verbose", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func decodeLines(t *testing.T, b []byte) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(string(b)), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m), line)
		out = append(out, m)
	}
	return out
}

func TestNew_FieldsAndLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := New(Options{Level: "info", Output: &buf})
	require.NoError(t, err)
	defer closer.Close()

	logger.Debug("hidden")
	logger.Info("response",
		String("url", "http://localhost:5000/chatbot_agent"),
		Int("status_code", 200),
		Bool("ok", true),
		Duration("elapsed", 1500*time.Millisecond),
		RawJSON("body", []byte(`{"ok":true}`)),
		Any("tags", []string{"a"}))
	logger.Error("send failed", Err(errors.New("boom")))

	lines := decodeLines(t, buf.Bytes())
	require.Len(t, lines, 2)

	assert.Equal(t, "info", lines[0]["level"])
	assert.Equal(t, "response", lines[0]["message"])
	assert.Equal(t, float64(200), lines[0]["status_code"])
	assert.Equal(t, true, lines[0]["ok"])
	assert.Equal(t, map[string]any{"ok": true}, lines[0]["body"])
	assert.Equal(t, []any{"a"}, lines[0]["tags"])

	assert.Equal(t, "error", lines[1]["level"])
	assert.Equal(t, "boom", lines[1]["error"])
}

func TestNew_EmptyRawJSONIsNull(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := New(Options{Output: &buf})
	require.NoError(t, err)

	logger.Info("response", RawJSON("body", nil))

	lines := decodeLines(t, buf.Bytes())
	require.Len(t, lines, 1)
	v, ok := lines[0]["body"]
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestNew_InvalidLevel(t *testing.T) {
	_, closer, err := New(Options{Level: "loud"})
	assert.Error(t, err)
	assert.NotNil(t, closer)
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chatpost.log")
	var buf bytes.Buffer
	logger, closer, err := New(Options{Output: &buf, File: path})
	require.NoError(t, err)

	logger.Warn("written twice")
	require.NoError(t, closer.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := decodeLines(t, b)
	require.Len(t, lines, 1)
	assert.Equal(t, "written twice", lines[0]["message"])
	assert.Contains(t, buf.String(), "written twice")
}

func TestNoopLogger(t *testing.T) {
	var l Logger = NewNoopLogger()
	assert.NotPanics(t, func() {
		l.Debug("x")
		l.Info("x", String("k", "v"))
		l.Warn("x")
		l.Error("x", Err(errors.New("e")))
	})
}
