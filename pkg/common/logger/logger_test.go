package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]hlog.Level{
		"trace":   hlog.LevelTrace,
		"DEBUG":   hlog.LevelDebug,
		"warning": hlog.LevelWarn,
		"error":   hlog.LevelError,
		"":        hlog.LevelInfo,
		"verbose": hlog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNewWritesJSONFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	l.Info("hello")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "info", entry["severity"])
	assert.Contains(t, entry, "timestamp")
}
