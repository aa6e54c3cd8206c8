package log

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"trace", LevelTrace},
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), tt.in)
	}
}

func TestSetupSplitsStreams(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logger, closers, err := setup(Config{Level: "debug"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Empty(t, closers)

	logger.Debug("dbg")
	logger.Info("hello", "k", 1)
	logger.Error("boom")

	assert.Contains(t, stdout.String(), "msg=dbg")
	assert.Contains(t, stdout.String(), "msg=hello k=1")
	assert.NotContains(t, stdout.String(), "boom")
	assert.Contains(t, stderr.String(), "msg=boom")
	assert.NotContains(t, stderr.String(), "hello")
}

func TestSetupTraceAndJSON(t *testing.T) {
	var stdout bytes.Buffer
	logger, _, err := setup(Config{Level: "trace", Format: "json"}, &stdout, &bytes.Buffer{})
	require.NoError(t, err)

	logger.Log(t.Context(), LevelTrace, "report")
	assert.Contains(t, stdout.String(), `"level":"TRACE"`)
	assert.Contains(t, stdout.String(), `"msg":"report"`)
}

func TestSetupFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweepmap.log")
	var stderr bytes.Buffer
	logger, closers, err := setup(Config{Level: "info", File: path}, &bytes.Buffer{}, &stderr)
	require.NoError(t, err)
	require.Len(t, closers, 1)
	defer closers[0].Close()

	logger.Info("to file")
	assert.Contains(t, stderr.String(), "to file")
}

func TestRawLogger(t *testing.T) {
	var buf bytes.Buffer
	r := NewRaw(&buf).(*rawLogger)
	r.now = func() time.Time { return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC) }

	r.Log(true, []byte{0x02, 0x01, 0x04})
	r.Log(false, []byte{0x02})
	r.Log(true, nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "12:00:00.000 KB->HOST 3 bytes: 02 01 04", lines[0])
	assert.Equal(t, "12:00:00.000 HOST->KB 1 bytes: 02", lines[1])

	NewRaw(nil).Log(true, []byte{1})
}

func TestHex(t *testing.T) {
	assert.Equal(t, "", Hex(nil))
	assert.Equal(t, "00 ff 1a", Hex([]byte{0x00, 0xff, 0x1a}))
}
