package diag

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsimmons/lax/pkg/logger"
)

func TestSession_StickyErrorFlag(t *testing.T) {
	sess := NewSession(NewCaptureReporter(), "test.lax")

	assert.False(t, sess.HadError())

	sess.Error(3, "unexpected character")
	assert.True(t, sess.HadError())

	// The flag stays set across further reports
	sess.Error(7, "unterminated string")
	assert.True(t, sess.HadError())
}

func TestSession_Chunk(t *testing.T) {
	sess := NewSession(NewCaptureReporter(), "script.lax")
	assert.Equal(t, "script.lax", sess.Chunk())
}

func TestSession_ForwardsToReporter(t *testing.T) {
	capture := NewCaptureReporter()
	sess := NewSession(capture, "repl")

	sess.Error(1, "unexpected character")
	sess.Report(2, " at '@'", "unexpected character")

	require.Len(t, capture.Entries, 2)
	assert.Equal(t, Entry{Chunk: "repl", Line: 1, Where: "", Message: "unexpected character"}, capture.Entries[0])
	assert.Equal(t, Entry{Chunk: "repl", Line: 2, Where: " at '@'", Message: "unexpected character"}, capture.Entries[1])
}

func TestConsoleReporter_Format(t *testing.T) {
	var buf bytes.Buffer
	r := NewConsoleReporter(&buf)

	r.Report("script.lax", 4, "", "unterminated string")

	assert.Equal(t, "error: unterminated string\n\tscript.lax:4\n", buf.String())
}

func TestConsoleReporter_WhereQualifier(t *testing.T) {
	var buf bytes.Buffer
	r := NewConsoleReporter(&buf)

	r.Report("repl", 1, " at '@'", "unexpected character")

	assert.Equal(t, "error at '@': unexpected character\n\trepl:1\n", buf.String())
}

func TestSlogReporter_StructuredRecord(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New("diag", &logger.Config{Level: slog.LevelDebug, Output: &buf})
	r := NewSlogReporter(log)

	r.Report("script.lax", 9, "", "could not parse number")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	assert.Equal(t, "lexical error", record["msg"])
	assert.Equal(t, "script.lax", record["chunk"])
	assert.Equal(t, float64(9), record["line"])
	assert.Equal(t, "could not parse number", record["message"])
	assert.Equal(t, "diag", record["component"])

	// ULID event ids are 26 characters
	id, ok := record["event_id"].(string)
	require.True(t, ok)
	assert.Len(t, id, 26)
}
