package diag

import (
	"crypto/rand"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/jsimmons/lax/pkg/logger"
)

// SlogReporter routes diagnostics into the structured log. Each record
// carries a ULID event id so diagnostics sort by emission time across
// sessions.
type SlogReporter struct {
	log *logger.Logger
}

// NewSlogReporter creates a reporter backed by the given logger
func NewSlogReporter(log *logger.Logger) *SlogReporter {
	return &SlogReporter{log: log}
}

// Report implements Reporter
func (r *SlogReporter) Report(chunk string, line int, where, message string) {
	attrs := []any{
		slog.String("event_id", newEventID()),
		slog.String("chunk", chunk),
		slog.Int("line", line),
		slog.String("message", message),
	}
	if where != "" {
		attrs = append(attrs, slog.String("where", where))
	}
	r.log.Warn("lexical error", attrs...)
}

// newEventID generates a ULID string.
// Example: 01ARYZ6S41TSV4RRFFQ69G5FAV
func newEventID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id := ulid.MustNew(ulid.Timestamp(time.Now()), entropy)
	return id.String()
}
