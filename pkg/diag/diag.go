// Package diag carries lexical diagnostics from the scanner to a
// caller-installed sink. Diagnostics are not Go errors: reporting one
// never alters control flow, it only marks the session as failed.
package diag

// Reporter is the sink for diagnostics. Implementations must be pure
// output: no return value, no effect on the caller's control flow.
type Reporter interface {
	// Report records one diagnostic. chunk is the logical name of the
	// source unit (a file path or a session tag like "repl"), line is
	// the 1-based source line, where is an optional location qualifier.
	Report(chunk string, line int, where, message string)
}

// Session binds a Reporter to one source unit and tracks whether any
// diagnostic was reported during its lifetime. The flag is sticky: once
// set it stays set for the life of the session.
type Session struct {
	reporter Reporter
	chunk    string
	hadError bool
}

// NewSession creates a diagnostic session for the named chunk
func NewSession(r Reporter, chunk string) *Session {
	return &Session{
		reporter: r,
		chunk:    chunk,
	}
}

// Error reports a diagnostic with no location qualifier
func (s *Session) Error(line int, message string) {
	s.Report(line, "", message)
}

// Report forwards a diagnostic to the sink and sets the error flag
func (s *Session) Report(line int, where, message string) {
	s.reporter.Report(s.chunk, line, where, message)
	s.hadError = true
}

// HadError reports whether any diagnostic was recorded on this session
func (s *Session) HadError() bool {
	return s.hadError
}

// Chunk returns the name of the source unit this session covers
func (s *Session) Chunk() string {
	return s.chunk
}
