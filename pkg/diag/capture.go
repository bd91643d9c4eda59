package diag

// Entry is one captured diagnostic
type Entry struct {
	Chunk   string
	Line    int
	Where   string
	Message string
}

// CaptureReporter accumulates diagnostics in memory, in report order.
// It exists for tests and for callers that post-process diagnostics.
type CaptureReporter struct {
	Entries []Entry
}

// NewCaptureReporter creates an empty capturing reporter
func NewCaptureReporter() *CaptureReporter {
	return &CaptureReporter{}
}

// Report implements Reporter
func (r *CaptureReporter) Report(chunk string, line int, where, message string) {
	r.Entries = append(r.Entries, Entry{
		Chunk:   chunk,
		Line:    line,
		Where:   where,
		Message: message,
	})
}
