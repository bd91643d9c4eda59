package diag

import (
	"fmt"
	"io"
	"os"
)

// ConsoleReporter writes diagnostics in a two-line human-readable form:
//
//	error<where>: <message>
//		<chunk>:<line>
type ConsoleReporter struct {
	w io.Writer
}

// NewConsoleReporter creates a console reporter. A nil writer means stderr.
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	if w == nil {
		w = os.Stderr
	}
	return &ConsoleReporter{w: w}
}

// Report implements Reporter
func (r *ConsoleReporter) Report(chunk string, line int, where, message string) {
	fmt.Fprintf(r.w, "error%s: %s\n\t%s:%d\n", where, message, chunk, line)
}
