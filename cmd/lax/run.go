package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/jsimmons/lax/pkg/config"
	"github.com/jsimmons/lax/pkg/diag"
	"github.com/jsimmons/lax/pkg/errors"
	"github.com/jsimmons/lax/pkg/logger"
	"github.com/jsimmons/lax/pkg/scanner"
)

// runFile scans one script and renders its token stream to stdout. The
// exit code reflects the session's error flag: lexical errors do not
// stop the scan, but they do fail the run.
func runFile(path string, cfg *config.Config, log *logger.Logger, reporter diag.Reporter, f *flags) int {
	data, err := os.ReadFile(path)
	if err != nil {
		var lerr *errors.Error
		if os.IsNotExist(err) {
			lerr = errors.SourceNotFound(path)
		} else {
			lerr = errors.SourceReadError(path, err)
		}
		log.ErrorWithCause("Failed to load script", err, lerr.Cause, lerr.Action)
		fmt.Fprintf(os.Stderr, "Error: %v\n", lerr)
		return ExitOperationError
	}

	sess := diag.NewSession(reporter, path)
	tokens := scanner.New(sess, data).ScanTokens()

	log.Debug("Scan complete",
		slog.String("chunk", path),
		slog.Int("bytes", len(data)),
		slog.Int("tokens", len(tokens)),
		slog.Bool("had_error", sess.HadError()),
	)

	if f.debug {
		fmt.Fprint(os.Stderr, spew.Sdump(tokens))
	}

	if err := writeTokens(os.Stdout, tokens, cfg.TokenFormat); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitOperationError
	}

	if sess.HadError() {
		return ExitOperationError
	}
	return ExitSuccess
}
