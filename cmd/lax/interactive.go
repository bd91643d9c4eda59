package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/jsimmons/lax/pkg/config"
	"github.com/jsimmons/lax/pkg/diag"
	"github.com/jsimmons/lax/pkg/errors"
	"github.com/jsimmons/lax/pkg/logger"
	"github.com/jsimmons/lax/pkg/scanner"
)

// replShell manages the interactive scanning session
type replShell struct {
	cfg      *config.Config
	log      *logger.Logger
	reporter diag.Reporter
	rl       *readline.Instance
	f        *flags
	// format is mutable via :format
	format string
}

var metaCommands = []string{":help", ":format", ":version", ":quit", ":exit"}

// newReplShell creates the interactive shell
func newReplShell(cfg *config.Config, log *logger.Logger, reporter diag.Reporter, f *flags) (*replShell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:              cfg.Prompt,
		HistoryFile:         cfg.HistoryFile,
		AutoComplete:        createCompleter(),
		InterruptPrompt:     "^C",
		EOFPrompt:           "exit",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, errors.ReplInitError(err)
	}

	return &replShell{
		cfg:      cfg,
		log:      log,
		reporter: reporter,
		rl:       rl,
		f:        f,
		format:   cfg.TokenFormat,
	}, nil
}

// run reads lines until EOF or :quit, scanning each one as its own
// chunk named "repl"
func (sh *replShell) run() {
	defer sh.rl.Close()

	// Handle Ctrl+C gracefully
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		for range sigCh {
			fmt.Println("\nInterrupted. Use ':quit' or ':exit' to leave the session.")
		}
	}()

	sh.log.Info("Interactive session started",
		slog.String("session_id", uuid.New().String()),
		slog.String("version", Version),
	)

	fmt.Println("Welcome to the lax interactive scanner")
	fmt.Println("Type a line of lax source to scan it, ':help' for commands")
	fmt.Println()

	for {
		line, err := sh.rl.Readline()
		if err != nil { // io.EOF, readline.ErrInterrupt
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ":") {
			if quit := sh.processMeta(line); quit {
				break
			}
			continue
		}

		sh.scanLine(line)
	}
}

// scanLine scans one line of input. Each line gets a fresh diagnostic
// session so one bad line never poisons the next.
func (sh *replShell) scanLine(line string) {
	sess := diag.NewSession(sh.reporter, "repl")
	tokens := scanner.New(sess, []byte(line)).ScanTokens()

	if sh.f.debug {
		fmt.Fprint(os.Stderr, spew.Sdump(tokens))
	}

	if err := writeTokens(os.Stdout, tokens, sh.format); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

// processMeta handles ':' commands. Returns true when the session
// should end.
func (sh *replShell) processMeta(line string) bool {
	parts := strings.Fields(line)

	switch parts[0] {
	case ":help":
		sh.showHelp()

	case ":format":
		if len(parts) != 2 {
			fmt.Printf("Current format: %s (use ':format text' or ':format json')\n", sh.format)
			return false
		}
		switch parts[1] {
		case config.FormatText, config.FormatJSON:
			sh.format = parts[1]
			fmt.Printf("Token format set to %s\n", sh.format)
		default:
			fmt.Fprintf(os.Stderr, "Unknown format '%s' (valid: text, json)\n", parts[1])
		}

	case ":version":
		printVersion()

	case ":quit", ":exit":
		return true

	default:
		if suggestion := closestMeta(parts[0]); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Unknown command '%s'. Did you mean '%s'?\n", parts[0], suggestion)
		} else {
			fmt.Fprintf(os.Stderr, "Unknown command '%s'. Type ':help' for available commands\n", parts[0])
		}
	}

	return false
}

// closestMeta returns the best fuzzy match among the meta-commands, or
// "" when nothing matches
func closestMeta(input string) string {
	best := ""
	bestScore := -1
	for _, cmd := range metaCommands {
		score := fuzzy.RankMatchNormalizedFold(input, cmd)
		if score < 0 {
			continue
		}
		if bestScore < 0 || score < bestScore {
			best = cmd
			bestScore = score
		}
	}
	return best
}

func (sh *replShell) showHelp() {
	fmt.Println("Available commands:")
	fmt.Println()
	fmt.Println("  :help              Show this help message")
	fmt.Println("  :format [text|json] Show or set the token output format")
	fmt.Println("  :version           Show version information")
	fmt.Println("  :quit, :exit       Leave the session")
	fmt.Println()
	fmt.Println("Any other input is scanned as one line of lax source.")
	fmt.Println()
}

// Tab completion
func createCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem(":help"),
		readline.PcItem(":format",
			readline.PcItem("text"),
			readline.PcItem("json"),
		),
		readline.PcItem(":version"),
		readline.PcItem(":quit"),
		readline.PcItem(":exit"),
	)
}

// Filter input runes (allow standard characters)
func filterInput(r rune) (rune, bool) {
	switch r {
	case readline.CharCtrlZ: // Disable Ctrl+Z
		return r, false
	}
	return r, true
}

// runInteractive starts the interactive shell
func runInteractive(cfg *config.Config, log *logger.Logger, reporter diag.Reporter, f *flags) int {
	shell, err := newReplShell(cfg, log, reporter, f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitOperationError
	}

	shell.run()
	return ExitSuccess
}
