package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jsimmons/lax/pkg/config"
	"github.com/jsimmons/lax/pkg/diag"
	"github.com/jsimmons/lax/pkg/logger"
)

var (
	// Version information (set by ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Exit codes
const (
	ExitSuccess        = 0
	ExitOperationError = 1
	ExitUsageError     = 2
)

type flags struct {
	configPath string
	logLevel   string
	format     string
	debug      bool
	version    bool
}

func main() {
	f := parseFlags()

	if f.version {
		printVersion()
		os.Exit(ExitSuccess)
	}

	cfg, err := loadConfig(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitOperationError)
	}

	log := logger.New("lax", &logger.Config{
		Level: logger.ParseLevel(cfg.LogLevel),
	})

	reporter := newReporter(cfg, log)

	switch flag.NArg() {
	case 0:
		os.Exit(runInteractive(cfg, log, reporter, f))
	case 1:
		os.Exit(runFile(flag.Arg(0), cfg, log, reporter, f))
	default:
		fmt.Fprintf(os.Stderr, "Error: at most one script may be given\n\n")
		showUsage()
		os.Exit(ExitUsageError)
	}
}

func parseFlags() *flags {
	f := &flags{}

	flag.StringVar(&f.configPath, "config", "",
		"Path to configuration file")
	flag.StringVar(&f.logLevel, "log-level", "",
		"Log level: debug, info, warn, error (overrides config file)")
	flag.StringVar(&f.format, "format", "",
		"Token output format: text, json (overrides config file)")
	flag.BoolVar(&f.debug, "debug", false,
		"Dump the scanned token stream to stderr")
	flag.BoolVar(&f.version, "version", false,
		"Show version information")

	flag.Usage = showUsage
	flag.Parse()

	return f
}

// loadConfig merges the config file (or defaults) with flag overrides
func loadConfig(f *flags) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath, nil)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	if f.format != "" {
		cfg.TokenFormat = f.format
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newReporter installs the configured diagnostic sink. The scanner's
// output is identical either way; only where diagnostics land changes.
func newReporter(cfg *config.Config, log *logger.Logger) diag.Reporter {
	if cfg.Diagnostics == config.DiagnosticsLog {
		return diag.NewSlogReporter(log.WithField("subsystem", "diagnostics"))
	}
	return diag.NewConsoleReporter(nil)
}

func showUsage() {
	fmt.Fprintf(os.Stderr, `Usage: lax [options] [script]

Scans a lax script and prints its token stream. With no script, lax
starts an interactive session that scans one line at a time.

Options:
  -config <path>     Configuration file path
  -log-level <lvl>   Log level: debug, info, warn, error (overrides config file)
  -format <fmt>      Token output format: text, json (overrides config file)
  -debug             Dump the scanned token stream to stderr
  -version           Show version information

Examples:
  lax script.lax
  lax -format json script.lax
  lax

`)
}

func printVersion() {
	fmt.Printf("lax scanner\n")
	fmt.Printf("  Version:    %s\n", Version)
	fmt.Printf("  Commit:     %s\n", Commit)
	fmt.Printf("  Build Date: %s\n", BuildDate)
}
