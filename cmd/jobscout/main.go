package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/jobscout"
	jshttp "github.com/fwojciec/jobscout/http"
	jsslog "github.com/fwojciec/jobscout/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps retrieval failures to a distinct exit status so callers
// can tell a flaky upstream from bad usage.
func exitCode(err error) int {
	if jobscout.ErrorCode(err) == jobscout.EUNAVAILABLE {
		return 2
	}
	return 1
}

// Main represents the program.
type Main struct {
	// Fetcher used by commands. Tests inject a mock; when nil, Run wires
	// the HTTP fetcher with the fixed header set and timeout.
	Fetcher jobscout.Fetcher

	// Logger for the decorated collaborators. When nil, Run builds one
	// writing to stderr.
	Logger *slog.Logger
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := m.Logger
	if logger == nil {
		level := slog.LevelWarn
		if os.Getenv("JOBSCOUT_VERBOSE") != "" {
			level = slog.LevelInfo
		}
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	}

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = jsslog.NewLoggingFetcher(jshttp.NewFetcher(), logger)
	}
	defer fetcher.Close()

	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Fetcher: fetcher,
		Logger:  logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("jobscout"),
		kong.Description("Scrape job listings into a filtered, deduplicated, sorted CSV file."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'jobscout --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	return kongCtx.Run(deps)
}
