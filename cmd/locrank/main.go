package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/locrank"
	"github.com/fwojciec/locrank/goquery"
	lochttp "github.com/fwojciec/locrank/http"
	locslog "github.com/fwojciec/locrank/slog"
	"github.com/fwojciec/locrank/source"
	"github.com/fwojciec/locrank/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	// Run reports its own errors to stderr.
	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	RunService locrank.RunService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("locrank"),
		kong.Description("Rank element locators on a web page for test automation."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		fmt.Fprintln(stderr, "error: no command specified. Run 'locrank --help' to see available commands")
		return locrank.Errorf(locrank.EINVALID, "no command specified")
	}

	if args[0] == "help" {
		_, _ = parser.Parse(append([]string{"--help"}, args[1:]...))
		return nil
	}

	// Exit is a no-op, so parsing would carry on past a help flag.
	if slices.Contains(args, "--help") || slices.Contains(args, "-h") {
		_, _ = parser.Parse(args)
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if cmd != "scan" || cli.Scan.Save {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set LOCRANK_DB to use a different database path\n")
			fmt.Fprintf(stderr, "error: failed to open database at %q: %s\n", m.DBPath, err)
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.RunService = sqlite.NewRunService(m.DB)
		deps.Runs = locslog.NewLoggingRunService(m.RunService, deps.Logger)
	}

	if cmd == "scan" {
		cfg, err := cli.Scan.Resolve()
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", locrank.ErrorMessage(err))
			return err
		}
		deps.Config = cfg

		fetcher := locslog.NewLoggingFetcher(newFetcher(cfg), deps.Logger)
		defer fetcher.Close()

		src := source.NewSource(fetcher, goquery.NewParser(),
			source.WithRetryDelays(source.BackoffDelays(cfg.Retries)),
			source.WithLogger(deps.Logger),
		)
		deps.Source = locslog.NewLoggingSource(src, deps.Logger)
	}

	return kongCtx.Run(deps)
}

// newFetcher builds the HTTP fetcher described by cfg.
func newFetcher(cfg *Config) *lochttp.Fetcher {
	opts := []lochttp.Option{
		lochttp.WithTimeout(cfg.Timeout),
		lochttp.WithUserAgent(cfg.UserAgent),
	}
	if cfg.ChromeTLS {
		opts = append(opts, lochttp.WithChromeTLS())
	}
	return lochttp.NewFetcher(opts...)
}

func defaultDBPath() string {
	if path := os.Getenv("LOCRANK_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "locrank.db"
	}
	dir := filepath.Join(home, ".locrank")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "locrank.db")
}
