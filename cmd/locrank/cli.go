package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/locrank"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Config *Config
	Source locrank.DocumentSource
	Runs   locrank.RunService
}

func (d *Dependencies) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return d.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Scan   ScanCmd   `cmd:"" help:"Rank element locators on a web page"`
	Runs   RunsCmd   `cmd:"" help:"List archived runs"`
	Show   ShowCmd   `cmd:"" help:"Print an archived run"`
	Delete DeleteCmd `cmd:"" help:"Delete an archived run"`
}

// ScanCmd is the "scan" subcommand. Unset flags fall back to the config
// file, then to built-in defaults.
type ScanCmd struct {
	URL       string        `arg:"" optional:"" help:"Page URL (default https://www.daraz.pk/)"`
	Tags      []string      `short:"t" name:"tag" sep:"none" help:"Element type or selector to scan (repeatable)"`
	Timeout   time.Duration `help:"HTTP request timeout"`
	Retries   int           `help:"Retry a failed fetch with exponential backoff"`
	UserAgent string        `name:"user-agent" help:"User-Agent header"`
	ChromeTLS bool          `name:"chrome-tls" help:"Present a Chrome TLS fingerprint"`
	Save      bool          `short:"s" help:"Archive the run"`
	Config    string        `short:"c" type:"path" env:"LOCRANK_CONFIG" help:"YAML config file"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	URL   string `help:"Only show runs for this URL"`
	Limit int    `short:"n" default:"20" help:"Maximum number of runs"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Run ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Run ID"`
	Force bool   `help:"Confirm deletion"`
}
