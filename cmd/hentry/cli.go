package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/hentry"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Fetcher     hentry.Fetcher
	Parser      hentry.Parser
	RateLimiter hentry.DomainLimiter
	Entries     hentry.EntryService
	Writer      hentry.EntryWriter

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log fetches and parses to stderr"`

	Parse  ParseCmd  `cmd:"" help:"Extract entries from URLs, HTML files or stdin"`
	List   ListCmd   `cmd:"" help:"List saved entries"`
	Show   ShowCmd   `cmd:"" help:"Print a saved entry as JSON"`
	Delete DeleteCmd `cmd:"" help:"Delete a saved entry"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	Sources     []string      `arg:"" help:"URLs, HTML file paths, or - for stdin"`
	Format      string        `short:"f" default:"text" enum:"text,html,markdown" help:"Content format (text, html, markdown)"`
	UserAgent   string        `short:"A" name:"user-agent" help:"User-Agent header for HTTP requests"`
	Timeout     time.Duration `short:"t" default:"5s" help:"Fetch timeout per URL"`
	Render      bool          `short:"r" help:"Render pages in headless Chrome before parsing"`
	Save        bool          `short:"s" help:"Save found entries to the database"`
	Out         string        `short:"o" type:"path" help:"Also write found entries as markdown files to this directory"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent fetch limit"`
	Rate        float64       `default:"1" help:"Requests per second per host (0 disables)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Author string `help:"Only entries by this author"`
	Tag    string `help:"Only entries with this tag"`
	Limit  int    `short:"n" default:"20" help:"Maximum number of entries"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Entry ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Entry ID"`
	Force bool   `help:"Confirm deletion"`
}
