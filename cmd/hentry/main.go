package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/hentry"
	"github.com/fwojciec/hentry/batch"
	"github.com/fwojciec/hentry/fs"
	"github.com/fwojciec/hentry/goquery"
	"github.com/fwojciec/hentry/htmltomarkdown"
	hentryhttp "github.com/fwojciec/hentry/http"
	"github.com/fwojciec/hentry/rod"
	hentryslog "github.com/fwojciec/hentry/slog"
	"github.com/fwojciec/hentry/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the entry service. Opened only by commands
	// that read or write saved entries.
	DB *sqlite.DB

	// Entry service for end-to-end testing.
	EntryService hentry.EntryService
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
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("hentry"),
		kong.Description("Extract hentry records from HTML pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'hentry --help' to see available commands")
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
	cmd = strings.Fields(kongCtx.Command())[0]

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if cmd != "parse" || cli.Parse.Save {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set HENTRY_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.EntryService = sqlite.NewEntryService(m.DB)
		deps.Entries = m.EntryService
	}

	if cmd == "parse" {
		if err := m.wireParse(deps, &cli.Parse); err != nil {
			return err
		}
		defer deps.Fetcher.Close()
	}

	return kongCtx.Run(deps)
}

// wireParse builds the fetch and parse pipeline for the parse command.
func (m *Main) wireParse(deps *Dependencies, c *ParseCmd) error {
	parser := goquery.NewParser(goquery.WithConverter(htmltomarkdown.NewConverter()))
	deps.Parser = hentryslog.NewLoggingParser(parser, deps.Logger)

	var fetcher hentry.Fetcher
	if c.Render && hasURL(c.Sources) {
		f, err := rod.NewFetcher(
			rod.WithFetchTimeout(c.Timeout),
			rod.WithUserAgent(c.UserAgent),
		)
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed for --render")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = f
	} else {
		fetcher = hentryhttp.NewFetcher(
			hentryhttp.WithTimeout(c.Timeout),
			hentryhttp.WithUserAgent(c.UserAgent),
		)
	}
	deps.Fetcher = hentryslog.NewLoggingFetcher(fetcher, deps.Logger)
	deps.RateLimiter = batch.NewDomainLimiter(c.Rate)

	if c.Out != "" {
		deps.Writer = fs.NewWriter(c.Out)
	}
	return nil
}

func hasURL(sources []string) bool {
	for _, s := range sources {
		if isURL(s) {
			return true
		}
	}
	return false
}

func defaultDBPath() string {
	if path := os.Getenv("HENTRY_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "hentry.db"
	}
	dir := filepath.Join(home, ".hentry")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "hentry.db")
}
