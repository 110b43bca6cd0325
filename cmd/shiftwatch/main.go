package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/k1-c/shiftwatch"
	"github.com/k1-c/shiftwatch/batch"
	"github.com/k1-c/shiftwatch/goquery"
	swhttp "github.com/k1-c/shiftwatch/http"
	"github.com/k1-c/shiftwatch/ical"
	swslog "github.com/k1-c/shiftwatch/slog"
	"github.com/k1-c/shiftwatch/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Configuration file read for flag defaults. Missing files are ignored.
	ConfigPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	EntityService      shiftwatch.EntityService
	BatchService       shiftwatch.BatchService
	ObservationService shiftwatch.ObservationService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:     defaultDBPath(),
		ConfigPath: defaultConfigPath(),
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
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("shiftwatch"),
		kong.Description("Keep a row store of schedule pages in sync with the shifts they announce"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Configuration(kong.JSON, m.ConfigPath),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'shiftwatch --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	loc, err := time.LoadLocation(cli.TZ)
	if err != nil {
		return fmt.Errorf("invalid time zone %q: %w", cli.TZ, err)
	}
	deps.Location = loc

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SHIFTWATCH_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.EntityService = sqlite.NewEntityService(m.DB)
	m.BatchService = sqlite.NewBatchService(m.DB)
	m.ObservationService = sqlite.NewObservationService(m.DB)
	deps.DB = m.DB
	deps.Entities = m.EntityService
	deps.Batches = m.BatchService
	deps.Observations = m.ObservationService

	extractor := goquery.NewExtractor(
		goquery.WithContainerSelector(cli.Container),
		goquery.WithEntrySelector(cli.Entry),
	)
	var fetcher shiftwatch.Fetcher = swhttp.NewFetcher(extractor,
		swhttp.WithTimeout(cli.Timeout),
		swhttp.WithUserAgent(cli.UserAgent),
	)

	// Per-fetch and per-write logging only in verbose mode
	entities := deps.Entities
	if cli.Verbose {
		fetcher = swslog.NewLoggingFetcher(fetcher, logger)
		entities = swslog.NewLoggingEntityService(entities, logger)
	}
	deps.Fetcher = fetcher
	deps.Discoverer = swhttp.NewDiscoverer(&http.Client{Timeout: cli.Timeout}, cli.UserAgent)

	deps.Runner = &batch.Runner{
		Entities:     entities,
		Observations: deps.Observations,
		Fetcher:      fetcher,
		Limiter:      batch.NewDomainLimiter(cli.RPS),
		Concurrency:  cli.Concurrency,
		StartRow:     cli.StartRow,
		RetryDelays:  batch.RetryDelays(cli.Retries),
		Location:     loc,
		Logger:       logger,
	}

	deps.Exporter = &ical.Exporter{
		Entities: deps.Entities,
		Location: loc,
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("SHIFTWATCH_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "shiftwatch.db"
	}
	dir := filepath.Join(home, ".shiftwatch")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "shiftwatch.db")
}

func defaultConfigPath() string {
	if path := os.Getenv("SHIFTWATCH_CONFIG"); path != "" {
		return path
	}
	return "~/.shiftwatch/config.json"
}
