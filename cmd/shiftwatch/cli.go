package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/alecthomas/kong"
	"github.com/k1-c/shiftwatch"
	"github.com/k1-c/shiftwatch/batch"
	"github.com/k1-c/shiftwatch/ical"
	"github.com/k1-c/shiftwatch/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Location *time.Location

	// Now and After are the clock. Nil means the real clock.
	Now   func() time.Time
	After func(d time.Duration) <-chan time.Time

	DB           *sqlite.DB
	Entities     shiftwatch.EntityService
	Batches      shiftwatch.BatchService
	Observations shiftwatch.ObservationService
	Fetcher      shiftwatch.Fetcher
	Discoverer   shiftwatch.Discoverer
	Runner       *batch.Runner
	Exporter     *ical.Exporter
}

func (d *Dependencies) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

func (d *Dependencies) after(dur time.Duration) <-chan time.Time {
	if d.After != nil {
		return d.After(dur)
	}
	return time.After(dur)
}

func (d *Dependencies) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func (d *Dependencies) today() time.Time {
	loc := d.Location
	if loc == nil {
		loc = time.UTC
	}
	return d.now().In(loc)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config kong.ConfigFlag `help:"JSON file with default flag values"`

	TZ          string        `name:"tz" default:"Asia/Tokyo" env:"SHIFTWATCH_TZ" help:"Time zone that decides today"`
	StartRow    int           `default:"1" env:"SHIFTWATCH_START_ROW" help:"First row to process"`
	Concurrency int           `short:"c" default:"1" env:"SHIFTWATCH_CONCURRENCY" help:"Concurrent fetch limit"`
	RPS         float64       `name:"rps" default:"1" env:"SHIFTWATCH_RPS" help:"Requests per second per host (0 disables pacing)"`
	Retries     int           `default:"1" env:"SHIFTWATCH_RETRIES" help:"Retries for pages that fail unexpectedly"`
	Timeout     time.Duration `default:"10s" env:"SHIFTWATCH_TIMEOUT" help:"HTTP request timeout"`
	UserAgent   string        `default:"shiftwatch/1.0" env:"SHIFTWATCH_USER_AGENT" help:"User-Agent header for page requests"`
	Container   string        `default:"ul#girl_sukkin" env:"SHIFTWATCH_CONTAINER" help:"CSS selector of the schedule container"`
	Entry       string        `default:"dl" env:"SHIFTWATCH_ENTRY" help:"CSS selector of a calendar entry inside the container"`
	Verbose     bool          `short:"v" help:"Log every fetch and write"`

	Run      RunCmd      `cmd:"" help:"Reconcile every row once"`
	Schedule ScheduleCmd `cmd:"" help:"Reconcile on a cron schedule until interrupted"`
	Check    CheckCmd    `cmd:"" help:"Fetch one page and show what would be written"`
	Add      AddCmd      `cmd:"" help:"Add a row"`
	Import   ImportCmd   `cmd:"" help:"Add rows for schedule pages listed in a site's sitemap"`
	List     ListCmd     `cmd:"" help:"List rows with their statuses"`
	Delete   DeleteCmd   `cmd:"" help:"Delete a row and its history"`
	History  HistoryCmd  `cmd:"" help:"Show observed schedules for a row"`
	Batches  BatchesCmd  `cmd:"" help:"Show recent passes"`
	Export   ExportCmd   `cmd:"" help:"Export known shifts as an iCalendar feed"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct{}

// ScheduleCmd is the "schedule" subcommand.
type ScheduleCmd struct {
	Cron string `default:"0 * * * *" env:"SHIFTWATCH_CRON" help:"Cron expression (minute hour day-of-month month day-of-week)"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	URL string `arg:"" help:"Schedule page URL"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	URL  string `arg:"" optional:"" help:"Schedule page URL (rows without one are skipped)"`
	Name string `short:"n" help:"Display name"`
	Row  int    `short:"r" help:"Row number (next free row if omitted)"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Site    string `arg:"" help:"Site URL whose sitemap lists schedule pages"`
	Include string `default:"/girlid-[0-9]+/?\\z" help:"Regular expression page URLs must match"`
	Exclude string `help:"Regular expression page URLs must not match"`
	DryRun  bool   `help:"Print URLs without adding rows"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Row   int  `arg:"" help:"Row number"`
	Force bool `help:"Confirm deletion"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Row   int `arg:"" help:"Row number"`
	Limit int `short:"l" default:"10" help:"Number of observations to show"`
}

// BatchesCmd is the "batches" subcommand.
type BatchesCmd struct {
	Limit int `short:"l" default:"10" help:"Number of passes to show"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Output string `short:"o" default:"-" help:"Output file ('-' for stdout)"`
}
