package main

import (
	"context"
	"io"
	"time"

	"github.com/ranjeethpt/openowl"
	"github.com/ranjeethpt/openowl/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	DB         *sqlite.DB
	Visits     openowl.VisitService
	Settings   openowl.SettingService
	Dispatcher openowl.Dispatcher
	Fetcher    openowl.Fetcher
	Discoverer openowl.Discoverer
	Asker      openowl.Asker
	Tokens     openowl.TokenCounter
	Reader     openowl.Reader
	Converter  openowl.Converter

	// RetryDelays overrides the watcher's fetch backoff. Nil means the
	// default 1s/2s/4s; tests set it to skip real waits.
	RetryDelays []time.Duration
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log fetch and extraction activity to stderr"`

	Extract ExtractCmd `cmd:"" help:"Fetch one URL and print its extraction record"`
	Watch   WatchCmd   `cmd:"" help:"Capture a set of URLs as visit history"`
	History HistoryCmd `cmd:"" help:"Inspect, export and prune visit history"`
	Ask     AskCmd     `cmd:"" help:"Ask a question about visited pages"`
	Config  ConfigCmd  `cmd:"" help:"Manage settings"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL     string `arg:"" help:"Page URL to extract"`
	Browser bool   `short:"b" help:"Render the page in headless Chrome first"`
	JSON    bool   `help:"Print the record as JSON"`
	Save    bool   `short:"s" help:"Record the extraction as a visit"`
}

// WatchCmd is the "watch" subcommand.
type WatchCmd struct {
	URLs        []string      `arg:"" optional:"" help:"Page URLs to watch"`
	Site        string        `help:"Discover page URLs from a site's sitemap"`
	Interval    time.Duration `short:"i" help:"Repeat interval; a single pass when zero"`
	RPS         float64       `default:"1" help:"Max requests per second per domain"`
	Concurrency int           `short:"c" default:"10" help:"Concurrent fetch limit"`
	Browser     bool          `short:"b" help:"Render pages in headless Chrome"`
}

// HistoryCmd groups the visit history subcommands.
type HistoryCmd struct {
	List   HistoryListCmd   `cmd:"" default:"withargs" help:"List visits"`
	Show   HistoryShowCmd   `cmd:"" help:"Show one visit in full"`
	Prune  HistoryPruneCmd  `cmd:"" help:"Delete visits older than a day"`
	Export HistoryExportCmd `cmd:"" help:"Export visits as markdown files"`
}

// HistoryListCmd is the "history list" subcommand.
type HistoryListCmd struct {
	Day    string `help:"Filter by calendar day (YYYY-MM-DD)"`
	Domain string `help:"Filter by domain"`
	URL    string `help:"Filter by exact URL"`
	Limit  int    `default:"20" help:"Max visits to list"`
	Offset int    `help:"Visits to skip"`
	Full   bool   `help:"Show full visit content"`
}

// HistoryShowCmd is the "history show" subcommand.
type HistoryShowCmd struct {
	ID string `arg:"" help:"Visit ID"`
}

// HistoryPruneCmd is the "history prune" subcommand.
type HistoryPruneCmd struct {
	Before string `required:"" help:"Delete visits before this day (YYYY-MM-DD, exclusive)"`
	Force  bool   `help:"Confirm deletion"`
}

// HistoryExportCmd is the "history export" subcommand.
type HistoryExportCmd struct {
	Dir    string `default:"." help:"Parent directory for the export"`
	Name   string `default:"history" help:"Export directory name"`
	Day    string `help:"Filter by calendar day (YYYY-MM-DD)"`
	Domain string `help:"Filter by domain"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question  string `arg:"" help:"Question to ask about visited pages"`
	Day       string `help:"Only use visits from this day (YYYY-MM-DD)"`
	Domain    string `help:"Only use visits from this domain"`
	Limit     int    `default:"50" help:"Max visits to consider"`
	MaxTokens int    `help:"Token budget for visit context"`
	Page      string `help:"Include the full article at this URL as context"`
	Provider  string `help:"LLM provider (gemini or openai), overrides the setting"`
	Model     string `help:"Model name, overrides the setting"`
}

// ConfigCmd groups the settings subcommands.
type ConfigCmd struct {
	Get   ConfigGetCmd   `cmd:"" help:"Print one setting"`
	Set   ConfigSetCmd   `cmd:"" help:"Create or replace a setting"`
	List  ConfigListCmd  `cmd:"" default:"1" help:"List all settings"`
	Unset ConfigUnsetCmd `cmd:"" help:"Remove a setting"`
}

// ConfigGetCmd is the "config get" subcommand.
type ConfigGetCmd struct {
	Key string `arg:"" help:"Setting key"`
}

// ConfigSetCmd is the "config set" subcommand.
type ConfigSetCmd struct {
	Key   string `arg:"" help:"Setting key"`
	Value string `arg:"" help:"Setting value"`
}

// ConfigListCmd is the "config list" subcommand.
type ConfigListCmd struct{}

// ConfigUnsetCmd is the "config unset" subcommand.
type ConfigUnsetCmd struct {
	Key string `arg:"" help:"Setting key"`
}
