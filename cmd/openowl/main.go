package main

import (
	"context"
	"fmt"
	"io"
	stdslog "log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/ranjeethpt/openowl"
	"github.com/ranjeethpt/openowl/gemini"
	"github.com/ranjeethpt/openowl/goquery"
	"github.com/ranjeethpt/openowl/htmltomarkdown"
	owlhttp "github.com/ranjeethpt/openowl/http"
	"github.com/ranjeethpt/openowl/openai"
	"github.com/ranjeethpt/openowl/readability"
	"github.com/ranjeethpt/openowl/rod"
	owlslog "github.com/ranjeethpt/openowl/slog"
	"github.com/ranjeethpt/openowl/sqlite"
	"github.com/ranjeethpt/openowl/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
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
	VisitService   openowl.VisitService
	SettingService openowl.SettingService
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
		kong.Name("openowl"),
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
		return fmt.Errorf("no command specified. Run 'openowl --help' to see available commands")
	}
	if first := args[0]; first == "help" || first == "--help" || first == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set OPENOWL_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.VisitService = sqlite.NewVisitService(m.DB)
	m.SettingService = sqlite.NewSettingService(m.DB)
	deps.DB = m.DB
	deps.Visits = m.VisitService
	deps.Settings = m.SettingService

	var logger *stdslog.Logger
	if cli.Verbose {
		logger = stdslog.New(stdslog.NewTextHandler(stderr, nil))
	}

	deps.Dispatcher = m.newDispatcher(ctx, logger)

	// Wire command-specific dependencies based on command
	if cmd == "extract" || cmd == "watch" {
		browser := cli.Extract.Browser || cli.Watch.Browser
		fetcher, err := newFetcher(browser, stderr)
		if err != nil {
			return err
		}
		defer fetcher.Close()
		if logger != nil {
			deps.Fetcher = owlslog.NewLoggingFetcher(fetcher, logger)
		} else {
			deps.Fetcher = fetcher
		}
	}

	if cmd == "watch" && cli.Watch.Site != "" {
		var discoverer openowl.Discoverer = owlhttp.NewDiscoverer(nil)
		if logger != nil {
			discoverer = owlslog.NewLoggingDiscoverer(discoverer, logger)
		}
		deps.Discoverer = discoverer
	}

	if cmd == "ask" {
		if err := m.wireAsk(ctx, cli, deps, stderr); err != nil {
			return err
		}
	}

	return kongCtx.Run(deps)
}

// tokenizerModel is used for local Gemini token counting.
const tokenizerModel = "gemini-2.5-flash"

// newDispatcher builds the extraction registry, honoring the extract_budget
// setting and wrapping with logging when requested.
func (m *Main) newDispatcher(ctx context.Context, logger *stdslog.Logger) openowl.Dispatcher {
	var opts []goquery.RegistryOption
	if budget := m.settingValue(ctx, openowl.SettingExtractBudget); budget != "" {
		if d, err := time.ParseDuration(budget); err == nil {
			opts = append(opts, goquery.WithExtractBudget(d))
		}
	}

	var dispatcher openowl.Dispatcher = goquery.NewRegistry(opts...)
	if logger != nil {
		dispatcher = owlslog.NewLoggingDispatcher(dispatcher, logger)
	}
	return dispatcher
}

// wireAsk sets up the LLM provider, token counter and, for --page, the
// article reader pipeline.
func (m *Main) wireAsk(ctx context.Context, cli *CLI, deps *Dependencies, stderr io.Writer) error {
	provider := cli.Ask.Provider
	if provider == "" {
		provider = m.settingValue(ctx, openowl.SettingProvider)
	}
	if provider == "" {
		provider = "gemini"
	}

	model := cli.Ask.Model
	if model == "" {
		model = m.settingValue(ctx, openowl.SettingModel)
	}

	switch provider {
	case "gemini":
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		var opts []gemini.AskerOption
		if model != "" {
			opts = append(opts, gemini.WithModel(model))
		}
		deps.Asker = gemini.NewAsker(client, opts...)

		counter, err := gemini.NewTokenCounter(tokenizerModel)
		if err != nil {
			return fmt.Errorf("failed to create token counter: %w", err)
		}
		deps.Tokens = counter

	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		baseURL := m.settingValue(ctx, openowl.SettingBaseURL)
		if apiKey == "" && baseURL == "" {
			fmt.Fprintln(stderr, "OPENAI_API_KEY environment variable not set. For a local server, set the base_url setting instead.")
			return fmt.Errorf("OPENAI_API_KEY not set and no base_url configured")
		}

		var opts []openai.AskerOption
		if model != "" {
			opts = append(opts, openai.WithModel(model))
		}
		deps.Asker = openai.NewAsker(openai.NewClient(apiKey, baseURL), opts...)
		deps.Tokens = openai.NewTokenCounter()

	default:
		fmt.Fprintf(stderr, "error: unknown provider %q, expected \"gemini\" or \"openai\"\n", provider)
		return openowl.Errorf(openowl.EINVALID, "unknown provider %q", provider)
	}

	if cli.Ask.Page != "" {
		deps.Fetcher = owlhttp.NewFetcher()
		deps.Reader = m.newReader(ctx)
		deps.Converter = htmltomarkdown.NewConverter()
	}

	return nil
}

// newReader selects the article reader engine from settings.
// Defaults to readability.
func (m *Main) newReader(ctx context.Context) openowl.Reader {
	if m.settingValue(ctx, openowl.SettingReaderEngine) == "trafilatura" {
		return trafilatura.NewReader()
	}
	return readability.NewReader()
}

// newFetcher builds the page fetcher for extract/watch.
func newFetcher(browser bool, stderr io.Writer) (openowl.Fetcher, error) {
	if !browser {
		return owlhttp.NewFetcher(), nil
	}

	fetcher, err := rod.NewFetcher()
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}
	return fetcher, nil
}

// settingValue reads a setting, treating any error as unset.
func (m *Main) settingValue(ctx context.Context, key string) string {
	if m.SettingService == nil {
		return ""
	}
	setting, err := m.SettingService.GetSetting(ctx, key)
	if err != nil {
		return ""
	}
	return setting.Value
}

func defaultDBPath() string {
	if path := os.Getenv("OPENOWL_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "openowl.db"
	}
	dir := filepath.Join(home, ".openowl")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "openowl.db")
}
