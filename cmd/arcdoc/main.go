package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/alecthomas/kong"

	"github.com/fwojciec/arcdoc"
	"github.com/fwojciec/arcdoc/bloom"
	"github.com/fwojciec/arcdoc/crawl"
	"github.com/fwojciec/arcdoc/fs"
	"github.com/fwojciec/arcdoc/goquery"
	"github.com/fwojciec/arcdoc/htmltomarkdown"
	archttp "github.com/fwojciec/arcdoc/http"
	"github.com/fwojciec/arcdoc/process"
	arcslog "github.com/fwojciec/arcdoc/slog"
	"github.com/fwojciec/arcdoc/sqlite"
	"github.com/fwojciec/arcdoc/trafilatura"
	"github.com/fwojciec/arcdoc/yaml"
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
	// Archive database path. Set before calling Run().
	DBPath string

	// SQLite database backing the run archive.
	DB *sqlite.DB
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
		kong.Name("arcdoc"),
		kong.Description("Breadth-first documentation site crawler and post-processor."),
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
		return fmt.Errorf("no command specified. Run 'arcdoc --help' to see available commands")
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

	deps.Logger = newLogger(stderr, cli.Crawl.Verbose)

	// Wire command-specific dependencies based on command
	switch cmd {
	case "crawl":
		if err := m.wireCrawl(cli, deps, stderr); err != nil {
			return err
		}
		defer m.Close()
	case "process":
		if err := wireProcess(cli, deps); err != nil {
			return err
		}
	case "runs":
		if cli.Runs.DB != "" {
			m.DBPath = cli.Runs.DB
		}
		if err := m.openDB(stderr); err != nil {
			return err
		}
		defer m.Close()
		deps.Runs = sqlite.NewRunService(m.DB)
	}

	return kongCtx.Run(deps)
}

// wireCrawl builds the crawl pipeline from the profile and flags.
func (m *Main) wireCrawl(cli *CLI, deps *Dependencies, stderr io.Writer) error {
	profile, err := loadProfile(cli.Crawl.Profile)
	if err != nil {
		return err
	}
	if cli.Crawl.Out != "" {
		profile.OutputDir = cli.Crawl.Out
	}
	if cli.Crawl.MaxPages > 0 {
		profile.MaxPages = cli.Crawl.MaxPages
	}
	if cli.Crawl.Delay != nil {
		profile.Delay = time.Duration(*cli.Crawl.Delay * float64(time.Second))
	}
	if cli.Crawl.Selector != "" {
		profile.ContentSelector = cli.Crawl.Selector
	}
	if err := profile.Validate(); err != nil {
		return err
	}

	scope, err := profile.Scope()
	if err != nil {
		return err
	}

	if cli.Crawl.DB != "" {
		m.DBPath = cli.Crawl.DB
	}
	if err := m.openDB(stderr); err != nil {
		return err
	}

	var extractor arcdoc.Extractor
	if cli.Crawl.Article {
		extractor = trafilatura.NewExtractor()
	} else {
		extractor = goquery.NewExtractor(profile.ContentSelector)
	}

	store := fs.NewStore(profile.OutputDir)
	store.Logger = deps.Logger

	crawler := &crawl.Crawler{
		Scope:       scope,
		Fetcher:     arcslog.NewLoggingFetcher(archttp.NewFetcher(), deps.Logger),
		Extractor:   extractor,
		Links:       goquery.NewExtractor(profile.ContentSelector),
		Store:       store,
		Checkpoints: fs.NewCheckpointWriter(profile.OutputDir),
		Limiter:     crawl.NewLimiter(profile.Delay),
		Logger:      deps.Logger,
		MaxPages:    profile.MaxPages,
		Discovered:  bloom.NewDiscoveryFilter(),
		Runs:        sqlite.NewRunService(m.DB),
	}
	if cli.Crawl.Mirror {
		crawler.Converter = htmltomarkdown.NewConverter()
		crawler.Mirror = fs.NewMirrorWriter(profile.OutputDir)
	}

	deps.Profile = profile
	deps.Crawler = crawler
	deps.Sitemaps = arcslog.NewLoggingSitemapService(archttp.NewSitemapService(nil), deps.Logger)
	deps.Index = fs.NewIndexWriter(profile.OutputDir)
	deps.Runs = crawler.Runs
	return nil
}

// wireProcess builds the post-processing pipeline from the profile and
// flags.
func wireProcess(cli *CLI, deps *Dependencies) error {
	profile, err := loadProfile(cli.Process.Profile)
	if err != nil {
		return err
	}

	docs := cli.Process.Docs
	if docs == "" {
		docs = profile.OutputDir
	}
	out := cli.Process.Out
	if out == "" {
		out = docs + "_processed"
	}

	store := fs.NewStore(docs)
	store.Logger = deps.Logger

	deps.Processor = &process.Processor{
		Store:             store,
		OutputDir:         out,
		SiteTitle:         profile.Name,
		Services:          profile.Services,
		FlowchartLimit:    cli.Process.GraphLimit,
		SkipReport:        !cli.Process.Report,
		SkipKnowledgeBase: !cli.Process.KB,
		Logger:            deps.Logger,
	}
	deps.DocsDir = docs
	deps.OutDir = out
	return nil
}

func (m *Main) openDB(stderr io.Writer) error {
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintln(stderr, "Hint: set ARCDOC_DB to use a different database path")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	return nil
}

func loadProfile(path string) (*arcdoc.SiteProfile, error) {
	if path == "" {
		return arcdoc.DefaultProfile(), nil
	}
	return yaml.LoadProfile(path)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func defaultDBPath() string {
	if path := os.Getenv("ARCDOC_DB"); path != "" {
		return path
	}
	dir := filepath.Join(xdg.DataHome, "arcdoc")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "arcdoc.db")
}
