package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/learnsearch/librarian"
	"github.com/learnsearch/librarian/crawl"
	"github.com/learnsearch/librarian/goquery"
	librarianhttp "github.com/learnsearch/librarian/http"
	librarianslog "github.com/learnsearch/librarian/slog"
	"github.com/learnsearch/librarian/sqlite"
	"github.com/learnsearch/librarian/yaml"
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

	// SQLite database backing the index store.
	DB *sqlite.DB

	// Index store, exposed for end-to-end testing.
	IndexService librarian.IndexService
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
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("librarian"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'librarian --help' to see available commands")
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

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set LIBRARIAN_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.IndexService = librarianslog.NewLoggingIndexService(sqlite.NewRecordService(m.DB), logger)
	deps.DB = m.DB
	deps.Index = m.IndexService

	if cmd == "index" {
		keywords, err := yaml.NewKeywordDB()
		if err != nil {
			return fmt.Errorf("failed to load keyword database: %w", err)
		}

		fetcher := librarianslog.NewLoggingFetcher(librarianhttp.NewFetcher(), logger)
		reducers := librarianslog.NewLoggingRegistry(goquery.NewRegistry(), goquery.NewDetector(), logger)

		rps := 1.0
		concurrency := 10
		if kongCtx.Command() == "index guide <url>" {
			rps = cli.Index.Guide.RPS
			concurrency = cli.Index.Guide.Concurrency
		}

		deps.Indexer = &crawl.Indexer{
			Fetcher:     fetcher,
			Reducers:    reducers,
			Redirects:   goquery.NewRedirects(),
			Books:       goquery.NewJupyterBookReducer(),
			Keywords:    keywords,
			Index:       m.IndexService,
			Sitemaps:    librarianhttp.NewSitemapService(nil),
			RateLimiter: crawl.NewDomainLimiter(rps),
			Concurrency: concurrency,
			Logger: func(format string, args ...any) {
				logger.Warn(fmt.Sprintf(format, args...))
			},
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("LIBRARIAN_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "librarian.db"
	}
	dir := filepath.Join(home, ".librarian")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "librarian.db")
}
