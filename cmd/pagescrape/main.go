package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagescrape"
	"github.com/fwojciec/pagescrape/fs"
	"github.com/fwojciec/pagescrape/goquery"
	"github.com/fwojciec/pagescrape/htmltomarkdown"
	pshttp "github.com/fwojciec/pagescrape/http"
	"github.com/fwojciec/pagescrape/scrape"
	psslog "github.com/fwojciec/pagescrape/slog"
)

// ErrMissingURL is returned when the URL argument is absent.
var ErrMissingURL error = pagescrape.Errorf(pagescrape.EINVALID, "missing URL argument")

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, FormatError(err))
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Handle no arguments: usage goes to stderr, nothing is fetched.
	if len(args) == 0 {
		return usage(stderr)
	}
	if len(args) == 1 && args[0] == "help" {
		args = []string{"--help"}
	}

	// Help anywhere on the command line wins over everything else.
	helped := false
	cli := &CLI{}
	parser, err := newParser(cli, stdout, stderr, func(int) { helped = true })
	if err != nil {
		return err
	}
	_, err = parser.Parse(args)
	if helped {
		return nil
	}
	if err != nil {
		return pagescrape.Errorf(pagescrape.EINVALID, "%v", err)
	}

	if cli.URL == "" {
		return usage(stderr)
	}

	cfg, err := cli.Config()
	if err != nil {
		return err
	}

	level := slog.LevelError
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire dependencies
	var parserOpts []goquery.Option
	if cfg.FeatureFormat == pagescrape.FeatureFormatMarkdown {
		parserOpts = append(parserOpts, goquery.WithConverter(htmltomarkdown.NewConverter()))
	}
	pageParser, err := goquery.NewParser(cfg.TitleSelector, cfg.FeatureSelector, parserOpts...)
	if err != nil {
		return err
	}

	sink := fs.NewSink(cfg.Dir)
	extractor := &scrape.Extractor{
		Fetcher: psslog.NewLoggingFetcher(pshttp.NewFetcherFromConfig(cfg), logger),
		Parser:  pageParser,
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Service: &scrape.Service{
			Extractor: psslog.NewLoggingExtractor(extractor, logger),
			Sink:      psslog.NewLoggingSink(sink, logger),
		},
		OutputPath: sink.Path(),
	}

	cmd := &ScrapeCmd{URL: cli.URL}
	return cmd.Run(deps)
}

func newParser(cli *CLI, stdout, stderr io.Writer, exit func(int)) (*kong.Kong, error) {
	parser, err := kong.New(cli,
		kong.Name("pagescrape"),
		kong.Description("Extract the title and feature list from a single web page"),
		kong.Writers(stdout, stderr),
		kong.Exit(exit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create parser: %w", err)
	}
	return parser, nil
}

// usage prints help to w and returns ErrMissingURL.
func usage(w io.Writer) error {
	parser, err := newParser(&CLI{}, w, w, func(int) {})
	if err != nil {
		return err
	}
	_, _ = parser.Parse([]string{"--help"})
	return ErrMissingURL
}

// FormatError renders err as the one-line diagnostic printed before exiting.
// Application errors are prefixed with their kind.
func FormatError(err error) string {
	var e *pagescrape.Error
	if errors.As(err, &e) {
		return fmt.Sprintf("error: %s: %s", pagescrape.ErrorKind(err), e.Message)
	}
	return fmt.Sprintf("error: %v", err)
}
