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
	"github.com/fwojciec/wikiintro"
	wikihttp "github.com/fwojciec/wikiintro/http"
	"github.com/fwojciec/wikiintro/markup"
	wikislog "github.com/fwojciec/wikiintro/slog"
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
	// Configuration files consulted for flag values. Set before calling Run().
	ConfigPaths []string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPaths: []string{defaultConfigPath()},
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wikiintro"),
		kong.Description("Print the introduction of an encyclopedia article"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{"base_url": wikiintro.DefaultBaseURL},
		kong.Configuration(YAML, m.ConfigPaths...),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire dependencies
	var opener wikiintro.PageOpener = wikihttp.NewFetcher(wikihttp.WithTimeout(cli.Timeout))
	var extractor wikiintro.Extractor = markup.NewExtractor()
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		opener = wikislog.NewLoggingFetcher(opener, logger)
		extractor = wikislog.NewLoggingExtractor(extractor, logger)
	}

	deps := &Dependencies{
		Ctx:       ctx,
		Stdin:     stdin,
		Stdout:    stdout,
		Stderr:    stderr,
		Opener:    opener,
		Extractor: extractor,
	}

	cmd := &IntroCmd{
		Topic:   cli.Topic,
		BaseURL: cli.BaseURL,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	BaseURL string        `name:"base-url" default:"${base_url}" env:"WIKIINTRO_BASE_URL" help:"Address prefix the topic is appended to"`
	Timeout time.Duration `short:"t" default:"10s" env:"WIKIINTRO_TIMEOUT" help:"Fetch timeout (0 disables)"`
	Verbose bool          `short:"v" env:"WIKIINTRO_VERBOSE" help:"Log fetch and extraction details to stderr"`
	Topic   []string      `arg:"" optional:"" help:"Article topic; read from stdin when omitted"`
}

func defaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "wikiintro", "config.yaml")
}
