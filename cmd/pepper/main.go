package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	nethttp "net/http"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/kevinshome/pepper"
	"github.com/kevinshome/pepper/goquery"
	"github.com/kevinshome/pepper/html"
	"github.com/kevinshome/pepper/htmltomarkdown"
	pepperhttp "github.com/kevinshome/pepper/http"
	pepperslog "github.com/kevinshome/pepper/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		ReportError(os.Stderr, err)
		os.Exit(1)
	}
}

// ErrNoCommand is returned after help was printed for a missing command.
// ReportError does not print it.
var ErrNoCommand = &pepper.Error{Code: pepper.EINVALID, Message: "no command specified"}

// ReportError writes err to w as "pepper: <message>".
func ReportError(w io.Writer, err error) {
	if errors.Is(err, ErrNoCommand) {
		return
	}
	fmt.Fprintf(w, "pepper: %s\n", pepper.ErrorMessage(err))
}

// Main represents the program.
type Main struct {
	// Host serving PEP pages. Set before calling Run().
	BaseURL string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		BaseURL: pepper.BaseURL,
	}
}

const description = "pepper, version " + pepper.Version + "\n" +
	"Get information about any PEP (Python Enhancement Proposal).\n" +
	"Run 'pepper help' to print this message."

// Run executes the CLI with the given arguments.
// Results are written to stdout; help and logs go to stderr.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pepper"),
		kong.Description(description),
		kong.Writers(stderr, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	printHelp := func() {
		_, _ = parser.Parse([]string{"--help"})
	}

	if len(args) == 0 {
		printHelp()
		return ErrNoCommand
	}

	name, positional := splitCommand(args)
	if name == "" {
		printHelp()
		if wantsHelp(args) {
			return nil
		}
		return ErrNoCommand
	}

	required, ok := arity[name]
	if !ok {
		return pepper.Errorf(pepper.EINVALID, "No such command (%s)...", name)
	}
	if positional < required {
		return pepper.Errorf(pepper.EINVALID, "Not enough arguments (expected %d, got %d).", required, positional)
	}
	if name == "help" {
		printHelp()
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return pepper.Errorf(pepper.EINVALID, "%s", err.Error())
	}

	logger := newLogger(stderr, cli.Verbose)
	fetcher := pepperslog.NewLoggingFetcher(pepperhttp.NewFetcher(pepperhttp.WithTimeout(cli.Timeout)), logger)
	defer fetcher.Close()

	feed := pepperslog.NewLoggingFeedService(
		pepperhttp.NewFeedService(&nethttp.Client{Timeout: cli.Timeout}),
		logger,
	)

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		BaseURL:   m.BaseURL,
		Fetcher:   fetcher,
		Headers:   pepperslog.NewLoggingHeaderExtractor(html.NewHeaderExtractor(), logger),
		Index:     pepperslog.NewLoggingIndexExtractor(html.NewIndexExtractor(), logger),
		Abstracts: goquery.NewAbstractExtractor(),
		Converter: htmltomarkdown.NewConverter(m.BaseURL),
		Feed:      feed,
	}

	return kongCtx.Run(deps)
}

// newLogger returns a text logger on w when verbose, and a silent one otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// wantsHelp reports whether args contain a help flag.
func wantsHelp(args []string) bool {
	for _, a := range args {
		if a == "-h" || a == "--help" {
			return true
		}
	}
	return false
}

// splitCommand returns the command name and the number of positional
// arguments that follow it. Flags and their values are skipped.
func splitCommand(args []string) (name string, positional int) {
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			if name == "" && i+1 < len(args) {
				return args[i+1], len(args) - i - 2
			}
			return name, positional + len(args) - i - 1
		case strings.HasPrefix(a, "-") && len(a) > 1:
			if valueFlags[a] {
				i++
			}
		case name == "":
			name = a
		default:
			positional++
		}
	}
	return name, positional
}
