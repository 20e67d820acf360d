// Command htmlchop splits a single HTML document into per-section and
// per-subsection files, rewriting stylesheet and image references so each
// emitted file renders from its new location.
//
// Usage:
//
//	htmlchop <input-file> <output-directory> [<asset-root>]
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/htmlchop"
	"github.com/fwojciec/htmlchop/fs"
	"github.com/fwojciec/htmlchop/goquery"
	chopslog "github.com/fwojciec/htmlchop/slog"
	"github.com/fwojciec/htmlchop/split"
)

func main() {
	m := NewMain()

	if err := m.Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments. It returns an error for
// argument problems and unrecoverable load failures; recoverable problems
// (missing assets, failed writes, no sections) are reported as warnings
// and leave the exit code at zero.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("htmlchop"),
		kong.Description("Split an HTML document into per-section and per-subsection files."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if _, err := parser.Parse(args); err != nil {
		fmt.Fprintln(stdout, "usage: htmlchop <input-file> <output-directory> [<asset-root>]")
		return err
	}

	cfg, err := loadConfig(cli)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", htmlchop.ErrorMessage(err))
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	writer := fs.NewWriter(cli.Output)
	var fragments htmlchop.FragmentWriter = writer
	var recorder *fs.RecordingWriter
	if cfg.Manifest {
		recorder = fs.NewRecordingWriter(fragments)
		fragments = recorder
	}
	fragments = chopslog.NewLoggingFragmentWriter(fragments, logger)

	splitter := &split.Splitter{
		Loader:    goquery.NewLoader(),
		Segmenter: chopslog.NewLoggingSegmenter(goquery.NewSegmenter(), logger),
		Rewriter:  goquery.NewRewriter(),
		Writer:    fragments,
		Assets:    writer,
		Logger:    logger,
		Config:    cfg,
	}

	res, err := splitter.Run(ctx, cli.Input, cli.Output, cli.AssetRoot)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", htmlchop.ErrorMessage(err))
		return err
	}

	if recorder != nil && res.FilesWritten > 0 {
		if err := writer.WriteManifest(recorder.Entries()); err != nil {
			fmt.Fprintf(stderr, "error: failed to write manifest: %s\n", err)
		}
	}

	for _, w := range res.Warnings {
		fmt.Fprintf(stderr, "warning: %s: %s\n", w.Code, w.Message)
	}

	fmt.Fprintf(stdout, "Split %s: %d sections, %d subsections, %d files written",
		cli.Input, res.Sections, res.Subsections, res.FilesWritten)
	if len(res.Warnings) > 0 {
		fmt.Fprintf(stdout, ", %d warnings", len(res.Warnings))
	}
	fmt.Fprintln(stdout)

	return nil
}
