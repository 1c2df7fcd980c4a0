// p2quantile estimates quantiles of numeric data files, one value per line,
// in a single pass and constant memory.
//
// Every file is tracked twice: by one estimator per quantile and by a single
// estimator tracking all of them, so their accuracy can be compared.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/axiomhq/p2/internal/config"
	"github.com/axiomhq/p2/internal/logging"
	"github.com/axiomhq/p2/internal/report"
	"github.com/axiomhq/p2/internal/source"
	"github.com/axiomhq/p2/internal/tracker"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

func main() {
	cfgPath := flag.String("config", "", "config file path (default ./p2quantile.yaml if present)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-config file] [file ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logging.Init(level, cfg.Log.JSON)
	logging.Debug("config loaded", "format", cfg.Format, "exact", cfg.Exact)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, flag.Args(), os.Stdin, os.Stdout); err != nil {
		logging.Error("p2quantile failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, paths []string, stdin io.Reader, stdout *os.File) error {
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	stdinUses := 0
	for _, p := range paths {
		if p == "-" {
			stdinUses++
		}
	}
	if stdinUses > 1 {
		return fmt.Errorf("stdin (-) can only be read once, got it %d times", stdinUses)
	}
	logging.Info("processing inputs", "inputs", len(paths), "quantiles", cfg.Quantiles)

	summaries := make([]tracker.Summary, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			sum, err := process(ctx, cfg, path, stdin)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			summaries[i] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return report.Write(stdout, outputFormat(cfg.Format, stdout), summaries)
}

func process(ctx context.Context, cfg *config.Config, path string, stdin io.Reader) (tracker.Summary, error) {
	log := logging.Component("source").With("path", path)

	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return tracker.Summary{}, err
		}
		defer f.Close()
		r = f
	}

	tr, err := tracker.New(cfg.Quantiles, cfg.Exact)
	if err != nil {
		return tracker.Summary{}, err
	}
	st, err := source.Read(ctx, r, log, tr.Observe)
	if err != nil {
		return tracker.Summary{}, err
	}
	log.Info("input processed", "lines", st.Lines, "values", st.Values, "skipped", st.Skipped)

	return tr.Summary(path, st.Skipped)
}

// outputFormat resolves auto to a table on terminals and plain text
// otherwise.
func outputFormat(format string, out *os.File) string {
	if format != "auto" {
		return format
	}
	if term.IsTerminal(int(out.Fd())) {
		return report.Table
	}
	return report.Text
}
