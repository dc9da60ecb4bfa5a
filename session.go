package bikeshare

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/theoremus-urban-solutions/bikeshare-stats/browser"
	"github.com/theoremus-urban-solutions/bikeshare-stats/config"
	"github.com/theoremus-urban-solutions/bikeshare-stats/filters"
	"github.com/theoremus-urban-solutions/bikeshare-stats/internal/ctxlog"
	"github.com/theoremus-urban-solutions/bikeshare-stats/internal/prompt"
	"github.com/theoremus-urban-solutions/bikeshare-stats/report"
	"github.com/theoremus-urban-solutions/bikeshare-stats/trips"
)

const askRestart = "\nWould you like to restart? Enter yes or no.\n"

// Session wires the pipeline stages to one console
type Session struct {
	prompt    *prompt.Prompter
	collector *filters.Collector
	loader    *trips.Loader
	reporter  *report.Reporter
	browser   *browser.Browser
	log       *slog.Logger
}

// NewSession builds a session reading answers from in and writing prompts and
// reports to out.
func NewSession(cfg config.AppConfig, in io.Reader, out io.Writer, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	p := prompt.New(in, out)
	return &Session{
		prompt:    p,
		collector: filters.NewCollector(p),
		loader:    trips.NewLoaderFromConfig(cfg, out),
		reporter:  report.NewReporter(out, cfg.Pause()),
		browser:   browser.New(p, cfg.Browser.PageSize),
		log:       logger,
	}
}

// Run repeats the pipeline until the user declines to restart or the input
// is closed. Load failures are returned as is. Cancelling ctx interrupts a
// pending prompt and Run returns ctx.Err().
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		restart, err := s.iterate(ctx)
		if errors.Is(err, prompt.ErrClosed) {
			s.log.Debug("input closed, ending session")
			return nil
		}
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
				s.log.Debug("session interrupted")
			}
			return err
		}
		if !restart {
			return nil
		}
	}
}

func (s *Session) iterate(ctx context.Context) (bool, error) {
	log := s.log.With("session", uuid.NewString())
	ctx = ctxlog.WithLogger(ctx, log)

	sel, err := s.collector.Collect(ctx)
	if err != nil {
		return false, err
	}
	if err := sel.Validate(); err != nil {
		return false, fmt.Errorf("invalid selection %s: %w", sel, err)
	}
	log.Debug("selection collected", "city", sel.City, "month", sel.Month, "day", sel.Day)

	ds, err := s.loader.Load(ctx, sel)
	if err != nil {
		return false, err
	}
	log.Debug("dataset ready", "rows", ds.Len())

	s.reporter.PrintAll(ds)
	if err := s.browser.Browse(ctx, ds); err != nil {
		return false, err
	}
	return s.prompt.Confirm(ctx, askRestart, "yes")
}
