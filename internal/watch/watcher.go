// Package watch drives the pipeline: it polls a source until the trade table
// is available, hands each successful batch of rows to a handler, and
// coalesces bursts of refresh signals through a debounce window.
package watch

import (
	"context"
	"errors"
	"time"

	"tradelens/internal/journal"
	"tradelens/internal/logger"
	"tradelens/internal/tablescan"
)

// Handler consumes one fresh batch of rows. Each call supersedes the
// previous one; the handler recomputes everything from scratch.
type Handler func(ctx context.Context, rows []journal.Row)

type Watcher struct {
	source   Source
	poll     time.Duration
	debounce time.Duration
	handler  Handler
	refresh  chan struct{}
}

func New(source Source, poll, debounce time.Duration, handler Handler) *Watcher {
	return &Watcher{
		source:   source,
		poll:     poll,
		debounce: debounce,
		handler:  handler,
		refresh:  make(chan struct{}, 1),
	}
}

// Notify signals that the source page may have changed. Signals arriving
// inside one debounce window collapse into a single re-run.
func (w *Watcher) Notify() {
	select {
	case w.refresh <- struct{}{}:
	default:
	}
}

// Run performs the initial fetch (retrying without bound until the table
// appears) and then re-runs the pipeline on debounced refresh signals until
// the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.fetchUntilReady(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.refresh:
			if err := w.waitQuiet(ctx); err != nil {
				return err
			}
			if err := w.fetchUntilReady(ctx); err != nil {
				return err
			}
		}
	}
}

// RunOnce performs a single fetch attempt and hands the rows off.
func (w *Watcher) RunOnce(ctx context.Context) error {
	rows, err := w.source.Fetch(ctx)
	if err != nil {
		return err
	}
	w.handler(ctx, rows)
	return nil
}

// fetchUntilReady retries the source on the poll interval, with no retry
// bound, until it produces rows.
func (w *Watcher) fetchUntilReady(ctx context.Context) error {
	ticker := time.NewTicker(w.poll)
	defer ticker.Stop()

	for {
		rows, err := w.source.Fetch(ctx)
		if err == nil {
			w.handler(ctx, rows)
			return nil
		}
		if errors.Is(err, tablescan.ErrTableNotFound) {
			logger.Debug(ctx, "Trade table not present yet, will retry", "poll", w.poll.String())
		} else {
			logger.ErrorWithErr(ctx, "Fetch failed, will retry", err, "poll", w.poll.String())
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// waitQuiet blocks until no refresh signal has arrived for one debounce
// window, extending the window on every late arrival.
func (w *Watcher) waitQuiet(ctx context.Context) error {
	timer := time.NewTimer(w.debounce)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.refresh:
			if !timer.Stop() {
				<-timer.C
			}
			timer.Reset(w.debounce)
		case <-timer.C:
			return nil
		}
	}
}
