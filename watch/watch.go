// Package watch re-runs a generation pipeline whenever any of its source
// files changes on disk.
//
// The watcher registers the parent directories of the given files with
// fsnotify and filters events down to the watched names, so files that are
// replaced by rename (the usual editor save strategy) keep triggering.
// Events are debounced: a burst of changes within the debounce window
// coalesces into one re-run. Runs never overlap — events arriving while a
// run is in flight are picked up afterward and schedule exactly one fresh
// run.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/tsintro/tsintro/log"
)

// DefaultDebounce is the quiet period after the last filesystem event before
// a re-run starts. It absorbs write-then-rename bursts from editors.
const DefaultDebounce = 500 * time.Millisecond

// Config holds the parameters for [Run].
type Config struct {
	// Paths are the source files whose changes trigger a re-run.
	Paths []string

	// Debounce is the quiet period after the last event before the run
	// fires. Zero or negative values fall back to [DefaultDebounce].
	Debounce time.Duration

	// Work is invoked once up front and once per coalesced change burst.
	// A failing run is logged and the watch continues.
	Work func(ctx context.Context) error
}

// Run executes cfg.Work once, then blocks watching the configured files and
// re-executing it on changes until ctx is canceled. The only error returns
// are watcher setup failures and ctx.Err() on cancellation.
func Run(ctx context.Context, cfg Config) error {
	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watched := make(map[string]bool, len(cfg.Paths))
	dirs := make(map[string]bool)

	for _, path := range cfg.Paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}

		watched[abs] = true
		dirs[filepath.Dir(abs)] = true
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			return err
		}
	}

	run := func() {
		if err := cfg.Work(ctx); err != nil {
			log.ErrorContext(ctx, "run failed", slog.Any("error", err))
		}
	}

	run()

	log.InfoContext(ctx, "watching for changes",
		slog.Int("files", len(watched)),
	)

	// The timer is created stopped; each relevant event rewinds it, so it
	// fires once per burst. Runs execute on this goroutine, which keeps them
	// strictly serialized: events delivered mid-run wait in the watcher
	// channel and start a fresh debounce window after the run returns.
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}

			abs, err := filepath.Abs(event.Name)
			if err != nil || !watched[abs] {
				continue
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}

			log.DebugContext(ctx, "source changed",
				slog.String("path", event.Name),
				slog.String("op", event.Op.String()),
			)

			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}

			timer.Reset(debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}

			log.WarnContext(ctx, "watch error", slog.Any("error", err))

		case <-timer.C:
			run()
		}
	}
}
