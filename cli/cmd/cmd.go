package cmd

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/tsintro/tsintro/log"
	"github.com/tsintro/tsintro/project"
	"github.com/tsintro/tsintro/watch"
)

// outputConfig holds the flags shared by every generating command: where
// artifacts go, whether they are formatted, and whether generation re-runs
// on source changes.
type outputConfig struct {
	OutputDir string        `default:"."   help:"Directory to write generated files into."   name:"output-dir" short:"o" type:"path"`
	Format    bool          `default:"false" help:"Pipe generated files through prettier."`
	Watch     bool          `default:"false" help:"Regenerate whenever a source file changes." short:"w"`
	Debounce  time.Duration `default:"500ms" help:"Quiet period before a watched re-run."`
}

// run executes work once, or repeatedly under the file watcher when --watch
// is set.
func (o *outputConfig) run(
	ctx context.Context,
	sources []string,
	work func(context.Context) error,
) error {
	if !o.Watch {
		return work(ctx)
	}

	return watch.Run(ctx, watch.Config{
		Paths:    sources,
		Debounce: o.Debounce,
		Work:     work,
	})
}

// write places one generated artifact in the output directory, creating the
// directory if needed. With --format the content is first piped through
// prettier; formatting failures are logged and the unformatted artifact is
// written instead, since a valid unformatted declaration beats none.
func (o *outputConfig) write(ctx context.Context, name string, content []byte) error {
	if o.Format {
		formatted, err := project.Prettify(ctx, content, name)
		if err != nil {
			log.WarnContext(ctx, "formatting failed; writing unformatted",
				slog.String("file", name),
				slog.Any("error", err),
			)
		} else {
			content = formatted
		}
	}

	if err := os.MkdirAll(o.OutputDir, 0o755); err != nil {
		return ErrWriteOutput.Wrap(err).
			With(slog.String("dir", o.OutputDir))
	}

	path := filepath.Join(o.OutputDir, name)

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return ErrWriteOutput.Wrap(err).
			With(slog.String("path", path))
	}

	log.InfoContext(ctx, "wrote artifact", slog.String("path", path))

	return nil
}

// stem returns the base name of path with its final extension removed.
func stem(path string) string {
	base := filepath.Base(path)

	return base[:len(base)-len(filepath.Ext(base))]
}
