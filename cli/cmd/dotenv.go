package cmd

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tsintro/tsintro/dotenv"
	"github.com/tsintro/tsintro/log"
	"github.com/tsintro/tsintro/project"
)

// Names of the aggregated dotenv artifacts.
const (
	EnvDeclFile   = "env.d.ts"
	ZodModuleFile = "env.parsed.ts"
)

// Dotenv merges variables from .env-style sources into a single ambient
// ProcessEnv declaration and, optionally, a zod validation module.
type Dotenv struct {
	outputConfig `embed:""`

	Zod      bool   `default:"false" help:"Also emit a zod schema runtime module."`
	Install  bool   `default:"false" help:"Install zod with the project's package manager if missing."`
	TSConfig string `help:"Register the $env path alias in this TypeScript config file (requires --zod)." placeholder:"FILE" type:"existingfile"`

	Sources []string `arg:"" help:"Dotenv source file(s)." name:"source" type:"existingfile"`
}

// Run executes the dotenv command.
func (d *Dotenv) Run(ctx context.Context) error {
	if d.Zod && d.Install {
		if err := project.EnsureZod(ctx, "."); err != nil {
			return ErrInstall.Wrap(err)
		}
	}

	switch {
	case d.TSConfig == "":

	case !d.Zod:
		// The alias points at the zod module; without it there is nothing
		// to resolve.
		log.WarnContext(ctx, "ignoring --tsconfig without --zod",
			slog.String("path", d.TSConfig))

	default:
		target := filepath.ToSlash(filepath.Join(d.OutputDir, ZodModuleFile))
		if !filepath.IsAbs(d.OutputDir) {
			target = "./" + target
		}

		if err := project.AddEnvAlias(d.TSConfig, target); err != nil {
			return ErrTSConfig.Wrap(err).
				With(slog.String("path", d.TSConfig))
		}
	}

	return d.run(ctx, d.Sources, d.generate)
}

// generate reads every source, merges their variables, and writes the
// aggregated artifacts. An unreadable source is fatal for that file only;
// the remaining files still produce declarations, and the read failure is
// reported after the artifacts are written so the run exits non-zero.
func (d *Dotenv) generate(ctx context.Context) error {
	var (
		files   []dotenv.FileVars
		readErr error
	)

	for _, source := range d.Sources {
		src, err := os.ReadFile(source)
		if err != nil {
			wrapped := ErrReadSource.Wrap(err).
				With(slog.String("path", source))

			log.ErrorContext(ctx, "skipping source", slog.Any("error", wrapped))

			if readErr == nil {
				readErr = wrapped
			}

			continue
		}

		files = append(files, dotenv.FileVars{
			Path: source,
			Vars: dotenv.ParseSource(source, string(src)),
		})
	}

	if len(files) == 0 {
		return readErr
	}

	merged := dotenv.Merge(files)

	err := d.write(ctx, EnvDeclFile, []byte(dotenv.ProcessEnvDecl(merged)))
	if err != nil {
		return err
	}

	if d.Zod {
		err = d.write(ctx, ZodModuleFile, []byte(dotenv.ZodModule(merged)))
		if err != nil {
			return err
		}
	}

	return readErr
}
