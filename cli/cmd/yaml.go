package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/tsintro/tsintro/tstype"
)

// Yaml generates one TypeScript declaration file per YAML source, each
// containing the exact literal types of the source's documents.
type Yaml struct {
	outputConfig `embed:""`

	Sources []string `arg:"" help:"YAML source file(s)." name:"source" type:"existingfile"`
}

// Run executes the yaml command.
func (y *Yaml) Run(ctx context.Context) error {
	return y.run(ctx, y.Sources, y.generate)
}

// generate processes every source file in order. Unreadable or unparsable
// YAML is fatal for the run: partial declarations are worse than a clear
// failure here, unlike dotenv sources which aggregate.
func (y *Yaml) generate(ctx context.Context) error {
	for _, source := range y.Sources {
		src, err := os.ReadFile(source)
		if err != nil {
			return ErrReadSource.Wrap(err).
				With(slog.String("path", source))
		}

		decl, err := tstype.Generate(source, src)
		if err != nil {
			return ErrParse.Wrap(err).
				With(slog.String("path", source))
		}

		err = y.write(ctx, stem(source)+".d.ts", []byte(decl))
		if err != nil {
			return err
		}
	}

	return nil
}
