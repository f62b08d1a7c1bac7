package project

import (
	"encoding/json"
	"fmt"
	"os"
)

// EnvAlias is the TypeScript path alias registered for the emitted runtime
// module, letting application code import it as "$env".
const EnvAlias = "$env"

// AddEnvAlias registers [EnvAlias] -> target under compilerOptions.paths in
// the tsconfig file at path, preserving everything else in the file through
// a JSON round-trip. The file must already declare compilerOptions.
func AddEnvAlias(path, target string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	var config map[string]any

	if err := json.Unmarshal(raw, &config); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	opts, ok := config["compilerOptions"].(map[string]any)
	if !ok {
		return fmt.Errorf("couldn't find compilerOptions in %s", path)
	}

	paths, ok := opts["paths"].(map[string]any)
	if !ok {
		paths = map[string]any{}
		opts["paths"] = paths
	}

	paths[EnvAlias] = []any{target}

	updated, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if err := os.WriteFile(path, append(updated, '\n'), info.Mode()); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
