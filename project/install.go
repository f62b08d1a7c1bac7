package project

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/tsintro/tsintro/log"
)

// EnsureZod installs the zod dependency with the project's package manager
// unless package.json in dir already declares it.
func EnsureZod(ctx context.Context, dir string) error {
	raw, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		return fmt.Errorf("read package.json: %w", err)
	}

	var pkg struct {
		Dependencies map[string]json.RawMessage `json:"dependencies"`
	}

	if err := json.Unmarshal(raw, &pkg); err != nil {
		return fmt.Errorf("parse package.json: %w", err)
	}

	if _, ok := pkg.Dependencies["zod"]; ok {
		return nil
	}

	pm, ok := FromProject(dir)
	if !ok {
		globalPM, err := FromGlobal()
		if err != nil {
			return err
		}

		pm = globalPM
	}

	log.InfoContext(ctx, "installing zod", slog.String("pm", pm.String()))

	args := pm.addArgs("zod")

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = dir

	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("install zod with %s: %w: %s", pm, err, out)
	}

	return nil
}
