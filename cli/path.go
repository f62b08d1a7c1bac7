package cli

import (
	"os"
	"path/filepath"

	"github.com/tsintro/tsintro/pkg"
)

// cacheDir returns the per-user cache directory for tsintro, used as the
// default location for profiling output. It falls back to the system temp
// directory when no user cache directory is defined.
func cacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}

	return filepath.Join(base, pkg.Name)
}
