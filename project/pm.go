package project

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
)

// PackageManager identifies a JavaScript package manager available to the
// current project.
type PackageManager int

const (
	Pnpm PackageManager = iota
	Npm
	Yarn
)

// ErrNoPackageManager reports that neither pnpm, npm, nor yarn could be
// found on the system.
var ErrNoPackageManager = errors.New(
	"failed to find either of pnpm, npm, or yarn in the system",
)

// String returns the package manager's command name.
func (pm PackageManager) String() string {
	switch pm {
	case Pnpm:
		return "pnpm"
	case Yarn:
		return "yarn"
	default:
		return "npm"
	}
}

// ExecutorName returns the command used to execute project-local binaries
// with this package manager.
func (pm PackageManager) ExecutorName() string {
	switch pm {
	case Pnpm:
		return "pnpx"
	case Yarn:
		return "yarn"
	default:
		return "npx"
	}
}

// addArgs returns the command line that installs a dependency.
func (pm PackageManager) addArgs(dep string) []string {
	switch pm {
	case Npm:
		return []string{"npm", "i", dep}
	default:
		return []string{pm.String(), "add", dep}
	}
}

// FromProject detects the package manager of the project rooted at dir by
// its lockfile, requiring the corresponding command on PATH.
func FromProject(dir string) (PackageManager, bool) {
	lockfiles := []struct {
		name string
		pm   PackageManager
	}{
		{"pnpm-lock.yaml", Pnpm},
		{"package-lock.json", Npm},
		{"yarn.lock", Yarn},
	}

	for _, lf := range lockfiles {
		info, err := os.Stat(filepath.Join(dir, lf.name))
		if err != nil || info.IsDir() {
			continue
		}

		if _, err := exec.LookPath(lf.pm.String()); err == nil {
			return lf.pm, true
		}
	}

	return Npm, false
}

// FromGlobal returns the first of pnpm, npm, or yarn found on PATH.
func FromGlobal() (PackageManager, error) {
	for _, pm := range []PackageManager{Pnpm, Npm, Yarn} {
		if _, err := exec.LookPath(pm.String()); err == nil {
			return pm, nil
		}
	}

	return Npm, ErrNoPackageManager
}
