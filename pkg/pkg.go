// Package pkg defines module-wide metadata shared by every other package.
package pkg

import (
	_ "embed"
	"strings"
)

// Version is the semantic version of the tsintro module embedded at build
// time. It is printed by the CLI when users invoke --version.
//
//go:embed VERSION
var Version string

const (
	// Name is the canonical command and module identifier used across the
	// project. It appears in help text, log output, and default cache paths.
	Name = "tsintro"
	// Description is a short, human-readable summary of the project used in
	// help output and documentation.
	Description = "Generate TypeScript types from configuration sources"
)

// VersionString returns the embedded version with surrounding whitespace
// removed, suitable for display.
func VersionString() string { return strings.TrimSpace(Version) }
