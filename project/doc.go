// Package project integrates generated artifacts with the surrounding
// JavaScript project: detecting its package manager, piping output through
// prettier, installing the zod dependency, and registering a TypeScript path
// alias for the emitted runtime module.
//
// Everything here is best-effort glue around external tools; the core
// generators never depend on it.
package project
