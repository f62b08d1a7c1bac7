// Package cli wires the tsintro command line together: kong flag parsing,
// early logger configuration, optional pprof profiling, and dispatch to the
// yaml and dotenv subcommands.
package cli
