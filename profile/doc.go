// Package profile provides optional runtime profiling for the tsintro
// command.
//
// Profiling integrates [github.com/pkg/profile] behind the "pprof" build
// tag. When built without the tag (the default), every operation is a no-op
// with zero runtime overhead; when built with it, the modes reported by
// [Modes] (cpu, heap, mutex, trace, and so on) can be selected on the
// command line and profiles are written to the configured directory.
package profile
