// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// The package offers configurable log level, output format, timestamp
// layout, and caller information, applied with functional options either at
// logger creation time ([Make]) or by reconfiguring the package-level
// default logger ([Config]).
//
// Two output formats are supported, [FormatJSON] (the default) and
// [FormatText]. When pretty printing is enabled with [WithPretty], records
// are instead rendered as colorized key=value lines for terminals.
//
// Each logging level has a context-aware and a context-unaware variant; the
// context-unaware functions call their counterparts with the context
// returned by [DefaultContextProvider].
package log
