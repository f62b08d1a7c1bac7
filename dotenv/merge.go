package dotenv

import (
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"github.com/tsintro/tsintro/log"
)

// ClientPrefix marks variables that are exposed to browser-side code.
const ClientPrefix = "NEXT_PUBLIC_"

// FileVars pairs a source file path with the variables parsed from it.
type FileVars struct {
	Path string
	Vars []EnvVar
}

// MergedEnvVar is the combined record for one variable name across every
// processed file. It is never mutated after [Merge] returns.
type MergedEnvVar struct {
	Name               string
	ObservedValues     []string // distinct raw values, first-observed order
	ResolvedHint       *TypeHint
	PresentInFileCount int
	TotalFileCount     int
	HintFile           string // provenance of ResolvedHint
	HintLine           int
}

// IsClientExposed reports whether the variable is readable by browser-side
// code, i.e. its name carries the NEXT_PUBLIC_ prefix.
func (m *MergedEnvVar) IsClientExposed() bool {
	return strings.HasPrefix(m.Name, ClientPrefix)
}

// Merge folds per-file variable lists, in the order supplied, into one
// schema keyed by variable name (case-sensitive). Distinct raw values
// accumulate in first-observed order. The first explicit hint for a name
// wins; a later conflicting hint is discarded with a warning. The result is
// sorted by name (byte order) for deterministic output.
func Merge(files []FileVars) []MergedEnvVar {
	byName := map[string]*MergedEnvVar{}

	var names []string

	for _, file := range files {
		inFile := map[string]bool{}

		for _, v := range file.Vars {
			m, ok := byName[v.Name]
			if !ok {
				m = &MergedEnvVar{Name: v.Name}
				byName[v.Name] = m

				names = append(names, v.Name)
			}

			if !slices.Contains(m.ObservedValues, v.RawValue) {
				m.ObservedValues = append(m.ObservedValues, v.RawValue)
			}

			if !inFile[v.Name] {
				inFile[v.Name] = true
				m.PresentInFileCount++
			}

			switch {
			case v.Hint == nil:

			case m.ResolvedHint == nil:
				m.ResolvedHint = v.Hint
				m.HintFile = v.SourceFile
				m.HintLine = v.SourceLine

			case v.Hint.Equal(m.ResolvedHint):
				// A re-declaration of the same hint is not a conflict.

			default:
				log.Warn("conflicting type hints; keeping the first",
					slog.String("name", v.Name),
					slog.String("kept", m.ResolvedHint.TypeScript()),
					slog.String("keptFrom", m.HintFile),
					slog.String("discarded", v.Hint.TypeScript()),
					slog.String("discardedFrom", v.SourceFile),
					slog.Int("discardedLine", v.SourceLine),
				)
			}
		}
	}

	slices.Sort(names)

	merged := make([]MergedEnvVar, len(names))
	for i, name := range names {
		m := byName[name]
		m.TotalFileCount = len(files)
		merged[i] = *m
	}

	return merged
}

// decimalNumber matches values that parse fully as a decimal number, the
// trigger for the numeric coercion heuristic.
var decimalNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// TypeScriptType resolves the variable's TypeScript type: the hint verbatim,
// an inferred enum when multiple distinct values were observed, a number for
// a single fully numeric value, or plain string.
func (m *MergedEnvVar) TypeScriptType() string {
	switch {
	case m.ResolvedHint != nil:
		return m.ResolvedHint.TypeScript()

	case len(m.ObservedValues) > 1:
		quoted := make([]string, len(m.ObservedValues))
		for i, v := range m.ObservedValues {
			quoted[i] = "'" + v + "'"
		}

		return strings.Join(quoted, " | ")

	case len(m.ObservedValues) == 1 && decimalNumber.MatchString(m.ObservedValues[0]):
		return "number"

	default:
		return "string"
	}
}

// ZodSchema resolves the variable's zod schema expression using the same
// priority order as [MergedEnvVar.TypeScriptType].
func (m *MergedEnvVar) ZodSchema() string {
	switch {
	case m.ResolvedHint != nil:
		return m.ResolvedHint.Zod()

	case len(m.ObservedValues) > 1:
		return zodEnum(m.ObservedValues)

	case len(m.ObservedValues) == 1 && decimalNumber.MatchString(m.ObservedValues[0]):
		return "z.coerce.number()"

	default:
		return "z.string()"
	}
}
