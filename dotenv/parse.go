package dotenv

import (
	"log/slog"
	"strings"

	"github.com/tsintro/tsintro/log"
	"github.com/tsintro/tsintro/tstype"
)

// EnvVar is one variable assignment observed in a dotenv source.
type EnvVar struct {
	Name       string
	RawValue   string
	Hint       *TypeHint
	SourceFile string
	SourceLine int // 1-based
}

// ParseSource scans a dotenv source top to bottom and returns its variables
// in order of appearance.
//
// A "# @type <expr>" comment annotates the next assignment line; the pending
// annotation is discarded by a blank line, so a hint must immediately precede
// its variable. Lines that are neither blank, comment, nor assignment are
// skipped. A hint that fails to parse degrades to "no hint" with a warning
// rather than failing the file.
func ParseSource(path, source string) []EnvVar {
	var (
		vars        []EnvVar
		pendingExpr string
		pendingLine int
	)

	for i, line := range strings.Split(source, "\n") {
		num := i + 1

		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			pendingExpr, pendingLine = "", 0

		case strings.HasPrefix(trimmed, "#"):
			if expr, ok := hintExpr(trimmed); ok {
				pendingExpr, pendingLine = expr, num
			}

		default:
			name, raw, ok := splitAssignment(trimmed)
			if !ok {
				// A stray line between a hint and an assignment breaks the
				// adjacency the hint requires.
				pendingExpr, pendingLine = "", 0

				continue
			}

			v := EnvVar{
				Name:       name,
				RawValue:   raw,
				SourceFile: path,
				SourceLine: num,
			}

			if pendingExpr != "" {
				hint, err := ParseHint(pendingExpr)
				if err != nil {
					log.Warn("discarding malformed type hint",
						slog.String("file", path),
						slog.Int("line", pendingLine),
						slog.String("hint", pendingExpr),
						slog.Any("error", err),
					)
				} else {
					v.Hint = hint
					v.SourceLine = pendingLine
				}
			}

			vars = append(vars, v)
			pendingExpr, pendingLine = "", 0
		}
	}

	return vars
}

// hintExpr extracts the expression from a "# @type <expr>" comment line.
func hintExpr(comment string) (string, bool) {
	body := strings.TrimSpace(strings.TrimLeft(comment, "# \t"))

	const directive = "@type"

	if !strings.HasPrefix(body, directive) {
		return "", false
	}

	rest := body[len(directive):]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return "", false
	}

	expr := strings.TrimSpace(rest)

	return expr, expr != ""
}

// splitAssignment parses a "KEY = VALUE  # comment" line. The key must match
// the identifier grammar; the value may be double-quoted, single-quoted, or a
// bare run ending at an unescaped '#'. A trailing comma after the value is
// treated as if absent.
func splitAssignment(line string) (name, value string, ok bool) {
	eq := strings.IndexByte(line, '=')
	if eq < 0 {
		return "", "", false
	}

	name = strings.TrimSpace(line[:eq])
	if !tstype.IsIdentifier(name) {
		return "", "", false
	}

	rest := strings.TrimSpace(line[eq+1:])

	switch {
	case strings.HasPrefix(rest, `"`):
		if end := strings.IndexByte(rest[1:], '"'); end >= 0 {
			return name, rest[1 : end+1], true
		}

	case strings.HasPrefix(rest, "'"):
		if end := strings.IndexByte(rest[1:], '\''); end >= 0 {
			return name, rest[1 : end+1], true
		}
	}

	value = rest
	if i := unescapedPound(rest); i >= 0 {
		value = rest[:i]
	}

	value = strings.TrimRight(strings.TrimSpace(value), ",")

	return name, value, true
}

func unescapedPound(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == '#' && (i == 0 || s[i-1] != '\\') {
			return i
		}
	}

	return -1
}
