package dotenv

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// HintKind discriminates the recognized forms of a "@type" expression.
type HintKind int

const (
	// HintString is the bare word "string".
	HintString HintKind = iota
	// HintNumber is the bare word "number".
	HintNumber
	// HintEnum is a union of single-quoted string literals: 'a' | 'b' | ...
	HintEnum
	// HintRaw is any other expression, passed through verbatim as the
	// TypeScript/zod type.
	HintRaw
)

// TypeHint is a parsed "@type" directive. Absence of a hint is represented
// by a nil *TypeHint, never by a zero value.
type TypeHint struct {
	Kind    HintKind
	Members []string // HintEnum literals, quotes stripped, source order
	Raw     string   // HintRaw expression text
}

// ErrMalformedHint reports a hint expression that looked like an enum union
// but could not be tokenized. Callers treat the variable as unhinted.
var ErrMalformedHint = errors.New("malformed type hint")

// ParseHint parses the expression following a "@type" directive.
//
// The shorthand grammar recognizes the bare words "string" and "number" and
// enum unions of single-quoted literals separated by '|' (runs of consecutive
// pipes are tolerated). Anything else is returned as a raw expression, except
// an expression that opens a quote and never closes it, which is rejected.
func ParseHint(expr string) (*TypeHint, error) {
	expr = strings.TrimSpace(expr)

	switch expr {
	case "":
		return nil, fmt.Errorf("%w: empty expression", ErrMalformedHint)
	case "string":
		return &TypeHint{Kind: HintString}, nil
	case "number":
		return &TypeHint{Kind: HintNumber}, nil
	}

	if expr[0] == '\'' {
		members, err := parseEnum(expr)
		if err != nil {
			return nil, err
		}

		return &TypeHint{Kind: HintEnum, Members: members}, nil
	}

	return &TypeHint{Kind: HintRaw, Raw: expr}, nil
}

// parseEnum tokenizes a union of single-quoted literals.
func parseEnum(expr string) ([]string, error) {
	var (
		members  []string
		pos      int
		wantLit  = true
		sawPipes bool
	)

	for pos < len(expr) {
		switch c := expr[pos]; {
		case c == ' ' || c == '\t':
			pos++

		case c == '|':
			if wantLit && !sawPipes && len(members) > 0 {
				return nil, fmt.Errorf("%w: unexpected '|' in %q", ErrMalformedHint, expr)
			}

			sawPipes = true
			wantLit = true
			pos++

		case c == '\'':
			if !wantLit {
				return nil, fmt.Errorf("%w: expected '|' before literal in %q", ErrMalformedHint, expr)
			}

			end := strings.IndexByte(expr[pos+1:], '\'')
			if end < 0 {
				return nil, fmt.Errorf("%w: unterminated literal in %q", ErrMalformedHint, expr)
			}

			members = append(members, expr[pos+1:pos+1+end])
			pos += end + 2
			wantLit = false
			sawPipes = false

		default:
			return nil, fmt.Errorf("%w: unexpected %q in %q", ErrMalformedHint, string(c), expr)
		}
	}

	if wantLit && len(members) > 0 {
		// Trailing pipes are tolerated like repeated pipes.
		return members, nil
	}

	if len(members) == 0 {
		return nil, fmt.Errorf("%w: no literals in %q", ErrMalformedHint, expr)
	}

	return members, nil
}

// Equal reports whether two hints denote the same type expression.
func (h *TypeHint) Equal(other *TypeHint) bool {
	if h == nil || other == nil {
		return h == other
	}

	return h.Kind == other.Kind && h.Raw == other.Raw &&
		slices.Equal(h.Members, other.Members)
}

// TypeScript renders the hint as a TypeScript type expression.
func (h *TypeHint) TypeScript() string {
	switch h.Kind {
	case HintString:
		return "string"
	case HintNumber:
		return "number"
	case HintEnum:
		quoted := make([]string, len(h.Members))
		for i, m := range h.Members {
			quoted[i] = "'" + m + "'"
		}

		return strings.Join(quoted, " | ")
	default:
		return h.Raw
	}
}

// Zod renders the hint as a zod schema expression.
func (h *TypeHint) Zod() string {
	switch h.Kind {
	case HintString:
		return "z.coerce.string()"
	case HintNumber:
		return "z.coerce.number()"
	case HintEnum:
		return zodEnum(h.Members)
	default:
		return h.Raw
	}
}

func zodEnum(members []string) string {
	quoted := make([]string, len(members))
	for i, m := range members {
		quoted[i] = "'" + m + "'"
	}

	return "z.enum([" + strings.Join(quoted, ", ") + "])"
}
