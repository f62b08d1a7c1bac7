package tstype

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Synthesize converts a value tree into the minimal TypeScript type
// expression accepting exactly that value. Scalars become literal types,
// sequences become positional tuples (never widened to arrays), and mappings
// become object types in source key order. Every [Value] has a defined
// synthesis; there is no error case.
func Synthesize(v Value) string {
	switch v.Kind {
	case KindBool:
		return strconv.FormatBool(v.Bool)

	case KindInt, KindFloat:
		return v.Text

	case KindString:
		return strconv.Quote(v.Text)

	case KindSequence:
		elems := make([]string, len(v.Items))
		for i, item := range v.Items {
			elems[i] = Synthesize(item)
		}

		return "[" + strings.Join(elems, ", ") + "]"

	case KindMapping:
		members := make([]string, len(v.Pairs))
		for i, pair := range v.Pairs {
			members[i] = quoteKey(pair.Key) + ": " + Synthesize(pair.Value)
		}

		return "{ " + strings.Join(members, "; ") + " }"

	default: // KindNull
		return "null"
	}
}

// IsIdentifier reports whether s matches the TypeScript identifier grammar
// [A-Za-z_$][A-Za-z0-9_$]*. Keys matching it are emitted unquoted; all other
// keys are JSON-quoted.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_', c == '$':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}

	return true
}

func quoteKey(key string) string {
	if IsIdentifier(key) {
		return key
	}

	return strconv.Quote(key)
}

// TypeName converts a source file stem into a PascalCase type or namespace
// name. The delimiters '.', '-', and '_' are all treated as word boundaries,
// so "test.multiple" and "test-multiple" both become "TestMultiple".
func TypeName(stem string) string {
	words := strings.FieldsFunc(stem, func(r rune) bool {
		return r == '.' || r == '-' || r == '_'
	})

	var b strings.Builder
	for _, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(w[size:])
	}

	return b.String()
}
