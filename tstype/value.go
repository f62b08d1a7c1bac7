package tstype

// Kind discriminates the variants of a [Value].
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindSequence
	KindMapping
)

// Value is one node of a parsed document tree.
//
// Exactly one group of fields is meaningful for each [Kind]: Bool for
// KindBool, Text for KindInt/KindFloat/KindString, Items for KindSequence,
// and Pairs for KindMapping. Numeric kinds store the verbatim source text in
// Text so the literal round-trips exactly. Items and Pairs preserve source
// order.
type Value struct {
	Kind  Kind
	Bool  bool
	Text  string
	Items []Value
	Pairs []Pair
}

// Pair is one key/value entry of a mapping. Keys are unique within a single
// mapping and appear in source order.
type Pair struct {
	Key   string
	Value Value
}

// Null returns the null value.
func Null() Value { return Value{Kind: KindNull} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Int returns an integer value carrying its verbatim source text.
func Int(text string) Value { return Value{Kind: KindInt, Text: text} }

// Float returns a float value carrying its verbatim source text.
func Float(text string) Value { return Value{Kind: KindFloat, Text: text} }

// Str returns a string value.
func Str(s string) Value { return Value{Kind: KindString, Text: s} }

// Seq returns a sequence of the given elements in order.
func Seq(items ...Value) Value { return Value{Kind: KindSequence, Items: items} }

// Map returns a mapping of the given pairs in order.
func Map(pairs ...Pair) Value { return Value{Kind: KindMapping, Pairs: pairs} }

// Document is one parsed YAML document together with its zero-based position
// within the source file. Positions are assigned before empty documents are
// filtered out, so surviving documents can have non-contiguous indices.
type Document struct {
	Index int
	Value Value
}
