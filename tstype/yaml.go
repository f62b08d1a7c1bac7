package tstype

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// Parse splits a YAML source on "---" separators and converts each document
// into a value tree. Indices are assigned by block position before empty
// blocks (nothing but comments or whitespace) are dropped, so the returned
// slice can contain index gaps. A document-start marker at the top of the
// file and a trailing separator do not produce empty documents.
//
// Anchors are resolved within a document, aliases reuse the anchored value,
// and tags are unwrapped to their underlying value.
func Parse(src []byte) ([]Document, error) {
	var docs []Document

	for i, block := range splitDocuments(src) {
		file, err := parser.ParseBytes(block, 0)
		if err != nil {
			return nil, err
		}

		body := documentBody(file)
		if body == nil {
			continue
		}

		w := walker{anchors: map[string]Value{}}

		docs = append(docs, Document{Index: i, Value: w.value(body)})
	}

	return docs, nil
}

// splitDocuments cuts the source into raw document blocks at lines holding a
// bare "---" separator. A whitespace-only leading block (the file opens with
// a document-start marker) is removed entirely so it does not consume an
// index slot; a trailing empty block after a final separator is kept and
// skipped later like any other empty block.
func splitDocuments(src []byte) [][]byte {
	lines := strings.SplitAfter(string(src), "\n")

	blocks := [][]byte{nil}

	for _, line := range lines {
		if strings.TrimRight(line, " \t\r\n") == "---" {
			blocks = append(blocks, nil)

			continue
		}

		blocks[len(blocks)-1] = append(blocks[len(blocks)-1], line...)
	}

	if len(blocks) > 1 && len(strings.TrimSpace(string(blocks[0]))) == 0 {
		blocks = blocks[1:]
	}

	return blocks
}

// documentBody returns the first substantive document body in a parsed
// block, or nil when the block holds nothing but comments or whitespace.
func documentBody(file *ast.File) ast.Node {
	for _, doc := range file.Docs {
		if doc.Body == nil {
			continue
		}

		if _, ok := doc.Body.(*ast.CommentNode); ok {
			continue
		}

		return doc.Body
	}

	return nil
}

// Generate parses a YAML source and emits the full declaration for it: a
// namespace named after the PascalCased file stem containing one DocumentI
// export per surviving document and an All tuple listing them in order.
//
// Unparsable YAML is fatal for the file; no partial namespace is produced.
func Generate(path string, src []byte) (string, error) {
	docs, err := Parse(src)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", path, err)
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var b strings.Builder

	fmt.Fprintf(&b, "declare namespace %s {\n", TypeName(stem))

	names := make([]string, len(docs))
	for i, doc := range docs {
		names[i] = fmt.Sprintf("Document%d", doc.Index)
		fmt.Fprintf(&b, "\texport type %s = %s;\n", names[i], Synthesize(doc.Value))
	}

	fmt.Fprintf(&b, "\n\texport type All = [%s];\n}\n", strings.Join(names, ", "))

	return b.String(), nil
}

// walker converts goccy AST nodes into value trees, carrying the anchor
// table needed to resolve aliases.
type walker struct {
	anchors map[string]Value
}

func (w walker) value(node ast.Node) Value {
	switch n := node.(type) {
	case *ast.NullNode:
		return Null()

	case *ast.BoolNode:
		return Bool(n.Value)

	case *ast.IntegerNode:
		return Int(n.GetToken().Value)

	case *ast.FloatNode:
		return Float(n.GetToken().Value)

	case *ast.InfinityNode, *ast.NanNode:
		// IEEE specials have no TypeScript literal type.
		return Float("number")

	case *ast.StringNode:
		return Str(n.Value)

	case *ast.LiteralNode:
		// Block scalars (| and >) carry their text in a nested string node.
		return Str(n.Value.Value)

	case *ast.SequenceNode:
		items := make([]Value, len(n.Values))
		for i, item := range n.Values {
			items[i] = w.value(item)
		}

		return Value{Kind: KindSequence, Items: items}

	case *ast.MappingNode:
		return w.mapping(n.Values)

	case *ast.MappingValueNode:
		// A single top-level key parses as a bare mapping value.
		return w.mapping([]*ast.MappingValueNode{n})

	case *ast.TagNode:
		return w.value(n.Value)

	case *ast.AnchorNode:
		v := w.value(n.Value)
		w.anchors[n.Name.GetToken().Value] = v

		return v

	case *ast.AliasNode:
		if v, ok := w.anchors[n.Value.GetToken().Value]; ok {
			return v
		}

		return Null()

	default:
		return Null()
	}
}

func (w walker) mapping(entries []*ast.MappingValueNode) Value {
	// Explicit keys always beat merge-key ("<<") splices, regardless of
	// their position relative to the merge entry.
	explicit := map[string]bool{}

	for _, entry := range entries {
		if _, ok := entry.Key.(*ast.MergeKeyNode); !ok {
			explicit[keyString(entry.Key)] = true
		}
	}

	seen := map[string]bool{}

	var pairs []Pair

	add := func(key string, v Value) {
		if seen[key] {
			return
		}

		seen[key] = true

		pairs = append(pairs, Pair{Key: key, Value: v})
	}

	for _, entry := range entries {
		if _, ok := entry.Key.(*ast.MergeKeyNode); ok {
			if merged := w.value(entry.Value); merged.Kind == KindMapping {
				for _, p := range merged.Pairs {
					if !explicit[p.Key] {
						add(p.Key, p.Value)
					}
				}
			}

			continue
		}

		add(keyString(entry.Key), w.value(entry.Value))
	}

	return Value{Kind: KindMapping, Pairs: pairs}
}

func keyString(key ast.MapKeyNode) string {
	if s, ok := key.(*ast.StringNode); ok {
		return s.Value
	}

	return key.GetToken().Value
}
