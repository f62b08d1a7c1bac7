// Package tstype synthesizes exact TypeScript type expressions from parsed
// YAML documents.
//
// A YAML source is parsed into one [Value] tree per document. Each tree is a
// closed tagged variant over the admissible YAML shapes (null, bool, int,
// float, string, sequence, mapping) that preserves two properties the emitted
// types depend on:
//
//   - numeric scalars retain their original source text, so 3.14159 becomes
//     the literal type 3.14159 rather than a rounded float
//   - mapping keys and sequence elements keep their source order, which
//     carries through to the emitted object and tuple types
//
// [Synthesize] converts a tree into a type expression, and [Generate]
// assembles the per-document expressions of one source file into a declared
// namespace with Document0..DocumentN exports and an All tuple.
package tstype
