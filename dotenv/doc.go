// Package dotenv parses .env-style sources, merges variables observed across
// multiple files, and emits TypeScript declarations for them.
//
// Parsing is line oriented and deliberately tolerant: assignment lines
// produce variables, "# @type <expr>" comments annotate the assignment that
// immediately follows them, and anything else is skipped. [Merge] folds the
// per-file variables into one schema keyed by variable name, tracking every
// distinct observed value, the provenance of the resolved hint, and how many
// files define each name. The emitters render that schema as an ambient
// NodeJS.ProcessEnv declaration and, optionally, a zod validation module
// with a fixed Proxy-based runtime.
package dotenv
