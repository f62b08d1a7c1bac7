// Package cmd implements the tsintro subcommands.
//
// [Yaml] turns each YAML source into a declaration file of exact literal
// types, and [Dotenv] merges .env-style sources into an ambient ProcessEnv
// declaration with an optional zod runtime module. Both share the output,
// formatting, and watch plumbing in this package.
package cmd
