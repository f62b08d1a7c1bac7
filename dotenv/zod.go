package dotenv

import (
	_ "embed"
	"fmt"
	"strings"
)

// runtimeTemplate is the fixed runtime half of the emitted module: a
// Proxy-based lazy accessor with a single cache entry per key, a
// NEXT_PUBLIC_ redirect from the server proxy to the client proxy, and an
// error type chaining the underlying zod failure. Only the schema maps and
// the processEnv literal vary per run.
//
//go:embed module.ts
var runtimeTemplate string

const implementationMarker = "/* --- MAIN IMPLEMENTATION BELOW --- */"

// ZodModule renders the runtime validation module for the merged schema:
// client and server schema maps (the server map spreads the client map),
// the fixed runtime implementation, and a processEnv literal enumerating
// every merged variable name.
func ZodModule(vars []MergedEnvVar) string {
	importLine, impl, _ := strings.Cut(runtimeTemplate, implementationMarker)

	var client, server, lookup strings.Builder

	for _, v := range vars {
		field := fmt.Sprintf("\t%s: %s,%s\n", v.Name, v.ZodSchema(), provenance(v))

		if v.IsClientExposed() {
			client.WriteString(field)
		} else {
			server.WriteString(field)
		}

		fmt.Fprintf(&lookup, "\t%s: process.env.%s,\n", v.Name, v.Name)
	}

	var b strings.Builder

	b.WriteString(strings.TrimSpace(importLine))
	b.WriteString("\n\nconst clientEnvSchemas = {\n")
	b.WriteString(client.String())
	b.WriteString("}\n\nconst serverEnvSchemas = {\n\t...clientEnvSchemas,\n")
	b.WriteString(server.String())
	b.WriteString("}\n\nconst processEnv = {\n")
	b.WriteString(lookup.String())
	b.WriteString("}\n\n")
	b.WriteString(strings.TrimSpace(impl))
	b.WriteString("\n")

	return b.String()
}

func provenance(v MergedEnvVar) string {
	if v.ResolvedHint == nil {
		return ""
	}

	return fmt.Sprintf(` /* from %q on line %d */`, v.HintFile, v.HintLine)
}
