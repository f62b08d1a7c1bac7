package dotenv

import (
	"strings"
	"testing"
)

// TestProcessEnvDecl tests the ambient declaration: sorted members, optional
// server vars, required client vars.
func TestProcessEnvDecl(t *testing.T) {
	merged := Merge([]FileVars{
		{Path: ".env", Vars: ParseSource(".env",
			"ZULU=1\nNEXT_PUBLIC_API_URL=https://api.example.com\nALPHA=a\n",
		)},
	})

	decl := ProcessEnvDecl(merged)

	for _, want := range []string{
		"declare namespace NodeJS {",
		"interface ProcessEnv {",
		"ALPHA?: string",
		"NEXT_PUBLIC_API_URL: string",
		"ZULU?: string",
	} {
		if !strings.Contains(decl, want) {
			t.Errorf("ProcessEnvDecl() missing %q\noutput:\n%s", want, decl)
		}
	}

	if strings.Contains(decl, "NEXT_PUBLIC_API_URL?") {
		t.Error("client-exposed variable declared optional, want required")
	}

	// Members appear in sorted order.
	alpha := strings.Index(decl, "ALPHA")
	public := strings.Index(decl, "NEXT_PUBLIC_API_URL")
	zulu := strings.Index(decl, "ZULU")

	if !(alpha < public && public < zulu) {
		t.Errorf("members out of order: ALPHA@%d NEXT_PUBLIC@%d ZULU@%d",
			alpha, public, zulu)
	}
}

// TestZodModuleSchemas tests the client/server split and the schema
// expressions.
func TestZodModuleSchemas(t *testing.T) {
	merged := Merge([]FileVars{
		{Path: ".env", Vars: ParseSource(".env",
			"DATABASE_URL=postgres://localhost\nNEXT_PUBLIC_FLAG=on\nPORT=42\n",
		)},
	})

	out := ZodModule(merged)

	for _, want := range []string{
		`import { z } from "zod";`,
		"const clientEnvSchemas = {",
		"NEXT_PUBLIC_FLAG: z.string(),",
		"const serverEnvSchemas = {",
		"...clientEnvSchemas,",
		"DATABASE_URL: z.string(),",
		"PORT: z.coerce.number(),",
		"const processEnv = {",
		"DATABASE_URL: process.env.DATABASE_URL,",
		"NEXT_PUBLIC_FLAG: process.env.NEXT_PUBLIC_FLAG,",
		"PORT: process.env.PORT,",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("ZodModule() missing %q", want)
		}
	}

	// Client vars live only in the client map; the server map reaches them
	// through the spread.
	client := out[strings.Index(out, "clientEnvSchemas = {"):strings.Index(out, "serverEnvSchemas")]
	if strings.Contains(client, "DATABASE_URL") {
		t.Error("server variable leaked into clientEnvSchemas")
	}

	server := out[strings.Index(out, "serverEnvSchemas = {"):strings.Index(out, "processEnv")]
	if strings.Contains(server, "NEXT_PUBLIC_FLAG:") {
		t.Error("client variable duplicated in serverEnvSchemas")
	}
}

// TestZodModuleProvenanceComment tests that a resolved hint carries its
// source location into the schema map.
func TestZodModuleProvenanceComment(t *testing.T) {
	merged := Merge([]FileVars{
		{Path: "config/.env", Vars: ParseSource("config/.env",
			"# @type 'on' | 'off'\nFLAG=on\n",
		)},
	})

	out := ZodModule(merged)

	want := `FLAG: z.enum(['on', 'off']), /* from "config/.env" on line 1 */`
	if !strings.Contains(out, want) {
		t.Errorf("ZodModule() missing %q\noutput:\n%s", want, out)
	}
}

// TestZodModuleRuntime tests that the fixed runtime template survives
// emission intact.
func TestZodModuleRuntime(t *testing.T) {
	out := ZodModule(nil)

	for _, want := range []string{
		"export class EnvValidationError extends Error",
		"new Proxy(",
		"cache.has(prop)",
		`prop.startsWith("NEXT_PUBLIC_")`,
		"export const clientEnv",
		"export const serverEnv",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("ZodModule() runtime missing %q", want)
		}
	}

	if strings.Contains(out, "MAIN IMPLEMENTATION BELOW") {
		t.Error("template marker leaked into emitted module")
	}
}

// TestTwoFileScenario tests the documented two-file merge snapshot: a value
// observed twice becomes an enum, a single numeric value becomes a numeric
// coercion.
func TestTwoFileScenario(t *testing.T) {
	fileA := "KEY_Value=4\nNAME=val\n"
	fileB := "NAME=value\n"

	merged := Merge([]FileVars{
		{Path: ".env", Vars: ParseSource(".env", fileA)},
		{Path: ".env.production", Vars: ParseSource(".env.production", fileB)},
	})

	if len(merged) != 2 {
		t.Fatalf("Merge() returned %d vars, want 2", len(merged))
	}

	// Sorted: KEY_Value before NAME.
	if merged[0].Name != "KEY_Value" || merged[1].Name != "NAME" {
		t.Fatalf("names = [%s, %s]", merged[0].Name, merged[1].Name)
	}

	if got := merged[0].ZodSchema(); got != "z.coerce.number()" {
		t.Errorf("KEY_Value schema = %q, want numeric coercion", got)
	}

	if got := merged[1].ZodSchema(); got != "z.enum(['val', 'value'])" {
		t.Errorf("NAME schema = %q, want observed-value enum", got)
	}

	decl := ProcessEnvDecl(merged)
	for _, want := range []string{"KEY_Value?: string", "NAME?: string"} {
		if !strings.Contains(decl, want) {
			t.Errorf("ProcessEnvDecl() missing %q", want)
		}
	}
}
