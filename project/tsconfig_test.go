package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func writeTSConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tsconfig.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func readConfig(t *testing.T, path string) map[string]any {
	t.Helper()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var config map[string]any
	if err := json.Unmarshal(raw, &config); err != nil {
		t.Fatalf("updated tsconfig is not valid JSON: %v", err)
	}

	return config
}

// TestAddEnvAlias tests registration alongside existing paths.
func TestAddEnvAlias(t *testing.T) {
	path := writeTSConfig(t, `{
  "compilerOptions": {
    "strict": true,
    "paths": {
      "@/*": ["./src/*"]
    }
  },
  "include": ["src"]
}`)

	if err := AddEnvAlias(path, "./types/env.parsed.ts"); err != nil {
		t.Fatalf("AddEnvAlias() error = %v", err)
	}

	config := readConfig(t, path)

	opts := config["compilerOptions"].(map[string]any)
	paths := opts["paths"].(map[string]any)

	env, ok := paths[EnvAlias].([]any)
	if !ok || len(env) != 1 || env[0] != "./types/env.parsed.ts" {
		t.Errorf("paths[$env] = %v, want [./types/env.parsed.ts]", paths[EnvAlias])
	}

	// Existing settings survive the round-trip.
	if _, ok := paths["@/*"]; !ok {
		t.Error("existing path alias lost")
	}

	if strict, ok := opts["strict"].(bool); !ok || !strict {
		t.Error("compilerOptions.strict lost")
	}

	if _, ok := config["include"]; !ok {
		t.Error("top-level include lost")
	}
}

// TestAddEnvAliasCreatesPaths tests that a missing paths map is created.
func TestAddEnvAliasCreatesPaths(t *testing.T) {
	path := writeTSConfig(t, `{"compilerOptions": {"strict": true}}`)

	if err := AddEnvAlias(path, "./env.parsed.ts"); err != nil {
		t.Fatalf("AddEnvAlias() error = %v", err)
	}

	config := readConfig(t, path)

	paths := config["compilerOptions"].(map[string]any)["paths"].(map[string]any)
	if _, ok := paths[EnvAlias]; !ok {
		t.Error("paths map not created")
	}
}

// TestAddEnvAliasMissingCompilerOptions tests the error path.
func TestAddEnvAliasMissingCompilerOptions(t *testing.T) {
	path := writeTSConfig(t, `{"include": ["src"]}`)

	if err := AddEnvAlias(path, "./env.parsed.ts"); err == nil {
		t.Error("AddEnvAlias() expected error without compilerOptions")
	}
}

// TestAddEnvAliasUnreadable tests missing and malformed files.
func TestAddEnvAliasUnreadable(t *testing.T) {
	if err := AddEnvAlias(filepath.Join(t.TempDir(), "absent.json"), "x"); err == nil {
		t.Error("AddEnvAlias() expected error for missing file")
	}

	path := writeTSConfig(t, "{not json")
	if err := AddEnvAlias(path, "x"); err == nil {
		t.Error("AddEnvAlias() expected error for malformed JSON")
	}
}
