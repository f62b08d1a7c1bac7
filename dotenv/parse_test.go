package dotenv

import "testing"

// TestParseSourceAssignments tests the per-line assignment grammar.
func TestParseSourceAssignments(t *testing.T) {
	tests := []struct {
		name      string
		source    string
		wantName  string
		wantValue string
	}{
		{name: "bare value", source: "HOST=localhost\n", wantName: "HOST", wantValue: "localhost"},
		{name: "spaces around equals", source: "HOST = localhost\n", wantName: "HOST", wantValue: "localhost"},
		{name: "double quoted", source: `GREETING="hello world"` + "\n", wantName: "GREETING", wantValue: "hello world"},
		{name: "single quoted", source: "GREETING='hello world'\n", wantName: "GREETING", wantValue: "hello world"},
		{name: "quoted keeps pound", source: `TAG="a#b"` + "\n", wantName: "TAG", wantValue: "a#b"},
		{name: "trailing comment stripped", source: "PORT=3000 # dev port\n", wantName: "PORT", wantValue: "3000"},
		{name: "escaped pound kept", source: `COLOR=\#fff` + "\n", wantName: "COLOR", wantValue: `\#fff`},
		{name: "trailing comma dropped", source: "LIST=one,\n", wantName: "LIST", wantValue: "one"},
		{name: "empty value", source: "EMPTY=\n", wantName: "EMPTY", wantValue: ""},
		{name: "case preserved", source: "KEY_Value=4\n", wantName: "KEY_Value", wantValue: "4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vars := ParseSource(".env", tt.source)
			if len(vars) != 1 {
				t.Fatalf("ParseSource() returned %d vars, want 1", len(vars))
			}

			if vars[0].Name != tt.wantName || vars[0].RawValue != tt.wantValue {
				t.Errorf("ParseSource() = %s=%q, want %s=%q",
					vars[0].Name, vars[0].RawValue, tt.wantName, tt.wantValue)
			}
		})
	}
}

// TestParseSourceSkipsStrayLines tests that dotenv parsing is tolerant of
// content that is neither blank, comment, nor assignment.
func TestParseSourceSkipsStrayLines(t *testing.T) {
	source := `just some prose
lower-case=skipped
123=skipped
GOOD=1
export OTHER=skipped
`

	vars := ParseSource(".env", source)
	if len(vars) != 1 || vars[0].Name != "GOOD" {
		t.Fatalf("ParseSource() = %+v, want only GOOD", vars)
	}

	if vars[0].SourceLine != 4 {
		t.Errorf("SourceLine = %d, want 4", vars[0].SourceLine)
	}
}

// TestParseSourceHintAttachment tests that a @type comment annotates exactly
// the next assignment line.
func TestParseSourceHintAttachment(t *testing.T) {
	source := `# @type 'development' | 'production'
NODE_ENV=development
PLAIN=value
`

	vars := ParseSource(".env", source)
	if len(vars) != 2 {
		t.Fatalf("ParseSource() returned %d vars, want 2", len(vars))
	}

	if vars[0].Hint == nil {
		t.Fatal("NODE_ENV hint = nil, want enum hint")
	}

	if got := vars[0].Hint.TypeScript(); got != "'development' | 'production'" {
		t.Errorf("hint = %q, want enum of development/production", got)
	}

	// Provenance points at the hint comment, not the assignment.
	if vars[0].SourceLine != 1 {
		t.Errorf("hinted SourceLine = %d, want 1", vars[0].SourceLine)
	}

	if vars[1].Hint != nil {
		t.Errorf("PLAIN hint = %v, want nil", vars[1].Hint)
	}
}

// TestParseSourceBlankLineResetsHint tests that a blank line between a hint
// and an assignment discards the hint.
func TestParseSourceBlankLineResetsHint(t *testing.T) {
	source := `# @type number

PORT=3000
`

	vars := ParseSource(".env", source)
	if len(vars) != 1 {
		t.Fatalf("ParseSource() returned %d vars, want 1", len(vars))
	}

	if vars[0].Hint != nil {
		t.Errorf("PORT hint = %v, want nil after blank line", vars[0].Hint)
	}
}

// TestParseSourceStrayLineDropsHint tests that a line which is neither a
// comment nor an assignment breaks hint adjacency.
func TestParseSourceStrayLineDropsHint(t *testing.T) {
	source := `# @type number
export PORT=3000
PORT=3000
`

	vars := ParseSource(".env", source)
	if len(vars) != 1 {
		t.Fatalf("ParseSource() returned %d vars, want 1", len(vars))
	}

	if vars[0].Hint != nil {
		t.Errorf("PORT hint = %v, want nil after intervening line", vars[0].Hint)
	}

	if vars[0].SourceLine != 3 {
		t.Errorf("SourceLine = %d, want the assignment line 3", vars[0].SourceLine)
	}
}

// TestParseSourceLaterHintWins tests that consecutive hint comments keep only
// the last one before the assignment.
func TestParseSourceLaterHintWins(t *testing.T) {
	source := `# @type string
# @type number
PORT=3000
`

	vars := ParseSource(".env", source)
	if len(vars) != 1 || vars[0].Hint == nil {
		t.Fatalf("ParseSource() = %+v, want one hinted var", vars)
	}

	if vars[0].Hint.Kind != HintNumber {
		t.Errorf("hint kind = %v, want HintNumber", vars[0].Hint.Kind)
	}

	if vars[0].SourceLine != 2 {
		t.Errorf("SourceLine = %d, want 2", vars[0].SourceLine)
	}
}

// TestParseSourceMalformedHint tests that a hint that fails to parse
// degrades to no hint instead of failing the file.
func TestParseSourceMalformedHint(t *testing.T) {
	source := `# @type 'unterminated
KEY=value
`

	vars := ParseSource(".env", source)
	if len(vars) != 1 {
		t.Fatalf("ParseSource() returned %d vars, want 1", len(vars))
	}

	if vars[0].Hint != nil {
		t.Errorf("hint = %v, want nil for malformed expression", vars[0].Hint)
	}

	if vars[0].SourceLine != 2 {
		t.Errorf("SourceLine = %d, want the assignment line 2", vars[0].SourceLine)
	}
}

// TestParseSourceOrdinaryComments tests that comments without the directive
// are ignored and do not disturb a pending hint.
func TestParseSourceOrdinaryComments(t *testing.T) {
	source := `# @type number
# just a remark
PORT=3000
`

	vars := ParseSource(".env", source)
	if len(vars) != 1 || vars[0].Hint == nil || vars[0].Hint.Kind != HintNumber {
		t.Fatalf("ParseSource() = %+v, want PORT with number hint", vars)
	}
}

// TestParseSourceProvenance tests file and line tracking.
func TestParseSourceProvenance(t *testing.T) {
	vars := ParseSource("config/.env.local", "\n\nA=1\nB=2\n")
	if len(vars) != 2 {
		t.Fatalf("ParseSource() returned %d vars, want 2", len(vars))
	}

	for i, want := range []int{3, 4} {
		if vars[i].SourceLine != want {
			t.Errorf("vars[%d].SourceLine = %d, want %d", i, vars[i].SourceLine, want)
		}

		if vars[i].SourceFile != "config/.env.local" {
			t.Errorf("vars[%d].SourceFile = %q", i, vars[i].SourceFile)
		}
	}
}
