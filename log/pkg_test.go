package log

import (
	"bytes"
	"strings"
	"testing"
)

// TestPackageLevelLogging tests the default logger and Config.
func TestPackageLevelLogging(t *testing.T) {
	original := defaultLog
	defer func() { defaultLog = original }()

	var buf bytes.Buffer

	defaultLog = Make(&buf,
		WithLevel(LevelDebug), WithFormat(FormatJSON), WithPretty(false),
	)

	Debug("debug message")
	Info("info message")

	out := buf.String()
	for _, want := range []string{"debug message", "info message"} {
		if !strings.Contains(out, want) {
			t.Errorf("package-level output missing %q:\n%s", want, out)
		}
	}
}

// TestConfigReconfigures tests that Config rewraps the default logger.
func TestConfigReconfigures(t *testing.T) {
	original := defaultLog
	defer func() { defaultLog = original }()

	var buf bytes.Buffer

	defaultLog = Make(&buf, WithFormat(FormatJSON), WithPretty(false))

	Config(WithLevel(LevelError))
	Info("suppressed")

	if buf.Len() != 0 {
		t.Errorf("info emitted after raising level: %s", buf.Bytes())
	}

	Error("emitted")

	if !strings.Contains(buf.String(), "emitted") {
		t.Error("error message lost after Config")
	}
}
