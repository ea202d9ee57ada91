package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelInfo)
	l.Debugf("hidden %d", 1)
	l.Infof("shown %d", 2)
	l.Warnf("careful")
	l.Errorf("broken")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line leaked at info level: %s", out)
	}
	for _, want := range []string{"INFO: shown 2", "WARN: careful", "ERROR: broken"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %s", want, out)
		}
	}

	buf.Reset()
	l.SetLevel(LevelNone)
	l.Errorf("silent")
	if buf.Len() != 0 {
		t.Fatalf("expected no output at LevelNone, got %q", buf.String())
	}
}

func TestLevelFromString(t *testing.T) {
	cases := map[string]Level{
		"debug":  LevelDebug,
		" INFO ": LevelInfo,
		"error":  LevelError,
		"none":   LevelNone,
		"bogus":  LevelInfo,
	}
	for in, want := range cases {
		if got := LevelFromString(in); got != want {
			t.Fatalf("LevelFromString(%q) = %v, want %v", in, got, want)
		}
	}
}
