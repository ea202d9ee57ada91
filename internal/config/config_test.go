package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("expected missing file to be ignored, got %v", err)
	}
	if cfg.Game.Song != nil || cfg.Lane.Width != nil || cfg.Judge.LockMs != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLoadConfigSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[game]
song = "Moonlight Sonata"
mute = true
log-level = "debug"

[lane]
width = 800.0
target-offset = 120.0

[judge]
lock-ms = 250
late-hit-freezes = false
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Game.Song == nil || *cfg.Game.Song != "Moonlight Sonata" {
		t.Fatalf("unexpected song: %v", cfg.Game.Song)
	}
	if cfg.Game.Mute == nil || !*cfg.Game.Mute {
		t.Fatalf("expected mute")
	}
	if cfg.Game.Wordlist != nil {
		t.Fatalf("expected unset wordlist to stay nil")
	}
	if cfg.Lane.Width == nil || *cfg.Lane.Width != 800 || cfg.Lane.Height != nil {
		t.Fatalf("unexpected lane: %+v", cfg.Lane)
	}
	if cfg.Judge.LockMs == nil || *cfg.Judge.LockMs != 250 {
		t.Fatalf("unexpected lock: %v", cfg.Judge.LockMs)
	}
	if cfg.Judge.LateHitFreezes == nil || *cfg.Judge.LateHitFreezes {
		t.Fatalf("expected late-hit-freezes=false")
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[game]\nsogn = \"x\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected unknown key error")
	}
}

func TestLoadConfigInvalidToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[game\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestXDGPaths(t *testing.T) {
	cfgHome := t.TempDir()
	stateHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", cfgHome)
	t.Setenv("XDG_STATE_HOME", stateHome)

	if got, want := DefaultConfigPath(), filepath.Join(cfgHome, "typefall", "config.toml"); got != want {
		t.Fatalf("config path %q, want %q", got, want)
	}
	if got, want := DefaultSongDir(), filepath.Join(cfgHome, "typefall", "songs"); got != want {
		t.Fatalf("song dir %q, want %q", got, want)
	}
	if got, want := DefaultLogPath(), filepath.Join(stateHome, "typefall", "typefall.log"); got != want {
		t.Fatalf("log path %q, want %q", got, want)
	}
}

func TestWordListPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	cases := map[string]string{
		"":               "",
		"en":             filepath.Join("/cfg", "typefall", "wordlists", "en.txt"),
		"words.txt":      "words.txt",
		"/tmp/words":     "/tmp/words",
		"lists/en-short": "lists/en-short",
	}
	for in, want := range cases {
		if got := WordListPath(in); got != want {
			t.Fatalf("WordListPath(%q) = %q, want %q", in, got, want)
		}
	}
}
