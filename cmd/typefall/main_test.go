package main

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/typefall/internal/config"
)

func TestDefaultFlagsAreValid(t *testing.T) {
	newRootCmd()
	if err := validateFlags(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	opts := buildOptions()
	if opts.LockDuration != 300*time.Millisecond || opts.InterWordDelay != 150*time.Millisecond {
		t.Fatalf("unexpected timings: %+v", opts)
	}
	if opts.Lane.TargetLine() != 450 {
		t.Fatalf("expected target line 450, got %v", opts.Lane.TargetLine())
	}
}

func TestValidateFlagsRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		set  func()
	}{
		{"volume", func() { playVolume = 1.5 }},
		{"width", func() { laneWidth = 0 }},
		{"spacing", func() { laneLetterSpacing = 2000 }},
		{"target", func() { laneTargetOffset = 600 }},
		{"lock", func() { judgeLockMs = 0 }},
		{"inter-word", func() { judgeInterWordMs = 90 }},
	}
	for _, tc := range cases {
		newRootCmd()
		tc.set()
		if err := validateFlags(); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestFlagsOverrideConfig(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.Flags().Set("song", "Ode to Joy"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	song := "Scale"
	volume := 0.25
	lock := 500
	cfg := config.FileConfig{}
	cfg.Game.Song = &song
	cfg.Game.Volume = &volume
	cfg.Judge.LockMs = &lock
	applyFileConfig(cmd, cfg)

	if playSong != "Ode to Joy" {
		t.Fatalf("expected flag to win, got %q", playSong)
	}
	if playVolume != 0.25 || judgeLockMs != 500 {
		t.Fatalf("expected config values, got volume=%v lock=%d", playVolume, judgeLockMs)
	}
	if playWordlist != "" {
		t.Fatalf("expected unset config to keep the default, got %q", playWordlist)
	}
}

func TestConfigTemplateDecodes(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()

	path := filepath.Join(dir, "commented.toml")
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("expected commented template to decode, got %v", err)
	}
	if cfg.Game.Song != nil {
		t.Fatalf("expected commented values to stay unset")
	}

	setting := regexp.MustCompile(`^# ([a-z-]+ = )`)
	lines := strings.Split(defaultConfigTemplate(), "\n")
	for i, line := range lines {
		lines[i] = setting.ReplaceAllString(line, "$1")
	}
	path = filepath.Join(dir, "enabled.toml")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err = config.LoadConfig(path)
	if err != nil {
		t.Fatalf("expected uncommented template to decode, got %v", err)
	}
	if cfg.Game.Song == nil || *cfg.Game.Song != defaultSong {
		t.Fatalf("expected default song, got %v", cfg.Game.Song)
	}
	if cfg.Lane.Width == nil || *cfg.Lane.Width != 1000 {
		t.Fatalf("expected lane width 1000, got %v", cfg.Lane.Width)
	}
	if cfg.Judge.InterWordMs == nil || *cfg.Judge.InterWordMs != 150 {
		t.Fatalf("expected inter-word delay 150, got %v", cfg.Judge.InterWordMs)
	}
	if cfg.Judge.LateHitFreezes == nil || !*cfg.Judge.LateHitFreezes {
		t.Fatalf("expected late-hit-freezes true")
	}
}

func TestLoadWordsDefault(t *testing.T) {
	words, err := loadWords("")
	if err != nil || len(words) == 0 {
		t.Fatalf("expected built-in words, got %d (%v)", len(words), err)
	}
	if _, err := loadWords(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("expected missing word list to fail")
	}
}
