// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Game  GameConfig  `toml:"game"`
	Lane  LaneConfig  `toml:"lane"`
	Judge JudgeConfig `toml:"judge"`
}

// GameConfig maps session-level settings.
type GameConfig struct {
	Song     *string  `toml:"song"`
	Wordlist *string  `toml:"wordlist"`
	Mute     *bool    `toml:"mute"`
	Volume   *float64 `toml:"volume"`
	LogLevel *string  `toml:"log-level"`
	LogFile  *string  `toml:"log-file"`
}

// LaneConfig maps lane geometry in lane pixels.
type LaneConfig struct {
	Width         *float64 `toml:"width"`
	Height        *float64 `toml:"height"`
	LetterSpacing *float64 `toml:"letter-spacing"`
	LetterHeight  *float64 `toml:"letter-height"`
	TargetOffset  *float64 `toml:"target-offset"`
}

// JudgeConfig maps keystroke judging and recovery settings.
type JudgeConfig struct {
	LockMs             *int  `toml:"lock-ms"`
	FreezeMs           *int  `toml:"freeze-ms"`
	IndicatorMs        *int  `toml:"indicator-ms"`
	InterWordMs        *int  `toml:"inter-word-ms"`
	WrongKeyClearsWord *bool `toml:"wrong-key-clears-word"`
	LateHitFreezes     *bool `toml:"late-hit-freezes"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
