package song

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/typefall/internal/model"
)

// File maps a song TOML file. Unset keys fall back to defaults.
type File struct {
	Name               *string  `toml:"name"`
	WordsPerMinute     *float64 `toml:"words-per-minute"`
	PixelsPerInterval  *float64 `toml:"pixels-per-interval"`
	DelayPerMovementMs *float64 `toml:"delay-per-movement-ms"`
	LetterDelayMs      *float64 `toml:"letter-delay-ms"`
	Notes              []string `toml:"notes"`
}

// Config converts the file into a normalized song. fallbackName is used when
// the file has no name.
func (f File) Config(fallbackName string) model.SongConfig {
	cfg := model.SongConfig{Name: fallbackName}
	if f.Name != nil {
		cfg.Name = *f.Name
	}
	if f.WordsPerMinute != nil {
		cfg.WordsPerMinute = *f.WordsPerMinute
	}
	if f.PixelsPerInterval != nil {
		cfg.PixelsPerInterval = *f.PixelsPerInterval
	}
	if f.DelayPerMovementMs != nil {
		cfg.DelayPerMovementMs = *f.DelayPerMovementMs
	}
	if f.LetterDelayMs != nil {
		cfg.LetterDelayMs = *f.LetterDelayMs
	}
	cfg.Notes = notes(f.Notes...)
	return Normalize(cfg)
}

// LoadFile decodes a single song file. Unknown keys are an error.
func LoadFile(path string) (model.SongConfig, error) {
	var f File
	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return model.SongConfig{}, fmt.Errorf("failed to decode song %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return model.SongConfig{}, fmt.Errorf("unknown key %q in song %s", undecoded[0].String(), path)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return f.Config(name), nil
}

// LoadDir decodes every *.toml file in dir, sorted by file name. A missing
// directory yields no songs. Files that fail to decode are reported in errs
// and skipped.
func LoadDir(dir string) (songs []model.SongConfig, errs []error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, []error{fmt.Errorf("failed to read song directory: %w", err)}
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	for _, name := range names {
		s, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		songs = append(songs, s)
	}
	return songs, errs
}

// Catalog returns the built-in songs followed by the songs in dir. A user
// song with the same name as a built-in one replaces it in place.
func Catalog(dir string) ([]model.SongConfig, []error) {
	songs := Builtin()
	for i := range songs {
		songs[i] = Normalize(songs[i])
	}
	user, errs := LoadDir(dir)
	for _, s := range user {
		replaced := false
		for i := range songs {
			if strings.EqualFold(songs[i].Name, s.Name) {
				songs[i] = s
				replaced = true
				break
			}
		}
		if !replaced {
			songs = append(songs, s)
		}
	}
	return songs, errs
}
