// Package song provides the song catalog and tempo rules.
package song

import (
	"math"
	"strings"
	"time"

	"github.com/verte-zerg/typefall/internal/model"
)

const (
	DefaultWordsPerMinute     = 60.0
	DefaultPixelsPerInterval  = 15.0
	DefaultDelayPerMovementMs = 50.0

	// charsPerWord normalizes tempo: one "word" is five characters.
	charsPerWord = 5.0

	// Delays outside [minDelayMs, maxDelayMs] are treated as invalid. The
	// tempo bounds map onto the same letter delay range.
	minDelayMs        = 1.0
	maxDelayMs        = 600000.0
	minWordsPerMinute = 60000 / (maxDelayMs * charsPerWord)
	maxWordsPerMinute = 60000 / (minDelayMs * charsPerWord)
)

// Normalize replaces missing or invalid numeric fields with defaults.
func Normalize(s model.SongConfig) model.SongConfig {
	s.WordsPerMinute = withinOr(s.WordsPerMinute, minWordsPerMinute, maxWordsPerMinute, DefaultWordsPerMinute)
	s.PixelsPerInterval = positiveOr(s.PixelsPerInterval, DefaultPixelsPerInterval)
	s.DelayPerMovementMs = withinOr(s.DelayPerMovementMs, minDelayMs, maxDelayMs, DefaultDelayPerMovementMs)
	s.LetterDelayMs = withinOr(s.LetterDelayMs, minDelayMs, maxDelayMs, 0)
	notes := make([]model.NoteID, 0, len(s.Notes))
	for _, n := range s.Notes {
		if trimmed := strings.TrimSpace(string(n)); trimmed != "" {
			notes = append(notes, model.NoteID(trimmed))
		}
	}
	s.Notes = notes
	if strings.TrimSpace(s.Name) == "" {
		s.Name = "Untitled"
	}
	return s
}

func positiveOr(v, def float64) float64 {
	if !(v > 0) || math.IsInf(v, 0) {
		return def
	}
	return v
}

// withinOr returns v when it lies in [lo, hi], def otherwise. NaN is never
// within range.
func withinOr(v, lo, hi, def float64) float64 {
	if !(v >= lo && v <= hi) {
		return def
	}
	return v
}

// LetterDelay returns the delay between two letters of a word. A song with a
// fixed per-letter delay uses it directly; otherwise the delay is derived
// from the tempo as 60000 / (wpm * 5) milliseconds.
func LetterDelay(s model.SongConfig) time.Duration {
	s = Normalize(s)
	ms := s.LetterDelayMs
	if ms == 0 {
		ms = 60000 / (s.WordsPerMinute * charsPerWord)
	}
	return time.Duration(ms * float64(time.Millisecond))
}

// MovementInterval returns the period of the movement tick.
func MovementInterval(s model.SongConfig) time.Duration {
	s = Normalize(s)
	return time.Duration(s.DelayPerMovementMs * float64(time.Millisecond))
}

// Find returns the song with the given name, ignoring case.
func Find(songs []model.SongConfig, name string) (model.SongConfig, bool) {
	for _, s := range songs {
		if strings.EqualFold(s.Name, strings.TrimSpace(name)) {
			return s, true
		}
	}
	return model.SongConfig{}, false
}
