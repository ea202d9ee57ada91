// Package model defines shared data structures.
package model

import "time"

// NoteID names a note in a song sheet, e.g. "E5" or "D#5".
type NoteID string

// SongConfig describes the tempo and note sheet of the active song.
type SongConfig struct {
	Name               string
	WordsPerMinute     float64
	PixelsPerInterval  float64
	DelayPerMovementMs float64
	// LetterDelayMs selects the fixed per-letter delay policy when > 0.
	LetterDelayMs float64
	Notes         []NoteID
}

// LaneConfig defines the geometry of the play area in lane pixels.
type LaneConfig struct {
	Width         float64
	Height        float64
	LetterSpacing float64
	LetterHeight  float64
	// TargetOffset is the distance of the target line from the lane bottom.
	TargetOffset float64
}

// TargetLine returns the vertical offset of the target line from the lane top.
func (l LaneConfig) TargetLine() float64 {
	return l.Height - l.TargetOffset
}

// Letter is a single falling glyph.
type Letter struct {
	ID        uint64
	Char      rune
	Top       float64
	Left      float64
	WordIndex int
}

// Judgement classifies the outcome of a keystroke.
type Judgement int

const (
	Perfect Judgement = iota
	Ok
	Bad
	Miss
	Wrong
)

func (j Judgement) String() string {
	switch j {
	case Perfect:
		return "Perfect"
	case Ok:
		return "Ok"
	case Bad:
		return "Bad"
	case Miss:
		return "Miss"
	case Wrong:
		return "Wrong"
	default:
		return "Unknown"
	}
}

// Judgements lists every judgement in display order.
var Judgements = []Judgement{Perfect, Ok, Bad, Miss, Wrong}

// Cue names a fixed sound effect.
type Cue string

const (
	CueWrongKey       Cue = "wrongKey"
	CueLineMiss       Cue = "lineMiss"
	CueBoundaryBreach Cue = "boundaryBreach"
)

// HitIndicator is a transient marker shown where a keystroke resolved.
type HitIndicator struct {
	ID     uint64
	Kind   Judgement
	X      float64
	Y      float64
	Expiry time.Time
}

// ScoreSnapshot is a read-only view of the score state.
type ScoreSnapshot struct {
	Score         int
	Multiplier    int
	Combo         int
	TotalHits     int
	TotalPossible int
	Accuracy      float64
}
