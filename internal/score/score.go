// Package score holds hit classification and the running score state.
package score

import "github.com/verte-zerg/typefall/internal/model"

// ComboStep is the number of consecutive hits that raises the multiplier.
const ComboStep = 15

// Window is an upper distance bound (inclusive) for a judgement.
type Window struct {
	Max       float64
	Judgement model.Judgement
}

// Windows are the timing windows in lane pixels, tightest first.
var Windows = []Window{
	{Max: 40, Judgement: model.Perfect},
	{Max: 60, Judgement: model.Ok},
	{Max: 90, Judgement: model.Bad},
}

// Points maps a hit judgement to its base score.
var Points = map[model.Judgement]int{
	model.Perfect: 300,
	model.Ok:      100,
	model.Bad:     50,
}

// Classify maps a distance from the target line to a judgement.
func Classify(distance float64) model.Judgement {
	if distance < 0 {
		distance = -distance
	}
	for _, w := range Windows {
		if distance <= w.Max {
			return w.Judgement
		}
	}
	return model.Miss
}

// State aggregates score, combo, multiplier and attempt counters.
// The zero value is not ready for use; call New.
type State struct {
	score         int
	multiplier    int
	combo         int
	totalHits     int
	totalPossible int
}

// New returns a fresh state with a multiplier of 1.
func New() *State {
	return &State{multiplier: 1}
}

// Reset clears the state back to its initial values.
func (s *State) Reset() {
	*s = State{multiplier: 1}
}

// Hit records a successful hit and returns the awarded points.
// Judgements without points are recorded as a miss.
func (s *State) Hit(j model.Judgement) int {
	base, ok := Points[j]
	if !ok {
		s.Miss()
		return 0
	}
	awarded := base * s.multiplier
	s.score += awarded
	s.combo++
	if s.combo%ComboStep == 0 {
		s.multiplier++
	}
	s.totalHits++
	s.totalPossible++
	return awarded
}

// Miss records a missed attempt: combo and multiplier reset.
func (s *State) Miss() {
	s.combo = 0
	s.multiplier = 1
	s.totalPossible++
}

// Breach records a letter crossing the lane bottom. The combo is kept.
func (s *State) Breach() {
	s.multiplier = 1
	s.totalPossible++
}

// Accuracy returns hits over attempts as a percentage, 100 before any attempt.
func (s *State) Accuracy() float64 {
	if s.totalPossible == 0 {
		return 100
	}
	return float64(s.totalHits) / float64(s.totalPossible) * 100
}

// Snapshot returns a read-only copy of the state.
func (s *State) Snapshot() model.ScoreSnapshot {
	return model.ScoreSnapshot{
		Score:         s.score,
		Multiplier:    s.multiplier,
		Combo:         s.combo,
		TotalHits:     s.totalHits,
		TotalPossible: s.totalPossible,
		Accuracy:      s.Accuracy(),
	}
}
