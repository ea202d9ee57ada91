package score

import (
	"testing"

	"github.com/verte-zerg/typefall/internal/model"
)

func TestClassifyBoundaries(t *testing.T) {
	cases := map[float64]model.Judgement{
		0:     model.Perfect,
		35:    model.Perfect,
		40:    model.Perfect,
		40.01: model.Ok,
		60:    model.Ok,
		60.5:  model.Bad,
		90:    model.Bad,
		90.1:  model.Miss,
		500:   model.Miss,
		-35:   model.Perfect,
	}
	for distance, want := range cases {
		if got := Classify(distance); got != want {
			t.Fatalf("Classify(%v) = %v, want %v", distance, got, want)
		}
	}
}

func TestHitAwardsPointsTimesMultiplier(t *testing.T) {
	s := New()
	if got := s.Hit(model.Perfect); got != 300 {
		t.Fatalf("expected 300 points, got %d", got)
	}
	if got := s.Hit(model.Ok); got != 100 {
		t.Fatalf("expected 100 points, got %d", got)
	}
	if got := s.Hit(model.Bad); got != 50 {
		t.Fatalf("expected 50 points, got %d", got)
	}
	snap := s.Snapshot()
	if snap.Score != 450 || snap.Combo != 3 || snap.TotalHits != 3 || snap.TotalPossible != 3 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestMultiplierGrowsEveryFifteenHits(t *testing.T) {
	s := New()
	for i := 0; i < ComboStep-1; i++ {
		s.Hit(model.Bad)
	}
	if m := s.Snapshot().Multiplier; m != 1 {
		t.Fatalf("expected multiplier 1 before 15th hit, got %d", m)
	}
	s.Hit(model.Bad)
	if m := s.Snapshot().Multiplier; m != 2 {
		t.Fatalf("expected multiplier 2 after 15th hit, got %d", m)
	}
	if got := s.Hit(model.Perfect); got != 600 {
		t.Fatalf("expected doubled award, got %d", got)
	}
	for i := 0; i < ComboStep-1; i++ {
		s.Hit(model.Bad)
	}
	if m := s.Snapshot().Multiplier; m != 3 {
		t.Fatalf("expected multiplier 3 after 30 hits, got %d", m)
	}
}

func TestMissResetsComboAndMultiplier(t *testing.T) {
	s := New()
	for i := 0; i < ComboStep; i++ {
		s.Hit(model.Perfect)
	}
	s.Miss()
	snap := s.Snapshot()
	if snap.Combo != 0 || snap.Multiplier != 1 {
		t.Fatalf("expected reset combo and multiplier, got %+v", snap)
	}
	if snap.TotalHits != ComboStep || snap.TotalPossible != ComboStep+1 {
		t.Fatalf("unexpected counters: %+v", snap)
	}
}

func TestHitWithMissJudgementCountsAsMiss(t *testing.T) {
	s := New()
	s.Hit(model.Perfect)
	if got := s.Hit(model.Miss); got != 0 {
		t.Fatalf("expected no points for a miss, got %d", got)
	}
	snap := s.Snapshot()
	if snap.Combo != 0 || snap.TotalHits != 1 || snap.TotalPossible != 2 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestBreachCountsAttemptWithoutHit(t *testing.T) {
	s := New()
	s.Hit(model.Ok)
	s.Breach()
	snap := s.Snapshot()
	if snap.TotalHits != 1 || snap.TotalPossible != 2 || snap.Multiplier != 1 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if snap.Accuracy != 50 {
		t.Fatalf("expected 50%% accuracy, got %v", snap.Accuracy)
	}
}

func TestAccuracyDefaultsToHundred(t *testing.T) {
	s := New()
	if acc := s.Accuracy(); acc != 100 {
		t.Fatalf("expected 100, got %v", acc)
	}
	s.Hit(model.Perfect)
	s.Reset()
	if snap := s.Snapshot(); snap.Score != 0 || snap.Multiplier != 1 || snap.Accuracy != 100 {
		t.Fatalf("unexpected snapshot after reset: %+v", snap)
	}
}
