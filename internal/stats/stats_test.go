package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/typefall/internal/model"
)

func TestTallyCounts(t *testing.T) {
	tally := NewTally()
	tally.Record(model.Perfect)
	tally.Record(model.Perfect)
	tally.Record(model.Wrong)
	tally.RecordBreach()

	if tally.Count(model.Perfect) != 2 || tally.Count(model.Wrong) != 1 || tally.Count(model.Ok) != 0 {
		t.Fatalf("unexpected counts")
	}
	if tally.Breaches() != 1 || tally.Total() != 4 {
		t.Fatalf("expected 1 breach and 4 outcomes, got %d and %d", tally.Breaches(), tally.Total())
	}
	tally.Reset()
	if tally.Total() != 0 || tally.Count(model.Perfect) != 0 {
		t.Fatalf("expected empty tally after reset")
	}
}

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{100, 0, 100, 100}, 2)
	want := []float64{100, 50, 50, 100}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
	if out := MovingAverage(nil, 3); len(out) != 0 {
		t.Fatalf("expected empty output")
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline([]float64{0, 100}, 0, 100); got != " @" {
		t.Fatalf("unexpected fixed-scale sparkline %q", got)
	}
	if got := Sparkline([]float64{5, 5, 5}, 0, 0); got != "+++" {
		t.Fatalf("unexpected flat sparkline %q", got)
	}
	if got := Sparkline(nil, 0, 100); got != "" {
		t.Fatalf("expected empty sparkline")
	}
}

func TestTrendKeepsTail(t *testing.T) {
	tally := NewTally()
	for i := 0; i < 10; i++ {
		tally.Record(model.Miss)
	}
	for i := 0; i < 3; i++ {
		tally.Record(model.Perfect)
	}
	got := tally.Trend(1, 4)
	if got != " @@@" {
		t.Fatalf("unexpected trend %q", got)
	}
}

func TestTallyBoundsHistory(t *testing.T) {
	tally := NewTally()
	const n = 5000
	for i := 0; i < n-3; i++ {
		tally.Record(model.Miss)
	}
	for i := 0; i < 3; i++ {
		tally.Record(model.Perfect)
	}
	if tally.Total() != n || tally.Count(model.Miss) != n-3 {
		t.Fatalf("expected totals over the whole session, got %d", tally.Total())
	}
	if len(tally.outcomes) >= 2*maxOutcomes {
		t.Fatalf("expected bounded history, got %d outcomes", len(tally.outcomes))
	}
	if got := tally.Trend(1, 4); got != " @@@" {
		t.Fatalf("unexpected trend %q", got)
	}
}

func TestTallyLines(t *testing.T) {
	tally := NewTally()
	tally.Record(model.Perfect)
	tally.Record(model.Bad)
	tally.Record(model.Miss)
	tally.RecordBreach()
	lines := TallyLines(tally, model.ScoreSnapshot{Score: 350, Multiplier: 1, TotalHits: 2, TotalPossible: 4, Accuracy: 50})
	out := strings.Join(lines, "\n")
	for _, want := range []string{"Perfect", "25.0%", "Breach", "Score: 350", "Accuracy: 50.00% (2/4)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in\n%s", want, out)
		}
	}
	empty := strings.Join(TallyLines(NewTally(), model.ScoreSnapshot{Multiplier: 1, Accuracy: 100}), "\n")
	if !strings.Contains(empty, "-") {
		t.Fatalf("expected placeholder shares for an empty tally")
	}
}

func TestRenderSongs(t *testing.T) {
	var buf bytes.Buffer
	err := RenderSongs(&buf, []model.SongConfig{
		{Name: "Fur Elise", WordsPerMinute: 60, Notes: []model.NoteID{"E5", "D#5"}},
		{Name: "Practice", LetterDelayMs: 350},
	})
	if err != nil {
		t.Fatalf("RenderSongs: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %q", buf.String())
	}
	if !strings.Contains(lines[1], "200ms") || !strings.Contains(lines[2], "350ms") {
		t.Fatalf("expected letter delays, got %q", buf.String())
	}

	buf.Reset()
	if err := RenderSongs(&buf, nil); err != nil || !strings.Contains(buf.String(), "No songs") {
		t.Fatalf("expected empty message, got %q (%v)", buf.String(), err)
	}
}
