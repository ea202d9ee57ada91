// Package stats tallies judgements of a play session and renders summaries.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/typefall/internal/model"
	"github.com/verte-zerg/typefall/internal/song"
)

const (
	sparkChars = " .:-=+*#%@"

	// maxOutcomes bounds the outcome history kept for Trend. Trend output is
	// exact while window+width stays within it.
	maxOutcomes = 1024
)

// Tally counts judgements and keeps the recent per-keystroke outcomes.
type Tally struct {
	counts   map[model.Judgement]int
	breaches int
	total    int
	outcomes []float64
}

// NewTally returns an empty tally.
func NewTally() *Tally {
	return &Tally{counts: map[model.Judgement]int{}}
}

// Record adds one judged keystroke.
func (t *Tally) Record(j model.Judgement) {
	t.counts[j]++
	outcome := 0.0
	if j == model.Perfect || j == model.Ok || j == model.Bad {
		outcome = 100
	}
	t.push(outcome)
}

// RecordBreach adds a boundary breach, which counts as one missed letter.
func (t *Tally) RecordBreach() {
	t.breaches++
	t.push(0)
}

// push appends an outcome and drops the oldest half once the history holds
// twice maxOutcomes.
func (t *Tally) push(outcome float64) {
	t.total++
	t.outcomes = append(t.outcomes, outcome)
	if len(t.outcomes) >= 2*maxOutcomes {
		n := copy(t.outcomes, t.outcomes[len(t.outcomes)-maxOutcomes:])
		t.outcomes = t.outcomes[:n]
	}
}

// Count returns how many keystrokes received j.
func (t *Tally) Count(j model.Judgement) int {
	return t.counts[j]
}

// Breaches returns the number of boundary breaches.
func (t *Tally) Breaches() int {
	return t.breaches
}

// Total returns the number of recorded outcomes.
func (t *Tally) Total() int {
	return t.total
}

// Reset clears the tally.
func (t *Tally) Reset() {
	t.counts = map[model.Judgement]int{}
	t.breaches = 0
	t.total = 0
	t.outcomes = nil
}

// Trend renders the rolling hit rate of the last width outcomes.
func (t *Tally) Trend(window, width int) string {
	series := MovingAverage(t.outcomes, window)
	if width > 0 && len(series) > width {
		series = series[len(series)-width:]
	}
	return Sparkline(series, 0, 100)
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	if window <= 1 {
		copy(out, values)
		return out
	}
	var sum float64
	for i, v := range values {
		sum += v
		den := float64(i + 1)
		if i >= window {
			sum -= values[i-window]
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders values on a fixed [lo, hi] scale. With lo >= hi the scale
// is taken from the values; a flat series renders at mid height.
func Sparkline(values []float64, lo, hi float64) string {
	if len(values) == 0 {
		return ""
	}
	if lo >= hi {
		lo, hi = values[0], values[0]
		for _, v := range values[1:] {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if math.Abs(hi-lo) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - lo) / (hi - lo)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		idx = max(0, min(idx, len(sparkChars)-1))
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// TallyLines renders the judgement table followed by the score summary.
func TallyLines(t *Tally, score model.ScoreSnapshot) []string {
	total := t.Total()
	headers := []string{"Judgement", "Count", "Share"}
	rows := make([][]string, 0, len(model.Judgements)+1)
	share := func(n int) string {
		if total == 0 {
			return "-"
		}
		return fmt.Sprintf("%.1f%%", float64(n)/float64(total)*100)
	}
	for _, j := range model.Judgements {
		n := t.Count(j)
		rows = append(rows, []string{j.String(), fmt.Sprintf("%d", n), share(n)})
	}
	rows = append(rows, []string{"Breach", fmt.Sprintf("%d", t.breaches), share(t.breaches)})

	lines := formatTable(headers, rows, map[int]bool{1: true, 2: true})
	lines = append(lines,
		"",
		fmt.Sprintf("Score: %d  x%d  combo %d", score.Score, score.Multiplier, score.Combo),
		fmt.Sprintf("Accuracy: %.2f%% (%d/%d)", score.Accuracy, score.TotalHits, score.TotalPossible),
	)
	return lines
}

// RenderSongs prints the song catalog as a table.
func RenderSongs(w io.Writer, songs []model.SongConfig) error {
	if len(songs) == 0 {
		_, err := fmt.Fprintln(w, "No songs found.")
		return err
	}
	headers := []string{"Song", "WPM", "Letter delay", "Step", "Notes"}
	rows := make([][]string, 0, len(songs))
	for _, s := range songs {
		s = song.Normalize(s)
		rows = append(rows, []string{
			s.Name,
			fmt.Sprintf("%.0f", s.WordsPerMinute),
			song.LetterDelay(s).String(),
			fmt.Sprintf("%.0fpx/%s", s.PixelsPerInterval, song.MovementInterval(s)),
			fmt.Sprintf("%d", len(s.Notes)),
		})
	}
	for _, line := range formatTable(headers, rows, map[int]bool{1: true, 4: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
