package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/verte-zerg/typefall/internal/model"
)

const (
	noteAttack  = 5 * time.Millisecond
	noteRelease = 180 * time.Millisecond

	wrongKeyDuration = 150 * time.Millisecond
	lineMissDuration = 120 * time.Millisecond
	breachDuration   = 300 * time.Millisecond
)

// envelope applies a linear attack and release to a finite stream.
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, sr beep.SampleRate, total, attack, release time.Duration) beep.Streamer {
	return &envelope{
		streamer: beep.Take(sr.N(total), s),
		attack:   sr.N(attack),
		release:  sr.N(release),
		total:    sr.N(total),
	}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if remaining := e.total - e.pos; e.release > 0 && remaining < e.release {
			vol = math.Max(0, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// buzz is a harmonic-rich low tone used for wrong keys.
type buzz struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func (g *buzz) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		v := 0.3*math.Sin(2*math.Pi*g.freq*t) +
			0.15*math.Sin(2*math.Pi*g.freq*2*t) +
			0.075*math.Sin(2*math.Pi*g.freq*3*t)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *buzz) Err() error { return nil }

// rumble is decaying noise over a low sine, used for boundary breaches.
type rumble struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

func (g *rumble) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		v := math.Exp(-t*8) * (0.25*noise + 0.3*math.Sin(2*math.Pi*80*t))
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *rumble) Err() error { return nil }

// withVolume scales a stream linearly; zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// noteSound builds a finite sine tone for a note name.
func noteSound(sr beep.SampleRate, id model.NoteID, d time.Duration) (beep.Streamer, error) {
	freq, err := Frequency(id)
	if err != nil {
		return nil, err
	}
	tone, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, err
	}
	return newEnvelope(tone, sr, d, noteAttack, noteRelease), nil
}

// cueSound returns the feedback sound for a cue, or nil for unknown cues.
func cueSound(sr beep.SampleRate, cue model.Cue) beep.Streamer {
	switch cue {
	case model.CueWrongKey:
		return newEnvelope(&buzz{sr: sr, freq: 120}, sr, wrongKeyDuration, 20*time.Millisecond, 40*time.Millisecond)
	case model.CueLineMiss:
		tone, err := generators.SineTone(sr, 220)
		if err != nil {
			return nil
		}
		return newEnvelope(tone, sr, lineMissDuration, 5*time.Millisecond, 80*time.Millisecond)
	case model.CueBoundaryBreach:
		return beep.Take(sr.N(breachDuration), &rumble{sr: sr, seed: 1})
	default:
		return nil
	}
}
