package audio

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/verte-zerg/typefall/internal/model"
)

func TestMIDI(t *testing.T) {
	cases := map[model.NoteID]int{
		"A4":  69,
		"C4":  60,
		"E5":  76,
		"D#5": 75,
		"Eb5": 75,
		"c-1": 0,
		"G9":  127,
	}
	for id, want := range cases {
		got, err := MIDI(id)
		if err != nil {
			t.Fatalf("MIDI(%q): %v", id, err)
		}
		if got != want {
			t.Fatalf("MIDI(%q) = %d, want %d", id, got, want)
		}
	}
}

func TestMIDIRejectsBadNames(t *testing.T) {
	for _, id := range []model.NoteID{"", "H4", "C", "C#x", "G#10"} {
		if _, err := MIDI(id); err == nil {
			t.Fatalf("expected error for %q", id)
		}
	}
}

func TestFrequency(t *testing.T) {
	freq, err := Frequency("A4")
	if err != nil || freq != 440 {
		t.Fatalf("expected 440Hz, got %v (%v)", freq, err)
	}
	freq, err = Frequency("A5")
	if err != nil || math.Abs(freq-880) > 1e-9 {
		t.Fatalf("expected 880Hz, got %v (%v)", freq, err)
	}
}

func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestNoteSoundIsFinite(t *testing.T) {
	sr := beep.SampleRate(8000)
	s, err := noteSound(sr, "E5", 250*time.Millisecond)
	if err != nil {
		t.Fatalf("noteSound: %v", err)
	}
	if n := drain(s); n != sr.N(250*time.Millisecond) {
		t.Fatalf("expected %d samples, got %d", sr.N(250*time.Millisecond), n)
	}
}

func TestCueSounds(t *testing.T) {
	sr := beep.SampleRate(8000)
	for _, cue := range []model.Cue{model.CueWrongKey, model.CueLineMiss, model.CueBoundaryBreach} {
		s := cueSound(sr, cue)
		if s == nil {
			t.Fatalf("expected a sound for %q", cue)
		}
		if n := drain(s); n == 0 {
			t.Fatalf("expected samples for %q", cue)
		}
	}
	if cueSound(sr, "unknown") != nil {
		t.Fatalf("expected no sound for an unknown cue")
	}
}

func TestEnvelopeStartsSilent(t *testing.T) {
	sr := beep.SampleRate(8000)
	s := newEnvelope(&buzz{sr: sr, freq: 120}, sr, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond)
	buf := make([][2]float64, 1)
	s.Stream(buf)
	if buf[0][0] != 0 {
		t.Fatalf("expected silent first sample, got %v", buf[0][0])
	}
}

func newFakePlayer(opts Options) (*Player, *[]beep.Streamer) {
	p := NewPlayer(opts, nil)
	played := []beep.Streamer{}
	p.initSpeaker = func(beep.SampleRate, int) error { return nil }
	p.play = func(s ...beep.Streamer) { played = append(played, s...) }
	p.closeOutput = func() {}
	return p, &played
}

func TestPlayerSilentBeforeInit(t *testing.T) {
	p, played := newFakePlayer(DefaultOptions())
	p.PlayNote("A4")
	p.PlayCue(model.CueWrongKey)
	if len(*played) != 0 || p.Enabled() {
		t.Fatalf("expected no output before init")
	}
}

func TestPlayerPlaysAndMutes(t *testing.T) {
	p, played := newFakePlayer(DefaultOptions())
	if err := p.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	p.PlayNote("A4")
	p.PlayNote("not-a-note")
	p.PlayCue(model.CueLineMiss)
	p.PlayCue("unknown")
	if len(*played) != 2 {
		t.Fatalf("expected 2 sounds, got %d", len(*played))
	}
	if on := p.ToggleMute(); on {
		t.Fatalf("expected mute")
	}
	p.PlayNote("A4")
	if len(*played) != 2 {
		t.Fatalf("expected muted player to stay silent")
	}
	p.Close()
	if p.Enabled() {
		t.Fatalf("expected closed player to be disabled")
	}
}

func TestPlayerInitFailure(t *testing.T) {
	p, played := newFakePlayer(Options{Muted: true})
	p.initSpeaker = func(beep.SampleRate, int) error { return errors.New("no device") }
	if err := p.Init(); err == nil {
		t.Fatalf("expected init error")
	}
	p.ToggleMute()
	p.PlayNote("A4")
	if len(*played) != 0 {
		t.Fatalf("expected a failed init to stay silent")
	}
}
