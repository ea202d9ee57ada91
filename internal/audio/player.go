// Package audio synthesizes song notes and feedback cues through beep.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/verte-zerg/typefall/internal/log"
	"github.com/verte-zerg/typefall/internal/model"
)

// Options configures a Player.
type Options struct {
	SampleRate   beep.SampleRate
	Volume       float64
	NoteDuration time.Duration
	Muted        bool
}

// DefaultOptions returns the player defaults.
func DefaultOptions() Options {
	return Options{
		SampleRate:   beep.SampleRate(44100),
		Volume:       0.5,
		NoteDuration: 400 * time.Millisecond,
	}
}

// Player plays notes and cues on the system speaker. Every method is safe to
// call before Init or after a failed Init; such calls are silent.
type Player struct {
	mu          sync.Mutex
	opts        Options
	log         *log.Logger
	initialized bool
	muted       bool

	initSpeaker func(sr beep.SampleRate, bufferSize int) error
	play        func(s ...beep.Streamer)
	closeOutput func()
}

// NewPlayer creates a player. Call Init to open the audio device.
func NewPlayer(opts Options, logger *log.Logger) *Player {
	def := DefaultOptions()
	if opts.SampleRate <= 0 {
		opts.SampleRate = def.SampleRate
	}
	if opts.NoteDuration <= 0 {
		opts.NoteDuration = def.NoteDuration
	}
	if opts.Volume < 0 {
		opts.Volume = 0
	}
	if logger == nil {
		logger = log.Discard()
	}
	return &Player{
		opts:        opts,
		log:         logger,
		muted:       opts.Muted,
		initSpeaker: speaker.Init,
		play:        speaker.Play,
		closeOutput: func() {
			speaker.Clear()
			speaker.Close()
		},
	}
}

// Init opens the speaker with a 100ms buffer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	sr := p.opts.SampleRate
	if err := p.initSpeaker(sr, sr.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	p.initialized = true
	p.log.Infof("audio initialized at %d Hz", int(sr))
	return nil
}

// Close stops every sound and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	p.closeOutput()
	p.initialized = false
}

// PlayNote plays one note of the song sheet. Unknown notes are logged and
// skipped.
func (p *Player) PlayNote(id model.NoteID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.active() {
		return
	}
	s, err := noteSound(p.opts.SampleRate, id, p.opts.NoteDuration)
	if err != nil {
		p.log.Warnf("skipping note %q: %v", id, err)
		return
	}
	p.play(withVolume(s, p.opts.Volume))
}

// PlayCue plays a feedback sound.
func (p *Player) PlayCue(cue model.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.active() {
		return
	}
	s := cueSound(p.opts.SampleRate, cue)
	if s == nil {
		p.log.Debugf("no sound for cue %q", cue)
		return
	}
	p.play(withVolume(s, p.opts.Volume))
}

// ToggleMute flips the mute flag and returns true when sound is now on.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return !p.muted
}

// Enabled reports whether sounds are audible.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active()
}

func (p *Player) active() bool {
	return p.initialized && !p.muted
}
