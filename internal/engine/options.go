package engine

import (
	"time"

	"github.com/verte-zerg/typefall/internal/model"
)

const (
	minInterWordDelay = 100 * time.Millisecond
	maxInterWordDelay = 150 * time.Millisecond
)

// MissPolicy selects between the two recorded miss-recovery variants.
type MissPolicy struct {
	// WrongKeyClearsWord removes the whole word on a wrong key instead of
	// only the active letter.
	WrongKeyClearsWord bool
	// LateHitFreezes freezes movement after a correct key outside every
	// timing window.
	LateHitFreezes bool
}

// Options tunes lane geometry and recovery timings.
type Options struct {
	Lane           model.LaneConfig
	InterWordDelay time.Duration
	LockDuration   time.Duration
	FreezeDuration time.Duration
	IndicatorTTL   time.Duration
	Policy         MissPolicy
}

// DefaultLane is the reference 1000x600 lane.
func DefaultLane() model.LaneConfig {
	return model.LaneConfig{
		Width:         1000,
		Height:        600,
		LetterSpacing: 40,
		LetterHeight:  30,
		TargetOffset:  150,
	}
}

// DefaultOptions returns the canonical tuning.
func DefaultOptions() Options {
	return Options{
		Lane:           DefaultLane(),
		InterWordDelay: 150 * time.Millisecond,
		LockDuration:   300 * time.Millisecond,
		FreezeDuration: 300 * time.Millisecond,
		IndicatorTTL:   600 * time.Millisecond,
		Policy: MissPolicy{
			WrongKeyClearsWord: true,
			LateHitFreezes:     true,
		},
	}
}

func (o Options) normalized() Options {
	def := DefaultOptions()
	if o.Lane.Width <= 0 {
		o.Lane.Width = def.Lane.Width
	}
	if o.Lane.Height <= 0 {
		o.Lane.Height = def.Lane.Height
	}
	if o.Lane.LetterSpacing <= 0 {
		o.Lane.LetterSpacing = def.Lane.LetterSpacing
	}
	if o.Lane.LetterHeight <= 0 {
		o.Lane.LetterHeight = def.Lane.LetterHeight
	}
	if o.Lane.TargetOffset <= 0 {
		o.Lane.TargetOffset = def.Lane.TargetOffset
	}
	if o.Lane.TargetOffset >= o.Lane.Height {
		o.Lane.TargetOffset = o.Lane.Height / 4
	}
	switch {
	case o.InterWordDelay == 0:
		o.InterWordDelay = def.InterWordDelay
	case o.InterWordDelay < minInterWordDelay:
		o.InterWordDelay = minInterWordDelay
	case o.InterWordDelay > maxInterWordDelay:
		o.InterWordDelay = maxInterWordDelay
	}
	if o.LockDuration <= 0 {
		o.LockDuration = def.LockDuration
	}
	if o.FreezeDuration <= 0 {
		o.FreezeDuration = def.FreezeDuration
	}
	if o.IndicatorTTL <= 0 {
		o.IndicatorTTL = def.IndicatorTTL
	}
	return o
}
