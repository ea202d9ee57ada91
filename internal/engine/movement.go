package engine

import (
	"github.com/verte-zerg/typefall/internal/model"
	"github.com/verte-zerg/typefall/internal/song"
)

// armMovement starts a fresh movement interval. A resumed game therefore
// waits one full interval before letters move again.
func (e *Engine) armMovement() {
	e.queue.Cancel(e.moveTimer)
	e.moveTimer = e.queue.After(song.MovementInterval(e.song), e.onMove)
}

func (e *Engine) onMove() {
	e.moveTimer = 0
	if !e.running {
		return
	}
	defer e.armMovement()
	if e.frozen || e.lane.len() == 0 {
		return
	}

	step := e.song.PixelsPerInterval
	// One movement unit above the bottom edge counts as reaching it.
	if e.lane.advance(step, e.opts.Lane.Height-step) {
		e.breach()
		return
	}
	height := e.opts.Lane.Height
	e.lane.filter(func(letter model.Letter) bool { return letter.Top <= height })
	e.emitLane()
}

// breach clears the whole board after a letter reached the lane bottom.
func (e *Engine) breach() {
	cleared := e.lane.len()
	e.lane.clear()
	e.cancelAllSpawn()
	e.score.Breach()
	e.emitCue(model.CueBoundaryBreach)
	e.log.Debugf("boundary breach cleared %d letters", cleared)

	e.scheduleWord(e.opts.InterWordDelay)
	e.emitLane()
	e.emitScore()
}

func (e *Engine) freeze() {
	e.queue.Cancel(e.freezeTimer)
	e.frozen = true
	e.freezeTimer = e.queue.After(e.opts.FreezeDuration, func() {
		e.frozen = false
		e.freezeTimer = 0
	})
}

func (e *Engine) clearFreeze() {
	e.queue.Cancel(e.freezeTimer)
	e.freezeTimer = 0
	e.frozen = false
}
