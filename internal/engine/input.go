package engine

import (
	"math"
	"unicode"

	"github.com/verte-zerg/typefall/internal/model"
	"github.com/verte-zerg/typefall/internal/score"
)

// KeyEscape toggles pause when passed to Press.
const KeyEscape rune = 0x1b

// Ignored reports whether a key never reaches the judge: space and control
// characters other than Escape.
func Ignored(r rune) bool {
	if r == KeyEscape {
		return false
	}
	return r == ' ' || unicode.IsControl(r) || unicode.IsSpace(r)
}

// Locked reports whether input is disabled after a wrong key.
func (e *Engine) Locked() bool {
	return e.locked
}

// Press resolves one keystroke against the active letter.
func (e *Engine) Press(r rune) {
	if e.closed {
		return
	}
	if r == KeyEscape {
		e.TogglePause()
		return
	}
	if Ignored(r) || !e.running || e.locked {
		return
	}
	idx := e.lane.active()
	if idx < 0 {
		return
	}
	active := e.lane.letters[idx]

	if unicode.ToUpper(r) != unicode.ToUpper(active.Char) {
		e.wrongKey(active)
		return
	}
	j := score.Classify(e.distance(active))
	if j == model.Miss {
		e.lateMiss(active)
		return
	}
	e.hit(active, j)
}

// distance is measured from the letter's vertical center to the target line.
func (e *Engine) distance(letter model.Letter) float64 {
	center := letter.Top + e.opts.Lane.LetterHeight/2
	return math.Abs(center - e.opts.Lane.TargetLine())
}

func (e *Engine) wrongKey(active model.Letter) {
	e.addIndicator(model.Wrong, active)
	e.emitCue(model.CueWrongKey)
	e.score.Miss()
	e.lock()
	if e.opts.Policy.WrongKeyClearsWord {
		e.lane.removeWord(active.WordIndex)
		e.abortWord(active.WordIndex)
	} else {
		e.lane.remove(active.ID)
	}
	e.emitLane()
	e.emitScore()
}

func (e *Engine) lateMiss(active model.Letter) {
	e.lane.remove(active.ID)
	e.score.Miss()
	e.addIndicator(model.Miss, active)
	e.emitCue(model.CueLineMiss)
	if e.opts.Policy.LateHitFreezes {
		e.freeze()
	}
	e.emitLane()
	e.emitScore()
}

func (e *Engine) hit(active model.Letter, j model.Judgement) {
	e.score.Hit(j)
	if notes := e.song.Notes; len(notes) > 0 {
		e.noteIndex %= len(notes)
		e.emit(Event{Kind: EventPlayNote, Note: notes[e.noteIndex]})
		e.noteIndex = (e.noteIndex + 1) % len(notes)
	}
	e.lane.remove(active.ID)
	e.addIndicator(j, active)
	e.emitLane()
	e.emitScore()
}

func (e *Engine) lock() {
	e.queue.Cancel(e.lockTimer)
	e.locked = true
	e.lockTimer = e.queue.After(e.opts.LockDuration, func() {
		e.locked = false
		e.lockTimer = 0
	})
}

func (e *Engine) clearLock() {
	e.queue.Cancel(e.lockTimer)
	e.lockTimer = 0
	e.locked = false
}

// NoteIndex returns the position of the next note to play.
func (e *Engine) NoteIndex() int {
	return e.noteIndex
}
