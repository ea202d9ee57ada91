package engine

import (
	"time"

	"github.com/verte-zerg/typefall/internal/model"
	"github.com/verte-zerg/typefall/internal/song"
)

// spawnState tracks the word currently being realized. letters is nil until
// the word has been drawn from the generator.
type spawnState struct {
	index   int
	letters []rune
	next    int
}

// scheduleWord allocates the next word index and arms its start timer.
func (e *Engine) scheduleWord(delay time.Duration) {
	k := e.wordCounter
	e.wordCounter++
	e.current = &spawnState{index: k}
	e.armSpawn(k, delay)
}

// armSpawn keeps at most one pending timer per word index.
func (e *Engine) armSpawn(k int, delay time.Duration) {
	if h, ok := e.spawnTimers[k]; ok {
		e.queue.Cancel(h)
	}
	e.spawnTimers[k] = e.queue.After(delay, func() { e.onSpawn(k) })
}

func (e *Engine) cancelSpawn(k int) {
	if h, ok := e.spawnTimers[k]; ok {
		e.queue.Cancel(h)
		delete(e.spawnTimers, k)
	}
}

func (e *Engine) cancelAllSpawn() {
	for k, h := range e.spawnTimers {
		e.queue.Cancel(h)
		delete(e.spawnTimers, k)
	}
}

// resumeSpawn re-arms the current word when its timer fired while paused.
func (e *Engine) resumeSpawn() {
	if e.current == nil {
		e.scheduleWord(0)
		return
	}
	if _, pending := e.spawnTimers[e.current.index]; !pending {
		e.armSpawn(e.current.index, 0)
	}
}

// abortWord stops spawning word k. When k was still spawning, the chain
// moves on to the next word after the inter-word delay.
func (e *Engine) abortWord(k int) {
	e.cancelSpawn(k)
	if e.current != nil && e.current.index == k {
		e.scheduleWord(e.opts.InterWordDelay)
	}
}

func (e *Engine) onSpawn(k int) {
	delete(e.spawnTimers, k)
	st := e.current
	if st == nil || st.index != k || !e.running {
		return
	}

	if st.letters == nil {
		word, cursor := e.gen.Next(e.words, e.opts.Lane.Width, e.opts.Lane.LetterSpacing, e.cursor)
		if word == "" {
			return
		}
		st.letters = []rune(word)
		e.cursor = cursor
		e.log.Debugf("word %d %q at x=%.0f", k, word, cursor)
	}

	if st.next >= len(st.letters) {
		e.scheduleWord(e.opts.InterWordDelay)
		return
	}

	e.nextID++
	e.lane.add(model.Letter{
		ID:        e.nextID,
		Char:      st.letters[st.next],
		Top:       0,
		Left:      e.cursor,
		WordIndex: k,
	})
	e.cursor += e.opts.Lane.LetterSpacing
	st.next++
	e.armSpawn(k, song.LetterDelay(e.song))
	e.emitLane()
}
