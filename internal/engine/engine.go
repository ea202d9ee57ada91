// Package engine schedules falling letters and judges keystrokes.
//
// The engine is single threaded and never starts goroutines. Every timer it
// uses lives in a sched.Queue that only fires inside Advance, so the host
// loop that calls Advance, Press, TogglePause and SelectSong serializes all
// mutations of the lane and the score.
package engine

import (
	"time"

	"github.com/verte-zerg/typefall/internal/generator"
	"github.com/verte-zerg/typefall/internal/log"
	"github.com/verte-zerg/typefall/internal/model"
	"github.com/verte-zerg/typefall/internal/sched"
	"github.com/verte-zerg/typefall/internal/score"
	"github.com/verte-zerg/typefall/internal/song"
	"github.com/verte-zerg/typefall/internal/wordlist"
)

// Config wires an Engine to its collaborators.
type Config struct {
	Song      model.SongConfig
	Words     []string
	Generator *generator.Generator
	Options   Options
	Logger    *log.Logger
	// Start is the initial clock reading. The zero value means time.Now().
	Start time.Time
	// Paused starts the engine paused.
	Paused bool
}

// Engine owns the lane and score state of one play session.
type Engine struct {
	opts  Options
	log   *log.Logger
	gen   *generator.Generator
	words []string
	song  model.SongConfig

	queue *sched.Queue
	lane  lane
	score *score.State

	running bool
	closed  bool

	locked      bool
	lockTimer   sched.Handle
	frozen      bool
	freezeTimer sched.Handle
	moveTimer   sched.Handle

	spawnTimers map[int]sched.Handle
	current     *spawnState
	wordCounter int
	cursor      float64
	noteIndex   int

	nextID     uint64
	indicators []model.HitIndicator

	events []Event
}

// Snapshot is a read-only view of the engine for rendering.
type Snapshot struct {
	Now        time.Time
	Lane       model.LaneConfig
	Song       model.SongConfig
	Letters    []LetterView
	Score      model.ScoreSnapshot
	Indicators []model.HitIndicator
	Running    bool
	Locked     bool
	Frozen     bool
}

// New builds an engine and arms the first word and the movement tick.
func New(cfg Config) *Engine {
	if cfg.Logger == nil {
		cfg.Logger = log.Discard()
	}
	if cfg.Generator == nil {
		cfg.Generator = generator.New()
	}
	if cfg.Start.IsZero() {
		cfg.Start = time.Now()
	}
	e := &Engine{
		opts:        cfg.Options.normalized(),
		log:         cfg.Logger,
		gen:         cfg.Generator,
		words:       cfg.Words,
		song:        song.Normalize(cfg.Song),
		queue:       sched.New(cfg.Start),
		score:       score.New(),
		running:     !cfg.Paused,
		spawnTimers: map[int]sched.Handle{},
	}
	maxLetters := int(e.opts.Lane.Width / e.opts.Lane.LetterSpacing)
	e.words = wordlist.Apply(e.words, wordlist.ASCIILetters, wordlist.MaxLen(maxLetters))
	if len(e.words) == 0 {
		e.log.Warnf("word list is empty; no letters will spawn")
	}
	e.scheduleWord(0)
	if e.running {
		e.armMovement()
	}
	return e
}

// Advance runs every timer due up to now.
func (e *Engine) Advance(now time.Time) {
	if e.closed {
		return
	}
	e.queue.Advance(now)
}

// Now returns the engine clock.
func (e *Engine) Now() time.Time {
	return e.queue.Now()
}

// Running reports whether the game is running (not paused).
func (e *Engine) Running() bool {
	return e.running
}

// Song returns the active song.
func (e *Engine) Song() model.SongConfig {
	return e.song
}

// TogglePause flips between running and paused. Pausing stops the movement
// tick; letters keep their positions and resume from them.
func (e *Engine) TogglePause() {
	if e.closed {
		return
	}
	e.running = !e.running
	if e.running {
		e.armMovement()
		e.resumeSpawn()
		e.log.Debugf("resumed at %s", e.queue.Now().Format(time.StampMilli))
	} else {
		e.queue.Cancel(e.moveTimer)
		e.moveTimer = 0
		e.log.Debugf("paused at %s", e.queue.Now().Format(time.StampMilli))
	}
	e.emit(Event{Kind: EventRunning, Running: e.running})
}

// SelectSong swaps the song and flushes every per-song state: pending spawn
// timers, lane, hit indicators, cursors, note index, recovery flags and the
// score.
func (e *Engine) SelectSong(s model.SongConfig) {
	if e.closed {
		return
	}
	e.cancelAllSpawn()
	e.queue.Cancel(e.moveTimer)
	e.moveTimer = 0
	e.clearLock()
	e.clearFreeze()

	e.song = song.Normalize(s)
	e.lane.clear()
	e.indicators = nil
	e.current = nil
	e.cursor = 0
	e.wordCounter = 0
	e.noteIndex = 0
	e.score.Reset()
	e.log.Infof("song selected: %s (%.0f wpm, letter delay %v)", e.song.Name, e.song.WordsPerMinute, song.LetterDelay(e.song))

	e.scheduleWord(0)
	if e.running {
		e.armMovement()
	}
	e.emitLane()
	e.emitScore()
}

// Close cancels every timer. The engine ignores all input afterwards.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.queue.CancelAll()
	e.spawnTimers = map[int]sched.Handle{}
	e.moveTimer, e.lockTimer, e.freezeTimer = 0, 0, 0
	e.running = false
	e.closed = true
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	indicators := make([]model.HitIndicator, len(e.indicators))
	copy(indicators, e.indicators)
	return Snapshot{
		Now:        e.queue.Now(),
		Lane:       e.opts.Lane,
		Song:       e.song,
		Letters:    e.lane.views(),
		Score:      e.score.Snapshot(),
		Indicators: indicators,
		Running:    e.running,
		Locked:     e.locked,
		Frozen:     e.frozen,
	}
}

func (e *Engine) addIndicator(kind model.Judgement, letter model.Letter) {
	e.nextID++
	ind := model.HitIndicator{
		ID:     e.nextID,
		Kind:   kind,
		X:      letter.Left,
		Y:      letter.Top,
		Expiry: e.queue.Now().Add(e.opts.IndicatorTTL),
	}
	e.indicators = append(e.indicators, ind)
	e.queue.After(e.opts.IndicatorTTL, func() { e.expireIndicator(ind.ID) })
	e.emit(Event{Kind: EventHitIndicator, Indicator: ind})
}

func (e *Engine) expireIndicator(id uint64) {
	next := make([]model.HitIndicator, 0, len(e.indicators))
	for _, ind := range e.indicators {
		if ind.ID != id {
			next = append(next, ind)
		}
	}
	e.indicators = next
}
