package engine

import "github.com/verte-zerg/typefall/internal/model"

// EventKind tags an Event.
type EventKind int

const (
	EventHitIndicator EventKind = iota
	EventPlayNote
	EventPlayCue
	EventScore
	EventLane
	EventRunning
)

func (k EventKind) String() string {
	switch k {
	case EventHitIndicator:
		return "hitIndicator"
	case EventPlayNote:
		return "playNote"
	case EventPlayCue:
		return "playCue"
	case EventScore:
		return "scoreSnapshot"
	case EventLane:
		return "laneSnapshot"
	case EventRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Event is an effect for the audio and rendering collaborators. Only the
// field matching Kind is set.
type Event struct {
	Kind      EventKind
	Indicator model.HitIndicator
	Note      model.NoteID
	Cue       model.Cue
	Score     model.ScoreSnapshot
	Lane      []LetterView
	Running   bool
}

// LetterView is a letter as seen by the renderer.
type LetterView struct {
	model.Letter
	Active bool
}

func (e *Engine) emit(ev Event) {
	e.events = append(e.events, ev)
}

func (e *Engine) emitScore() {
	e.emit(Event{Kind: EventScore, Score: e.score.Snapshot()})
}

func (e *Engine) emitLane() {
	e.emit(Event{Kind: EventLane, Lane: e.lane.views()})
}

func (e *Engine) emitCue(c model.Cue) {
	e.emit(Event{Kind: EventPlayCue, Cue: c})
}

// Drain returns and clears the pending events, oldest first.
func (e *Engine) Drain() []Event {
	out := e.events
	e.events = nil
	return out
}
