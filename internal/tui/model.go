// Package tui provides the Bubble Tea game interface.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typefall/internal/engine"
	"github.com/verte-zerg/typefall/internal/log"
	"github.com/verte-zerg/typefall/internal/model"
	"github.com/verte-zerg/typefall/internal/stats"
)

const (
	frameInterval = 16 * time.Millisecond
	trendWindow   = 10
	minLaneRows   = 8
	maxLaneRows   = 30
)

// Sink receives the sounds requested by the engine.
type Sink interface {
	PlayNote(id model.NoteID)
	PlayCue(cue model.Cue)
}

type muter interface {
	ToggleMute() bool
	Enabled() bool
}

type nopSink struct{}

func (nopSink) PlayNote(model.NoteID) {}
func (nopSink) PlayCue(model.Cue)     {}

type frameMsg time.Time

// Config wires the model to a running engine.
type Config struct {
	Engine *engine.Engine
	Sink   Sink
	Songs  []model.SongConfig
	Logger *log.Logger
}

// Model implements the Bubble Tea game UI.
type Model struct {
	engine *engine.Engine
	sink   Sink
	songs  []model.SongConfig
	log    *log.Logger
	tally  *stats.Tally

	keys keyMap
	help help.Model

	picker           table.Model
	pickerOpen       bool
	resumeAfterClose bool

	width  int
	height int
}

// NewModel constructs the game TUI model.
func NewModel(cfg Config) *Model {
	if cfg.Sink == nil {
		cfg.Sink = nopSink{}
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Discard()
	}
	return &Model{
		engine: cfg.Engine,
		sink:   cfg.Sink,
		songs:  cfg.Songs,
		log:    cfg.Logger,
		tally:  stats.NewTally(),
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case frameMsg:
		m.engine.Advance(time.Time(msg))
		m.dispatch()
		return m, tick()
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.engine.Close()
			return m, tea.Quit
		}
		if m.pickerOpen {
			return m.updatePicker(msg)
		}
		return m.updateGame(msg)
	}
	return m, nil
}

func (m *Model) updateGame(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Pause):
		m.engine.Press(engine.KeyEscape)
	case key.Matches(msg, m.keys.Songs):
		m.openPicker()
	case key.Matches(msg, m.keys.Mute):
		if mu, ok := m.sink.(muter); ok {
			on := mu.ToggleMute()
			m.log.Infof("sound on: %v", on)
		}
	default:
		for _, r := range keyRunes(msg) {
			m.engine.Press(r)
		}
	}
	m.dispatch()
	return m, nil
}

func (m *Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		m.selectSong(m.picker.Cursor())
	case key.Matches(msg, m.keys.Close):
		m.closePicker()
	default:
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) openPicker() {
	if len(m.songs) == 0 {
		return
	}
	m.picker = buildSongTable(m.songs, m.engine.Song().Name)
	m.pickerOpen = true
	m.resumeAfterClose = m.engine.Running()
	if m.resumeAfterClose {
		m.engine.TogglePause()
	}
}

func (m *Model) closePicker() {
	m.pickerOpen = false
	if m.resumeAfterClose && !m.engine.Running() {
		m.engine.TogglePause()
	}
	m.resumeAfterClose = false
	m.dispatch()
}

// selectSong swaps the song and always resumes play.
func (m *Model) selectSong(idx int) {
	if idx < 0 || idx >= len(m.songs) {
		return
	}
	m.engine.SelectSong(m.songs[idx])
	m.tally.Reset()
	m.resumeAfterClose = true
	m.closePicker()
}

// dispatch forwards pending engine events to the sound sink and the tally.
func (m *Model) dispatch() {
	for _, ev := range m.engine.Drain() {
		switch ev.Kind {
		case engine.EventPlayNote:
			m.sink.PlayNote(ev.Note)
		case engine.EventPlayCue:
			m.sink.PlayCue(ev.Cue)
			if ev.Cue == model.CueBoundaryBreach {
				m.tally.RecordBreach()
			}
		case engine.EventHitIndicator:
			m.tally.Record(ev.Indicator.Kind)
		}
	}
}

func (m *Model) muted() bool {
	if mu, ok := m.sink.(muter); ok {
		return !mu.Enabled()
	}
	return false
}

// View implements tea.Model.
func (m *Model) View() string {
	snap := m.engine.Snapshot()
	var body string
	switch {
	case m.pickerOpen:
		body = modalStyle.Render(strings.Join([]string{
			titleStyle.Render("Songs"),
			m.picker.View(),
			m.help.View(pickerKeys{m.keys}),
		}, "\n"))
	case !snap.Running:
		body = renderPause(snap, m.tally, laneCols(snap.Lane))
	default:
		body = lipgloss.JoinVertical(lipgloss.Left,
			renderHUD(snap, m.muted()),
			renderLane(snap, m.laneRows()),
			m.help.View(m.keys),
		)
	}
	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// laneRows fits the lane between the HUD, the border and the help line.
func (m *Model) laneRows() int {
	if m.height == 0 {
		return maxLaneRows
	}
	return max(minLaneRows, min(m.height-4, maxLaneRows))
}
