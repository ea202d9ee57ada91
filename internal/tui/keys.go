package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/typefall/internal/engine"
)

// Every printable key is game input, so controls avoid letters.
type keyMap struct {
	Pause  key.Binding
	Songs  key.Binding
	Select key.Binding
	Close  key.Binding
	Mute   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Pause:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "pause")),
		Songs:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "songs")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "play song")),
		Close:  key.NewBinding(key.WithKeys("esc", "tab"), key.WithHelp("esc", "back")),
		Mute:   key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "mute")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Songs, k.Mute, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Select, k.Close}}
}

// pickerKeys is the help shown while the song picker is open.
type pickerKeys struct{ keyMap }

func (k pickerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Close, k.Quit}
}

// keyRunes extracts the runes a key message feeds to the judge. Space,
// pasted text and non-printable keys never reach it.
func keyRunes(msg tea.KeyMsg) []rune {
	if msg.Type != tea.KeyRunes || msg.Paste || msg.Alt {
		return nil
	}
	out := make([]rune, 0, len(msg.Runes))
	for _, r := range msg.Runes {
		if !engine.Ignored(r) {
			out = append(out, r)
		}
	}
	return out
}
