package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typefall/internal/model"
	"github.com/verte-zerg/typefall/internal/song"
)

func buildSongTable(songs []model.SongConfig, current string) table.Model {
	columns := []table.Column{
		{Title: "Song", Width: 24},
		{Title: "WPM", Width: 5},
		{Title: "Letter", Width: 8},
		{Title: "Notes", Width: 6},
	}
	rows := make([]table.Row, 0, len(songs))
	cursor := 0
	for i, s := range songs {
		s = song.Normalize(s)
		if s.Name == current {
			cursor = i
		}
		rows = append(rows, table.Row{
			s.Name,
			fmt.Sprintf("%.0f", s.WordsPerMinute),
			song.LetterDelay(s).String(),
			fmt.Sprintf("%d", len(s.Notes)),
		})
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(max(1, min(len(rows), 10))),
		table.WithFocused(true),
	)
	t.SetStyles(songTableStyles())
	t.SetCursor(cursor)
	return t
}

func songTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#C89A3A")).
		Bold(true)
	return styles
}
