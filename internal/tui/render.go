package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typefall/internal/engine"
	"github.com/verte-zerg/typefall/internal/model"
	"github.com/verte-zerg/typefall/internal/stats"
)

var (
	blankStyle  = lipgloss.NewStyle()
	targetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true).Underline(true)
	hudStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C0C0C0"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	laneStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#4A4A4A"))
	modalStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#C89A3A")).Padding(1, 2)
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))

	// Indexed by word index parity.
	wordStyles = [2]lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("#5CC8FF")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#FF9F5C")),
	}

	indicatorStyles = map[model.Judgement]lipgloss.Style{
		model.Perfect: lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true),
		model.Ok:      lipgloss.NewStyle().Foreground(lipgloss.Color("#A0D911")),
		model.Bad:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FAAD14")),
		model.Miss:    lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")),
		model.Wrong:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true),
	}
)

func indicatorLabel(j model.Judgement) string {
	return strings.ToUpper(j.String())
}

// renderLane draws letters, the target line and hit indicators.
func renderLane(snap engine.Snapshot, rows int) string {
	lane := snap.Lane
	c := newCanvas(laneCols(lane), rows)
	c.fillRow(lineRow(lane, c.rows, lane.TargetLine()), '─', targetStyle)

	for _, ind := range snap.Indicators {
		c.put(letterRow(lane, c.rows, ind.Y), slotCol(lane, ind.X), indicatorLabel(ind.Kind), indicatorStyles[ind.Kind])
	}
	for _, l := range snap.Letters {
		style := wordStyles[l.WordIndex%2]
		if l.Active {
			style = activeStyle
		}
		c.put(letterRow(lane, c.rows, l.Top), slotCol(lane, l.Left), string(l.Char), style)
	}
	return laneStyle.Render(c.String())
}

// renderHUD shows the song and score line.
func renderHUD(snap engine.Snapshot, muted bool) string {
	sc := snap.Score
	segments := []string{
		titleStyle.Render(snap.Song.Name),
		fmt.Sprintf("Score %d", sc.Score),
		fmt.Sprintf("x%d", sc.Multiplier),
		fmt.Sprintf("Combo %d", sc.Combo),
		fmt.Sprintf("Acc %.1f%%", sc.Accuracy),
	}
	line := hudStyle.Render(strings.Join(segments, "  "))
	var status []string
	if snap.Locked {
		status = append(status, "LOCKED")
	}
	if snap.Frozen {
		status = append(status, "FROZEN")
	}
	if muted {
		status = append(status, "MUTED")
	}
	if len(status) > 0 {
		line += "  " + statusStyle.Render(strings.Join(status, " "))
	}
	return line
}

// renderPause shows the session summary while the game is paused.
func renderPause(snap engine.Snapshot, tally *stats.Tally, width int) string {
	lines := []string{titleStyle.Render("Paused"), ""}
	lines = append(lines, stats.TallyLines(tally, snap.Score)...)
	if trend := tally.Trend(trendWindow, max(width, 10)); trend != "" {
		lines = append(lines, "", "Hit rate: "+trend)
	}
	lines = append(lines, "", footerStyle.Render("esc: resume  tab: songs  ctrl+c: quit"))
	return modalStyle.Render(strings.Join(lines, "\n"))
}
