package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/typefall/internal/model"
)

// slotWidth is the number of terminal cells per lane letter slot.
const slotWidth = 2

type cell struct {
	text  string
	style lipgloss.Style
	// width is 0 for the trailing half of a wide rune.
	width int
}

// canvas is a fixed grid of styled terminal cells.
type canvas struct {
	cols  int
	rows  int
	cells [][]cell
}

func newCanvas(cols, rows int) *canvas {
	c := &canvas{cols: max(cols, 1), rows: max(rows, 1)}
	c.cells = make([][]cell, c.rows)
	for i := range c.cells {
		row := make([]cell, c.cols)
		for j := range row {
			row[j] = cell{text: " ", style: blankStyle, width: 1}
		}
		c.cells[i] = row
	}
	return c
}

// put writes text starting at col, clipping anything outside the grid.
func (c *canvas) put(row, col int, text string, style lipgloss.Style) {
	if row < 0 || row >= c.rows {
		return
	}
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col < 0 {
			col += w
			continue
		}
		if col+w > c.cols {
			return
		}
		c.cells[row][col] = cell{text: string(r), style: style, width: w}
		for i := 1; i < w; i++ {
			c.cells[row][col+i] = cell{}
		}
		col += w
	}
}

func (c *canvas) fillRow(row int, r rune, style lipgloss.Style) {
	if row < 0 || row >= c.rows {
		return
	}
	w := max(runewidth.RuneWidth(r), 1)
	c.put(row, 0, strings.Repeat(string(r), c.cols/w), style)
}

func (c *canvas) String() string {
	lines := make([]string, c.rows)
	for i, row := range c.cells {
		var b strings.Builder
		for _, cl := range row {
			if cl.width == 0 {
				continue
			}
			b.WriteString(cl.style.Render(cl.text))
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}

// laneCols returns the canvas width for a lane.
func laneCols(lane model.LaneConfig) int {
	return int(lane.Width/lane.LetterSpacing) * slotWidth
}

// lineRow maps a vertical lane offset to a canvas row.
func lineRow(lane model.LaneConfig, rows int, y float64) int {
	r := int(y / lane.Height * float64(rows))
	return max(0, min(r, rows-1))
}

// letterRow maps a letter by its vertical center, the point hits are judged on.
func letterRow(lane model.LaneConfig, rows int, top float64) int {
	return lineRow(lane, rows, top+lane.LetterHeight/2)
}

func slotCol(lane model.LaneConfig, left float64) int {
	return int(left/lane.LetterSpacing) * slotWidth
}
