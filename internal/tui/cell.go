package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/segstrip/internal/strip"
	"github.com/muurk/segstrip/internal/ui"
)

// Cell is the terminal view of one segment. The strip pushes every state
// change into it; the model renders from cells, never from the strip.
type Cell struct {
	text      string
	font      strip.Font
	fg        lipgloss.TerminalColor
	highlight lipgloss.TerminalColor
	selected  bool
	x, width  float64
}

var _ strip.SegmentView = (*Cell)(nil)

// SetText sets the label.
func (c *Cell) SetText(text string) { c.text = text }

// SetFont sets the label font.
func (c *Cell) SetFont(font strip.Font) { c.font = font }

// SetColors sets the normal and selected label colors.
func (c *Cell) SetColors(text, highlight lipgloss.TerminalColor) {
	c.fg = text
	c.highlight = highlight
}

// SetSelected sets the selected state.
func (c *Cell) SetSelected(selected bool) { c.selected = selected }

// SetFrame sets the horizontal position and width relative to the strip.
func (c *Cell) SetFrame(x, width float64) {
	c.x = x
	c.width = width
}

// Text returns the label.
func (c *Cell) Text() string { return c.text }

// Selected reports whether the cell shows the selected state.
func (c *Cell) Selected() bool { return c.selected }

// Frame returns the horizontal position and width.
func (c *Cell) Frame() (x, width float64) { return c.x, c.width }

func (c *Cell) segmentCell() ui.SegmentCell {
	color := c.fg
	if c.selected {
		color = c.highlight
	}
	return ui.SegmentCell{
		Label:     c.text,
		X:         c.x,
		Width:     c.width,
		Selected:  c.selected,
		Style:     ui.LabelStyle(c.font, color),
		Highlight: c.highlight,
	}
}
