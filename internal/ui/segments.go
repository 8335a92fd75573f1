package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/muurk/segstrip/internal/strip"
)

// SegmentCell is what the row renderer needs to know about one segment.
type SegmentCell struct {
	Label     string
	X, Width  float64 // relative to the row's first column
	Selected  bool
	Style     lipgloss.Style
	Highlight lipgloss.TerminalColor
}

// LabelStyle returns the lipgloss style for a label font and color.
func LabelStyle(font strip.Font, fg lipgloss.TerminalColor) lipgloss.Style {
	style := lipgloss.NewStyle().
		Bold(font.Bold).
		Italic(font.Italic).
		Underline(font.Underline).
		Faint(font.Faint)
	if fg != nil {
		style = style.Foreground(fg)
	}
	return style
}

// CellsFromStrip builds row cells for every segment of s.
func CellsFromStrip(s *strip.Strip) []SegmentCell {
	cells := make([]SegmentCell, 0, s.NumberOfSegments())
	for i := 0; i < s.NumberOfSegments(); i++ {
		seg := s.Segment(i)
		cells = append(cells, SegmentCell{
			Label:     seg.Label(),
			X:         seg.X(),
			Width:     seg.Width(),
			Selected:  seg.IsSelected(),
			Style:     LabelStyle(seg.Font(), seg.CurrentColor()),
			Highlight: seg.HighlightColor(),
		})
	}
	return cells
}

// columns returns the rounded [left, right) columns of a cell.
func (c SegmentCell) columns() (int, int) {
	return int(math.Round(c.X)), int(math.Round(c.X + c.Width))
}

// RenderSegmentRow draws the labels of cells into exactly width columns.
// Each label is centered in its segment, truncated with an ellipsis when it
// does not fit, and clipped at the row edges.
func RenderSegmentRow(cells []SegmentCell, width int) string {
	return renderRow(cells, width, func(c SegmentCell, cellWidth, from, to int) string {
		text := FitLabel(c.Label, cellWidth)
		return c.Style.Render(CutColumns(text, from, to))
	})
}

// RenderIndicatorRow draws a rule under every segment, heavy and highlighted
// under the selected one.
func RenderIndicatorRow(cells []SegmentCell, width int) string {
	return renderRow(cells, width, func(c SegmentCell, _, from, to int) string {
		n := to - from
		if c.Selected {
			style := lipgloss.NewStyle().Foreground(PrimaryColor)
			if c.Highlight != nil {
				style = style.Foreground(c.Highlight)
			}
			return style.Render(strings.Repeat(IndicatorSelected, n))
		}
		// leave a one column gap before each unselected segment
		if from == 0 && n > 1 {
			return " " + IndicatorStyle.Render(strings.Repeat(IndicatorUnselected, n-1))
		}
		return IndicatorStyle.Render(strings.Repeat(IndicatorUnselected, n))
	})
}

func renderRow(cells []SegmentCell, width int, draw func(c SegmentCell, cellWidth, from, to int) string) string {
	if width <= 0 {
		return ""
	}
	var b strings.Builder
	col := 0
	for _, c := range cells {
		left, right := c.columns()
		a, z := max(left, col), min(right, width)
		if z <= a {
			continue
		}
		if a > col {
			b.WriteString(strings.Repeat(" ", a-col))
		}
		b.WriteString(draw(c, right-left, a-left, z-left))
		col = z
		if col >= width {
			break
		}
	}
	if col < width {
		b.WriteString(strings.Repeat(" ", width-col))
	}
	return b.String()
}

// FitLabel centers label in width columns, truncating with an ellipsis when
// it is too wide. The result is exactly width columns wide.
func FitLabel(label string, width int) string {
	if width <= 0 {
		return ""
	}
	w := runewidth.StringWidth(label)
	if w > width {
		label = runewidth.Truncate(label, width, Ellipsis)
		w = runewidth.StringWidth(label)
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + label + strings.Repeat(" ", width-w-left)
}

// CutColumns returns the columns [from, to) of s. Wide runes straddling a
// boundary are replaced by spaces so the result is exactly to-from columns.
func CutColumns(s string, from, to int) string {
	if to <= from {
		return ""
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		start, end := col, col+rw
		col = end
		if rw == 0 {
			if start > from && start <= to {
				b.WriteRune(r)
			}
			continue
		}
		switch {
		case start >= from && end <= to:
			b.WriteRune(r)
		case end > from && start < to:
			b.WriteString(strings.Repeat(" ", min(end, to)-max(start, from)))
		}
		if col >= to {
			break
		}
	}
	if col < to {
		b.WriteString(strings.Repeat(" ", to-max(col, from)))
	}
	return b.String()
}
