package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/muurk/segstrip/internal/strip"
)

// Visibility classifies how much of a segment is inside the viewport.
type Visibility int

const (
	Hidden Visibility = iota
	Partial
	Full
)

// String returns the visibility name.
func (v Visibility) String() string {
	switch v {
	case Full:
		return "full"
	case Partial:
		return "partial"
	default:
		return "hidden"
	}
}

// SegmentVisibility classifies a segment against a viewport of the given width.
func SegmentVisibility(seg strip.SegmentState, viewport float64) Visibility {
	const eps = 1e-9
	left, right := seg.X, seg.X+seg.Width
	switch {
	case right <= eps || left >= viewport-eps:
		return Hidden
	case left >= -eps && right <= viewport+eps:
		return Full
	default:
		return Partial
	}
}

// RenderLayoutTable renders the per-segment geometry of s.
func RenderLayoutTable(s *strip.Strip) string {
	states := s.Segments()
	viewport := s.Frame().Width

	rows := make([][]string, 0, len(states))
	for _, seg := range states {
		mark := ""
		if seg.Selected {
			mark = SelectedMarker
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", seg.Index),
			seg.Label,
			fmt.Sprintf("%.2f", seg.X),
			fmt.Sprintf("%.2f", seg.Width),
			SegmentVisibility(seg, viewport).String(),
			mark,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(MutedColor)).
		Headers("#", "LABEL", "X", "WIDTH", "VISIBLE", "SEL").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return TableHeaderStyle.Padding(0, 1)
			}
			if row < 0 || row >= len(states) {
				return base
			}
			seg := states[row]
			switch {
			case seg.Selected:
				return TableSelectedStyle.Padding(0, 1)
			case SegmentVisibility(seg, viewport) == Hidden:
				return TableHiddenStyle.Padding(0, 1)
			}
			return base
		})
	return t.Render()
}

// LayoutSummary returns the strip-level geometry as ordered details.
func LayoutSummary(s *strip.Strip) []Detail {
	first, last := s.VisibleRange()
	visible := "none"
	if first != strip.NoSegment {
		visible = fmt.Sprintf("%d-%d", first, last)
	}
	return []Detail{
		{Key: "Segments", Value: fmt.Sprintf("%d", s.NumberOfSegments())},
		{Key: "Display count", Value: fmt.Sprintf("%d (effective %d)", s.DisplayCount(), s.EffectiveDisplayCount())},
		{Key: "Segment width", Value: fmt.Sprintf("%.2f", s.SegmentWidth())},
		{Key: "Scroll offset", Value: fmt.Sprintf("%.2f / %.2f", s.ScrollOffset(), s.MaxOffset())},
		{Key: "Visible", Value: visible},
		{Key: "Selected", Value: selectedLabel(s)},
	}
}

func selectedLabel(s *strip.Strip) string {
	i := s.SelectedSegmentIndex()
	if i == strip.NoSegment {
		return "none"
	}
	return fmt.Sprintf("%d (%s)", i, s.Segment(i).Label())
}

// RenderTable renders rows under headers in the layout table style.
func RenderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(MutedColor)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	return t.Render()
}
