package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/muurk/segstrip/internal/strip"
)

func TestFitLabel(t *testing.T) {
	tests := []struct {
		label string
		width int
		want  string
	}{
		{"A", 5, "  A  "},
		{"AB", 5, " AB  "},
		{"Archive", 5, "Arch…"},
		{"", 3, "   "},
		{"X", 0, ""},
		{"日本", 6, " 日本 "},
	}

	for _, tt := range tests {
		got := FitLabel(tt.label, tt.width)
		if got != tt.want {
			t.Errorf("FitLabel(%q, %d) = %q, want %q", tt.label, tt.width, got, tt.want)
		}
		if w := runewidth.StringWidth(got); w != tt.width {
			t.Errorf("FitLabel(%q, %d) width = %d", tt.label, tt.width, w)
		}
	}
}

func TestCutColumns(t *testing.T) {
	tests := []struct {
		s        string
		from, to int
		want     string
	}{
		{"abcdef", 1, 4, "bcd"},
		{"abcdef", 0, 6, "abcdef"},
		{"abc", 1, 6, "bc   "},
		{"abc", 4, 6, "  "},
		{"a日b", 2, 4, " b"},
		{"a日b", 0, 2, "a "},
		{"abc", 2, 2, ""},
	}

	for _, tt := range tests {
		got := CutColumns(tt.s, tt.from, tt.to)
		if got != tt.want {
			t.Errorf("CutColumns(%q, %d, %d) = %q, want %q", tt.s, tt.from, tt.to, got, tt.want)
		}
	}
}

func plainCells(labels []string, width, offset float64) []SegmentCell {
	cells := make([]SegmentCell, len(labels))
	for i, l := range labels {
		cells[i] = SegmentCell{
			Label: l,
			X:     float64(i)*width - offset,
			Width: width,
			Style: lipgloss.NewStyle(),
		}
	}
	return cells
}

func TestRenderSegmentRow(t *testing.T) {
	row := ansi.Strip(RenderSegmentRow(plainCells([]string{"A", "B", "C"}, 30, 0), 90))

	want := FitLabel("A", 30) + FitLabel("B", 30) + FitLabel("C", 30)
	if row != want {
		t.Errorf("RenderSegmentRow() = %q, want %q", row, want)
	}
}

func TestRenderSegmentRowScrolled(t *testing.T) {
	row := ansi.Strip(RenderSegmentRow(plainCells([]string{"A", "B", "C", "D", "E"}, 30, 15), 90))

	if len(row) != 90 {
		t.Fatalf("row width = %d, want 90", len(row))
	}
	if strings.Contains(row, "A") || strings.Contains(row, "E") {
		t.Errorf("row %q should not show clipped labels A or E", row)
	}
	for label, col := range map[string]int{"B": 29, "C": 59, "D": 89} {
		if got := strings.Index(row, label); got != col {
			t.Errorf("label %s at column %d, want %d", label, got, col)
		}
	}
}

func TestRenderSegmentRowFractionalWidths(t *testing.T) {
	// 80 columns split three ways: edges round to 0, 27, 53, 80
	for offset := 0.0; offset <= 60; offset += 3.3 {
		row := ansi.Strip(RenderSegmentRow(plainCells([]string{"One", "Two", "Three", "Four", "Five"}, 80.0/3, offset), 80))
		if w := runewidth.StringWidth(row); w != 80 {
			t.Errorf("offset %.1f: row width = %d, want 80", offset, w)
		}
	}
}

func TestRenderSegmentRowPadsShortStrip(t *testing.T) {
	row := ansi.Strip(RenderSegmentRow(plainCells([]string{"A"}, 20, 0), 50))
	if len(row) != 50 {
		t.Errorf("row width = %d, want 50", len(row))
	}
	if RenderSegmentRow(nil, 0) != "" {
		t.Error("zero-width row should be empty")
	}
}

func TestRenderIndicatorRow(t *testing.T) {
	cells := plainCells([]string{"A", "B", "C"}, 10, 0)
	cells[1].Selected = true

	row := ansi.Strip(RenderIndicatorRow(cells, 30))
	if runewidth.StringWidth(row) != 30 {
		t.Fatalf("indicator width = %d, want 30", runewidth.StringWidth(row))
	}
	if got := strings.Count(row, IndicatorSelected); got != 10 {
		t.Errorf("selected rule length = %d, want 10", got)
	}
	if !strings.HasPrefix(row, " "+IndicatorUnselected) {
		t.Errorf("indicator %q should start with a gap", row)
	}
}

func TestCellsFromStrip(t *testing.T) {
	s := strip.NewWithItems(strip.Rect{Width: 60}, []string{"A", "B", "C", "D"})
	s.SelectSegment(2)

	cells := CellsFromStrip(s)
	if len(cells) != 4 {
		t.Fatalf("CellsFromStrip() len = %d, want 4", len(cells))
	}
	if !cells[2].Selected || cells[0].Selected {
		t.Error("selection not carried into cells")
	}
	if cells[3].X != 60 || cells[3].Width != 20 {
		t.Errorf("cell 3 geometry = %v/%v, want 60/20", cells[3].X, cells[3].Width)
	}
}
