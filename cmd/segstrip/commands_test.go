package main

import (
	"testing"

	"github.com/muurk/segstrip/internal/replay"
	"github.com/muurk/segstrip/internal/strip"
)

func TestDragTo(t *testing.T) {
	tests := []struct {
		name       string
		offset     float64
		release    bool
		wantOffset float64
		wantPhase  strip.Phase
	}{
		{"mid drag", 45, false, 45, strip.PhaseTracking},
		{"released", 45, true, 30, strip.PhaseIdle},
		{"past the end", 500, false, 120, strip.PhaseTracking},
		{"tiny drag released", 1, true, 0, strip.PhaseIdle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := strip.NewWithItems(strip.Rect{Width: 90}, []string{"A", "B", "C", "D", "E", "F", "G"})
			dragTo(s, tt.offset, tt.release)

			if got := s.ScrollOffset(); got != tt.wantOffset {
				t.Errorf("ScrollOffset() = %v, want %v", got, tt.wantOffset)
			}
			if got := s.Phase(); got != tt.wantPhase {
				t.Errorf("Phase() = %v, want %v", got, tt.wantPhase)
			}
			if got := s.SelectedSegmentIndex(); got != 0 {
				t.Errorf("SelectedSegmentIndex() = %d, want 0", got)
			}
		})
	}
}

func TestFormatInts(t *testing.T) {
	if got := formatInts(nil); got != "-" {
		t.Errorf("formatInts(nil) = %q, want -", got)
	}
	if got := formatInts([]int{3, 1}); got != "3, 1" {
		t.Errorf("formatInts() = %q, want \"3, 1\"", got)
	}
}

func TestStepRows(t *testing.T) {
	report := &replay.Report{Steps: []replay.StepReport{
		{Step: 0, Action: "scroll_by", Offset: 30, Selected: 0, First: 1, Last: 3},
		{Step: 1, Action: "click", Offset: 30, Selected: 2, First: 1, Last: 3, Notified: []int{2}},
		{Step: 2, Action: "configure", Selected: strip.NoSegment, First: strip.NoSegment, Last: strip.NoSegment},
	}}

	rows := stepRows(report)
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}
	want := []string{"2", "click", "30.00", "2", "idle", "1-3", "2"}
	for i, cell := range want {
		if rows[1][i] != cell {
			t.Errorf("rows[1][%d] = %q, want %q", i, rows[1][i], cell)
		}
	}
	if rows[2][5] != "none" {
		t.Errorf("visible for empty strip = %q, want none", rows[2][5])
	}
}
