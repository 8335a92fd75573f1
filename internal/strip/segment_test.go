package strip

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

type fakeView struct {
	text      string
	font      Font
	fg        lipgloss.TerminalColor
	highlight lipgloss.TerminalColor
	selected  bool
	x, width  float64
	updates   int
}

func (v *fakeView) SetText(text string) { v.text = text; v.updates++ }
func (v *fakeView) SetFont(font Font)   { v.font = font; v.updates++ }
func (v *fakeView) SetColors(text, highlight lipgloss.TerminalColor) {
	v.fg, v.highlight = text, highlight
	v.updates++
}
func (v *fakeView) SetSelected(selected bool) { v.selected = selected; v.updates++ }
func (v *fakeView) SetFrame(x, width float64) { v.x, v.width = x, width; v.updates++ }

type countingReporter struct {
	clicks []int
}

func (r *countingReporter) didReceiveClick(index int) {
	r.clicks = append(r.clicks, index)
}

func TestSegmentClickReportsIndexOnce(t *testing.T) {
	rep := &countingReporter{}
	seg := newSegment(4, "E", rep)

	seg.Click()
	assert.Equal(t, []int{4}, rep.clicks)

	seg.detach()
	seg.Click()
	assert.Equal(t, []int{4}, rep.clicks, "detached segments report nothing")
}

func TestSegmentSetSelectedIsLocal(t *testing.T) {
	rep := &countingReporter{}
	seg := newSegment(0, "A", rep)

	seg.SetSelected(true)
	assert.True(t, seg.IsSelected())
	assert.Equal(t, DefaultHighlightColor, seg.CurrentColor())
	assert.Empty(t, rep.clicks)

	seg.SetSelected(false)
	assert.Equal(t, DefaultTextColor, seg.CurrentColor())
}

func TestSegmentAppearanceIgnoresNil(t *testing.T) {
	seg := newSegment(0, "A", nil)
	seg.SetFont(&Font{Italic: true})
	seg.SetColors(lipgloss.Color("1"), lipgloss.Color("2"))

	seg.SetFont(nil)
	seg.SetColors(nil, nil)
	seg.SetColors(nil, lipgloss.Color("3"))

	assert.True(t, seg.Font().Italic)
	assert.Equal(t, lipgloss.Color("1"), seg.TextColor())
	assert.Equal(t, lipgloss.Color("3"), seg.HighlightColor())

	seg.SetText("")
	assert.Equal(t, "", seg.Label())
}

func TestSegmentViewReceivesState(t *testing.T) {
	var views []*fakeView
	s := NewWithItems(Rect{Width: 90}, []string{"A", "B", "C", "D"},
		WithFont(Font{Underline: true}),
		WithViewFactory(func(index int) SegmentView {
			v := &fakeView{}
			views = append(views, v)
			return v
		}),
	)

	if !assert.Len(t, views, 4) {
		return
	}
	assert.Equal(t, "C", views[2].text)
	assert.True(t, views[2].font.Underline)
	assert.True(t, views[0].selected)
	assert.Equal(t, 60.0, views[2].x)
	assert.Equal(t, 30.0, views[2].width)

	s.SelectSegment(3, WithScrollToVisible())
	assert.False(t, views[0].selected)
	assert.True(t, views[3].selected)
	assert.Equal(t, 30.0, views[2].x)

	s.Segment(1).SetText("Bee")
	assert.Equal(t, "Bee", views[1].text)

	s.SetHighlightTextColor(lipgloss.Color("#00FF00"))
	assert.Equal(t, lipgloss.Color("#00FF00"), views[1].highlight)
	assert.Equal(t, DefaultTextColor, views[1].fg)
}

func TestSegmentFrameUpdateSkipsUnchanged(t *testing.T) {
	v := &fakeView{}
	seg := newSegment(0, "A", nil)
	seg.Attach(v)
	before := v.updates

	seg.setFrame(0, 0)
	assert.Equal(t, before, v.updates)

	seg.setFrame(5, 10)
	assert.Equal(t, before+1, v.updates)
}
