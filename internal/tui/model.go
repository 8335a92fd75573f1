package tui

import (
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/segstrip/internal/logging"
	"github.com/muurk/segstrip/internal/strip"
	"github.com/muurk/segstrip/internal/ui"
)

// StripHeight is the number of terminal rows a StripModel draws.
const StripHeight = 2

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// SegmentSelectedMsg reports a selection made by the user.
type SegmentSelectedMsg struct {
	Index int
	Label string
	// Generation of the strip configuration the index belongs to
	Generation int
}

// FrameMsg advances a settle animation by one frame.
type FrameMsg struct {
	id int
}

// surface is the mutable state shared by copies of a StripModel. Bubble Tea
// passes models by value, and the strip holds callbacks into this state.
type surface struct {
	cells    []*Cell
	selected []int // delegate notifications not yet turned into messages

	tracking bool
	pressed  int
	ticking  bool
}

// newCell is the strip's view factory. Configure asks for views in index
// order, so index 0 starts a new set.
func (s *surface) newCell(index int) strip.SegmentView {
	if index == 0 {
		s.cells = s.cells[:0]
	}
	c := &Cell{}
	if index < len(s.cells) {
		s.cells[index] = c
	} else {
		s.cells = append(s.cells, c)
	}
	return c
}

// StripModel is the Bubble Tea component for a segment strip.
type StripModel struct {
	id      int
	strip   *strip.Strip
	surface *surface
	now     func() time.Time

	Keys StripKeyMap
}

// ModelOption configures a StripModel
type ModelOption func(*StripModel)

// WithClock sets the time source used to stamp pan samples.
func WithClock(now func() time.Time) ModelOption {
	return func(m *StripModel) {
		if now != nil {
			m.now = now
		}
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(keys StripKeyMap) ModelOption {
	return func(m *StripModel) {
		m.Keys = keys
	}
}

// NewStripModel creates a strip component for items. The strip has no width
// until SetBounds is called.
func NewStripModel(items []string, stripOpts []strip.Option, opts ...ModelOption) StripModel {
	surf := &surface{pressed: strip.NoSegment}
	m := StripModel{
		id:      nextID(),
		surface: surf,
		now:     time.Now,
		Keys:    DefaultStripKeyMap(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	all := append([]strip.Option{}, stripOpts...)
	all = append(all,
		strip.WithViewFactory(surf.newCell),
		strip.WithDelegate(strip.DelegateFunc(func(index int) {
			surf.selected = append(surf.selected, index)
		})),
	)
	m.strip = strip.New(all...)
	m.strip.Configure(items)
	return m
}

// Strip returns the controller behind the component.
func (m StripModel) Strip() *strip.Strip {
	return m.strip
}

// Cells returns the segment views in index order.
func (m StripModel) Cells() []*Cell {
	return m.surface.cells
}

// SetItems replaces the segments. Selection and scroll reset.
func (m StripModel) SetItems(items []string) {
	m.surface.tracking = false
	m.surface.pressed = strip.NoSegment
	m.surface.selected = nil
	m.surface.cells = nil
	m.strip.Configure(items)
	logging.Debug("strip items replaced", zap.Int("segments", len(items)))
}

// SetBounds places the strip at terminal column x and row y, width columns
// wide.
func (m StripModel) SetBounds(x, y, width int) {
	if width < 0 {
		width = 0
	}
	m.strip.SetFrame(strip.Rect{
		X:      float64(x),
		Y:      float64(y),
		Width:  float64(width),
		Height: StripHeight,
	})
}

// Width returns the strip width in columns.
func (m StripModel) Width() int {
	return int(m.strip.Frame().Width)
}

// Init implements tea.Model
func (m StripModel) Init() tea.Cmd {
	return nil
}

// Update handles mouse, key and frame messages
func (m StripModel) Update(msg tea.Msg) (StripModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.KeyMsg:
		m.handleKey(msg)

	case FrameMsg:
		if msg.id != m.id {
			return m, nil
		}
		m.surface.ticking = false
		m.strip.Step()
	}

	return m, tea.Batch(m.selectionCmd(), m.frameCmd())
}

func (m StripModel) handleMouse(msg tea.MouseMsg) {
	// Pointer positions are cell centers.
	x, y := float64(msg.X)+0.5, float64(msg.Y)+0.5
	ev := strip.PanEvent{X: x, Y: y, Time: m.now()}
	surf := m.surface

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
			if m.strip.Frame().Contains(x, y) {
				m.strip.ScrollBy(-1)
			}
			return
		case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
			if m.strip.Frame().Contains(x, y) {
				m.strip.ScrollBy(1)
			}
			return
		case tea.MouseButtonLeft:
		default:
			return
		}
		if !m.strip.Frame().Contains(x, y) {
			return
		}
		surf.tracking = true
		surf.pressed = m.strip.SegmentAt(x, y)
		ev.Phase = strip.PanBegan

	case tea.MouseActionMotion:
		if !surf.tracking {
			return
		}
		ev.Phase = strip.PanChanged

	case tea.MouseActionRelease:
		if !surf.tracking {
			return
		}
		surf.tracking = false
		// The segment acts like a button: released over itself, it clicks.
		if surf.pressed != strip.NoSegment && m.strip.SegmentAt(x, y) == surf.pressed {
			m.strip.Segment(surf.pressed).Click()
		}
		surf.pressed = strip.NoSegment
		ev.Phase = strip.PanEnded

	default:
		return
	}

	m.strip.HandlePan(ev)
}

func (m StripModel) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.Keys.Prev):
		m.strip.ScrollBy(-1)
	case key.Matches(msg, m.Keys.Next):
		m.strip.ScrollBy(1)
	case key.Matches(msg, m.Keys.More):
		m.strip.SetDisplayCount(m.strip.DisplayCount() + 1)
	case key.Matches(msg, m.Keys.Fewer):
		m.strip.SetDisplayCount(m.strip.DisplayCount() - 1)
	}
}

// selectionCmd turns pending delegate notifications into messages.
func (m StripModel) selectionCmd() tea.Cmd {
	if len(m.surface.selected) == 0 {
		return nil
	}
	gen := m.strip.Generation()
	cmds := make([]tea.Cmd, 0, len(m.surface.selected))
	for _, index := range m.surface.selected {
		sel := SegmentSelectedMsg{Index: index, Generation: gen}
		if seg := m.strip.Segment(index); seg != nil {
			sel.Label = seg.Label()
		}
		cmds = append(cmds, func() tea.Msg { return sel })
	}
	m.surface.selected = nil
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Sequence(cmds...)
}

// frameCmd schedules the next animation frame while the strip settles.
func (m StripModel) frameCmd() tea.Cmd {
	if m.strip.Phase() != strip.PhaseSettling || m.surface.ticking {
		return nil
	}
	m.surface.ticking = true
	id := m.id
	return tea.Tick(strip.FrameInterval(), func(time.Time) tea.Msg {
		return FrameMsg{id: id}
	})
}

// View renders the label row and the indicator row.
func (m StripModel) View() string {
	width := m.Width()
	if width <= 0 {
		return ""
	}
	n := min(len(m.surface.cells), m.strip.NumberOfSegments())
	cells := make([]ui.SegmentCell, 0, n)
	for _, c := range m.surface.cells[:n] {
		cells = append(cells, c.segmentCell())
	}
	return strings.Join([]string{
		ui.RenderSegmentRow(cells, width),
		ui.RenderIndicatorRow(cells, width),
	}, "\n")
}
