package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/segstrip/internal/strip"
	"github.com/muurk/segstrip/internal/ui"
)

// AppModel is the full-screen strip demo
type AppModel struct {
	Strip StripModel

	// Most recent selections, newest first
	Events []SegmentSelectedMsg

	// UI state
	Width  int
	Height int

	Help help.Model
	Keys appKeyMap
}

// NewAppModel creates the demo around items
func NewAppModel(items []string, stripOpts []strip.Option, opts ...ModelOption) AppModel {
	keys := defaultAppKeyMap()
	opts = append([]ModelOption{WithKeyMap(keys.StripKeyMap)}, opts...)
	return AppModel{
		Strip: NewStripModel(items, stripOpts, opts...),
		Help:  help.New(),
		Keys:  keys,
	}
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	return m.Strip.Init()
}

// Update handles all messages and routes the rest to the strip
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		m.Strip.SetBounds(StripOriginX, StripOriginY, msg.Width-StripMargin)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.Keys.Help):
			m.Help.ShowAll = !m.Help.ShowAll
			return m, nil
		}

	case SegmentSelectedMsg:
		m.Events = append([]SegmentSelectedMsg{msg}, m.Events...)
		if len(m.Events) > MaxEvents {
			m.Events = m.Events[:MaxEvents]
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.Strip, cmd = m.Strip.Update(msg)
	return m, cmd
}

// View renders the demo screen
func (m AppModel) View() string {
	if m.Width == 0 {
		return "Loading..."
	}
	return RenderApplicationContainer(m.buildContent(), m.Help.View(m.Keys), m.Width, m.Height)
}

func (m AppModel) buildContent() string {
	var b strings.Builder

	// The strip must stay on the first content rows; StripOriginY depends on it.
	for _, line := range strings.Split(m.Strip.View(), "\n") {
		b.WriteString(" " + line + "\n")
	}
	b.WriteString("\n")
	b.WriteString(" " + m.renderStatus() + "\n\n")

	b.WriteString(" " + SectionTitleStyle.Render("Selections") + "\n")
	if len(m.Events) == 0 {
		b.WriteString(EventStyle.Render(StatusKeyStyle.Render("tap a segment")) + "\n")
	}
	for i, ev := range m.Events {
		line := fmt.Sprintf("%s %d  %s", ui.SelectedMarker, ev.Index, ev.Label)
		if i == 0 {
			b.WriteString(LatestEventStyle.Render(line) + "\n")
			continue
		}
		b.WriteString(EventStyle.Render(line) + "\n")
	}
	return b.String()
}

// renderStatus renders the strip geometry and gesture phase on one line
func (m AppModel) renderStatus() string {
	s := m.Strip.Strip()
	parts := []string{RenderPhase(s.Phase().String())}
	for _, d := range ui.LayoutSummary(s) {
		if d.Key == "Segments" || d.Key == "Segment width" {
			continue
		}
		parts = append(parts, StatusKeyStyle.Render(strings.ToLower(d.Key)+" ")+StatusValueStyle.Render(d.Value))
	}
	return strings.Join(parts, StatusKeyStyle.Render(" · "))
}
