package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/segstrip/internal/urls"
	"github.com/muurk/segstrip/internal/version"
)

// Application branding constants
const (
	AppName   = "SEGSTRIP"
	GitHubURL = urls.Repository
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout of the demo screen. The container draws a border and a two line
// header above the content, and the strip is indented one column inside it.
const (
	StripOriginX = 2
	StripOriginY = 3
	StripMargin  = 6 // columns lost to borders and indent on both sides
	MaxEvents    = 5
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	WarningColor   = lipgloss.Color("#FFA500") // Orange

	TextColor   = lipgloss.Color("#FFFFFF") // White
	SubtleColor = lipgloss.Color("#626262") // Gray
	BorderColor = lipgloss.Color("#7D56F4") // Purple (same as primary)
)

// Common styles
var (
	// Section title inside the content area
	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	// Status line under the strip
	StatusKeyStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	StatusValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	// Phase badges
	IdleBadgeStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	TrackingBadgeStyle = lipgloss.NewStyle().
				Foreground(WarningColor).
				Bold(true)

	SettlingBadgeStyle = lipgloss.NewStyle().
				Foreground(SecondaryColor).
				Bold(true)

	// Recent selection list
	EventStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			PaddingLeft(2)

	LatestEventStyle = lipgloss.NewStyle().
				Foreground(SecondaryColor).
				Bold(true).
				PaddingLeft(2)
)

// BuildHeaderContent creates header content with app name and GitHub URL
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " v" + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(GitHubURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// BuildFooterContent creates footer content with help text
func BuildFooterContent(helpText string) string {
	return lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(helpText)
}

// RenderApplicationContainer wraps a screen in the bordered full-terminal
// panel: header, content, footer. Content is placed at row StripOriginY
// and column 1 of the terminal.
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	if terminalWidth < 4 || terminalHeight < 4 {
		return content
	}

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderBottom(true).
		BorderForeground(BorderColor).
		Width(terminalWidth-4). // Leave room for outer border
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderTop(true).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth - 4)

	innerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(BuildHeaderContent()),
		contentStyle.Render(content),
		footerStyle.Render(BuildFooterContent(footerText)),
	)

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		borderStyle.Render(innerContent),
	)
}

// RenderPhase renders a gesture phase badge
func RenderPhase(phase string) string {
	switch phase {
	case "tracking":
		return TrackingBadgeStyle.Render(phase)
	case "settling":
		return SettlingBadgeStyle.Render(phase)
	default:
		return IdleBadgeStyle.Render(phase)
	}
}
