package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/segstrip/internal/strip"
)

// CurrentVersion is the configuration file format version.
const CurrentVersion = 1

// ErrUnsupportedVersion is returned when a file declares another format version.
var ErrUnsupportedVersion = errors.New("unsupported config version")

// Config represents the entire configuration file.
type Config struct {
	Version    int         `yaml:"version"`
	Items      []string    `yaml:"items"`
	Appearance *Appearance `yaml:"appearance,omitempty"`
	Gesture    *Gesture    `yaml:"gesture,omitempty"`
}

// Appearance holds the strip's visual settings.
type Appearance struct {
	DisplayCount   int        `yaml:"display_count"`             // Segments visible at once
	TextColor      string     `yaml:"text_color,omitempty"`      // Label color, hex or ANSI index
	HighlightColor string     `yaml:"highlight_color,omitempty"` // Selected label color
	Font           strip.Font `yaml:"font"`
}

// Gesture holds pan gesture tuning.
type Gesture struct {
	ClickThreshold float64 `yaml:"click_threshold"` // Displacement (cells) below which a pan is a tap
	TieBreak       string  `yaml:"tie_break"`       // velocity, down or up
	Animate        bool    `yaml:"animate"`         // Spring-animate the snap after release
}

// ValidationError describes an invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// DefaultItems are shown when no items are configured.
var DefaultItems = []string{"Inbox", "Drafts", "Sent", "Archive", "Spam", "Trash", "Starred"}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	items := make([]string, len(DefaultItems))
	copy(items, DefaultItems)
	return &Config{
		Version: CurrentVersion,
		Items:   items,
		Appearance: &Appearance{
			DisplayCount:   strip.DefaultDisplayCount,
			TextColor:      "#FFFFFF",
			HighlightColor: "#7D56F4",
			Font:           strip.Font{Bold: true},
		},
		Gesture: &Gesture{
			ClickThreshold: strip.DefaultClickThreshold,
			TieBreak:       strip.TieBreakVelocity.String(),
			Animate:        true,
		},
	}
}

// applyDefaults fills fields and sections missing from a loaded file. An
// explicit empty items list is kept.
func (c *Config) applyDefaults() {
	defaults := NewConfig()
	if c.Version == 0 {
		c.Version = CurrentVersion
	}
	if c.Items == nil {
		c.Items = defaults.Items
	}
	if c.Appearance == nil {
		c.Appearance = defaults.Appearance
	}
	if c.Appearance.DisplayCount == 0 {
		c.Appearance.DisplayCount = strip.DefaultDisplayCount
	}
	if c.Gesture == nil {
		c.Gesture = defaults.Gesture
	}
	if c.Gesture.ClickThreshold == 0 {
		c.Gesture.ClickThreshold = strip.DefaultClickThreshold
	}
}

// Validate checks field ranges. It does not modify the config.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("%w: %d (expected %d)", ErrUnsupportedVersion, c.Version, CurrentVersion)
	}
	if c.Appearance != nil && c.Appearance.DisplayCount < 1 {
		return &ValidationError{Field: "appearance.display_count", Message: "must be at least 1"}
	}
	if c.Gesture != nil {
		if c.Gesture.ClickThreshold <= 0 {
			return &ValidationError{Field: "gesture.click_threshold", Message: "must be positive"}
		}
		if _, ok := strip.ParseTieBreak(c.Gesture.TieBreak); !ok {
			return &ValidationError{
				Field:   "gesture.tie_break",
				Message: fmt.Sprintf("%q is not one of velocity, down, up", c.Gesture.TieBreak),
			}
		}
	}
	return nil
}

// StripOptions converts the configuration into strip construction options.
func (c *Config) StripOptions() []strip.Option {
	var opts []strip.Option
	if a := c.Appearance; a != nil {
		opts = append(opts,
			strip.WithDisplayCount(a.DisplayCount),
			strip.WithFont(a.Font),
			strip.WithColors(colorOrNil(a.TextColor), colorOrNil(a.HighlightColor)),
		)
	}
	if g := c.Gesture; g != nil {
		tb, _ := strip.ParseTieBreak(g.TieBreak)
		opts = append(opts,
			strip.WithClickThreshold(g.ClickThreshold),
			strip.WithTieBreak(tb),
			strip.WithAnimation(g.Animate),
		)
	}
	return opts
}

// colorOrNil maps an empty string to nil so the strip keeps its default.
func colorOrNil(s string) lipgloss.TerminalColor {
	if s == "" {
		return nil
	}
	return lipgloss.Color(s)
}
