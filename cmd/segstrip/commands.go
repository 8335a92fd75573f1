package main

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/segstrip/internal/config"
	"github.com/muurk/segstrip/internal/logging"
	"github.com/muurk/segstrip/internal/replay"
	"github.com/muurk/segstrip/internal/strip"
	"github.com/muurk/segstrip/internal/tui"
	"github.com/muurk/segstrip/internal/ui"
	"github.com/muurk/segstrip/internal/urls"
)

// Command flags
var (
	configPath  string
	items       []string
	display     int
	noAnimation bool

	layoutWidth  int
	layoutOffset float64
	layoutSnap   bool
	layoutSelect int

	forceInit bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: user config directory)")

	// Strip flags shared by demo and layout
	for _, cmd := range []*cobra.Command{rootCmd, demoCmd, layoutCmd} {
		cmd.Flags().StringSliceVar(&items, "items", nil, "Comma separated segment labels (overrides config)")
		cmd.Flags().IntVar(&display, "display", 0, "Segments visible at once (overrides config)")
	}
	for _, cmd := range []*cobra.Command{rootCmd, demoCmd} {
		cmd.Flags().BoolVar(&noAnimation, "no-animation", false, "Snap immediately instead of animating")
	}

	layoutCmd.Flags().IntVar(&layoutWidth, "width", 0, "Strip width in columns (default: terminal width)")
	layoutCmd.Flags().Float64Var(&layoutOffset, "offset", 0, "Drag the strip to this scroll offset")
	layoutCmd.Flags().BoolVar(&layoutSnap, "snap", false, "Release the drag so the strip snaps")
	layoutCmd.Flags().IntVar(&layoutSelect, "select", strip.NoSegment, "Select this segment and scroll it into view")

	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")

	configCmd.AddCommand(configInitCmd, configShowCmd, configPathCmd)
	rootCmd.AddCommand(demoCmd, layoutCmd, replayCmd, configCmd)
}

// loadConfig loads the config file and applies command line overrides
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if len(items) > 0 {
		cfg.Items = items
	}
	if display != 0 {
		cfg.Appearance.DisplayCount = display
	}
	if noAnimation {
		cfg.Gesture.Animate = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// demoCmd launches the interactive strip
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the interactive strip demo",
	Long: `Run the full-screen strip demo.

Drag the strip with the left mouse button, tap a segment to select it,
page with the arrow keys or the mouse wheel, and change the number of
visible segments with + and -.`,
	Example: `  # Demo with the configured items
  segstrip demo

  # Custom items, two at a time, no snap animation
  segstrip demo --items red,green,blue,cyan --display 2 --no-animation`,
	RunE: runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logging.Info("starting demo", zap.Int("segments", len(cfg.Items)))

	app := tui.NewAppModel(cfg.Items, cfg.StripOptions())
	program := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("demo failed: %w", err)
	}
	return nil
}

// layoutCmd prints the geometry of a strip
var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the segment layout of a strip",
	Long: `Lay out a strip and print every segment's position and width.

With --offset the strip is dragged to that scroll offset and left mid-drag,
showing partially visible segments. Add --snap to release the drag and see
where the strip settles.`,
	Example: `  # Seven items, three visible, 90 columns
  segstrip layout --width 90

  # Halfway between two pages, then snapped
  segstrip layout --width 90 --offset 45
  segstrip layout --width 90 --offset 45 --snap`,
	RunE: runLayout,
}

func runLayout(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p := ui.NewPrinter(cmd.OutOrStdout())

	width := layoutWidth
	if width <= 0 {
		width = p.Width() - 4
	}
	if width <= 0 {
		return fmt.Errorf("invalid width %d", width)
	}

	s := strip.NewWithItems(strip.Rect{Width: float64(width)}, cfg.Items, cfg.StripOptions()...)
	s.SetAnimated(false)
	if layoutSelect != strip.NoSegment {
		if s.Segment(layoutSelect) == nil {
			return fmt.Errorf("no segment %d (have %d)", layoutSelect, s.NumberOfSegments())
		}
		s.SelectSegment(layoutSelect, strip.WithScrollToVisible())
	}
	if layoutOffset != 0 {
		dragTo(s, layoutOffset, layoutSnap)
	}

	p.PrintHeader("Strip layout", "segstrip layout", []ui.Detail{
		{Key: "Width", Value: fmt.Sprintf("%d", width)},
		{Key: "Display", Value: fmt.Sprintf("%d", s.DisplayCount())},
		{Key: "Phase", Value: s.Phase().String()},
	})
	p.Newline()
	p.PrintStrip(s)
	p.Newline()
	p.PrintLayout(s)
	return nil
}

// dragTo pans the strip from its current offset to offset. Releasing
// cancels the pan, so it snaps but never selects.
func dragTo(s *strip.Strip, offset float64, release bool) {
	start := s.ScrollOffset()
	x0 := s.Frame().Width
	x1 := x0 - (offset - start)
	s.HandlePan(strip.PanEvent{Phase: strip.PanBegan, X: x0})
	s.HandlePan(strip.PanEvent{Phase: strip.PanChanged, X: x1})
	if release {
		s.HandlePan(strip.PanEvent{Phase: strip.PanCancelled, X: x1})
	}
}

// replayCmd replays a gesture script
var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml>",
	Short: "Replay a gesture script and print every step",
	Long: `Replay a YAML gesture script against a strip.

Each step performs one action (a pan sample, a click, a programmatic
selection, a resize...) and may state the expected strip state afterwards.
The replay stops at the first failed expectation.`,
	Example: `  segstrip replay examples/drag-and-tap.yaml`,
	Args:    cobra.ExactArgs(1),
	RunE:    runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	p := ui.NewPrinter(cmd.OutOrStdout())

	script, err := replay.Load(args[0])
	if err != nil {
		p.PrintError("Invalid script", err, []string{
			"Every step needs exactly one action: pan, select, click, scroll_by,",
			"set_display, set_width, configure or frames",
			"Script format: " + urls.ReplayScripts,
		})
		return err
	}

	name := script.Name
	if name == "" {
		name = args[0]
	}
	p.PrintHeader("Replay", "segstrip replay "+args[0], []ui.Detail{
		{Key: "Script", Value: name},
		{Key: "Segments", Value: fmt.Sprintf("%d", len(script.Items))},
		{Key: "Width", Value: fmt.Sprintf("%g", script.Width)},
		{Key: "Steps", Value: fmt.Sprintf("%d", len(script.Steps))},
	})
	p.Newline()

	report, runErr := replay.Run(script)
	if report != nil {
		p.PrintTable(
			[]string{"#", "ACTION", "OFFSET", "SELECTED", "PHASE", "VISIBLE", "NOTIFIED"},
			stepRows(report),
		)
		p.Newline()
	}

	var stepErr *replay.StepError
	if errors.As(runErr, &stepErr) {
		p.PrintError("Replay failed", runErr, []string{
			fmt.Sprintf("Check the expect block of step %d", stepErr.Step+1),
			"Report unexpected strip behavior at " + urls.Issues,
		})
		return runErr
	}
	if runErr != nil {
		return runErr
	}

	p.PrintSuccess("Replay finished", []ui.Detail{
		{Key: "Steps", Value: fmt.Sprintf("%d", len(report.Steps))},
		{Key: "Notifications", Value: formatInts(report.Notifications())},
	})
	return nil
}

func stepRows(report *replay.Report) [][]string {
	rows := make([][]string, 0, len(report.Steps))
	for _, st := range report.Steps {
		visible := "none"
		if st.First != strip.NoSegment {
			visible = fmt.Sprintf("%d-%d", st.First, st.Last)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", st.Step+1),
			st.Action,
			fmt.Sprintf("%.2f", st.Offset),
			fmt.Sprintf("%d", st.Selected),
			st.Phase.String(),
			visible,
			formatInts(st.Notified),
		})
	}
	return rows
}

func formatInts(values []int) string {
	if len(values) == 0 {
		return "-"
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, ", ")
}

// configCmd groups config file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the segstrip config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default values",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		p := ui.NewPrinter(cmd.OutOrStdout())

		if forceInit {
			if err := config.NewConfig().Save(path); err != nil {
				return err
			}
		} else {
			created, err := config.CreateDefaultConfig(path)
			if err != nil {
				return err
			}
			if !created {
				p.PrintError("Config already exists", fmt.Errorf("%s", path), []string{
					"Use --force to overwrite it with defaults",
				})
				return fmt.Errorf("config file %s already exists", path)
			}
		}
		p.PrintSuccess("Config written", []ui.Detail{{Key: "Path", Value: path}})
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		a, g := cfg.Appearance, cfg.Gesture
		ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Configuration", []ui.Detail{
			{Key: "File", Value: path},
			{Key: "Items", Value: strings.Join(cfg.Items, ", ")},
			{Key: "Display count", Value: fmt.Sprintf("%d", a.DisplayCount)},
			{Key: "Text color", Value: a.TextColor},
			{Key: "Highlight color", Value: a.HighlightColor},
			{Key: "Click threshold", Value: fmt.Sprintf("%g", g.ClickThreshold)},
			{Key: "Tie break", Value: g.TieBreak},
			{Key: "Animate", Value: fmt.Sprintf("%t", g.Animate)},
		})
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}
