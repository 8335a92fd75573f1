// Package ui provides terminal rendering for segstrip.
//
// It holds the lipgloss palette, the non-interactive report components used
// by the CLI (Header, Result, layout tables) and the cell-level renderer that
// draws a row of segments into a fixed number of terminal columns.
//
// # Components
//
//   - Header: Command banner showing operation name and parameters
//   - Result: Success/failure boxes with ordered details
//   - Layout table: per-segment geometry of a strip
//   - Segment row: one terminal line of clipped, centered segment labels
//
// Segment geometry is continuous; RenderSegmentRow rounds every segment edge
// to the nearest column, so adjacent segments never overlap or leave gaps.
//
// # Usage Pattern
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader("Strip layout", "segstrip layout", []ui.Detail{
//	    {Key: "Width", Value: "90"},
//	})
//	p.PrintStrip(s)
//	p.PrintLayout(s)
//
// # Logging Integration
//
// This package never logs. Logging is controlled with SEGSTRIP_LOG_LEVEL and
// is silent by default, so report output stays clean.
package ui
