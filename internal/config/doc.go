// Package config provides user configuration for segstrip.
//
// The configuration is a YAML file holding the default strip items, the
// appearance (display count, colors, font) and gesture tuning (click
// threshold, snap tie-break, settle animation). Command-line flags override
// file values.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/segstrip/config.yaml or $HOME/.config/segstrip/config.yaml
//   - macOS: $HOME/.config/segstrip/config.yaml
//   - Windows: %LOCALAPPDATA%\segstrip\config.yaml
//
// # Example
//
//	version: 1
//	items: [Inbox, Drafts, Sent, Archive, Spam, Trash]
//	appearance:
//	  display_count: 3
//	  text_color: "#FFFFFF"
//	  highlight_color: "#7D56F4"
//	  font:
//	    bold: true
//	gesture:
//	  click_threshold: 2
//	  tie_break: velocity
//	  animate: true
//
// # Usage Example
//
//	cfg, err := config.LoadDefault()
//	if err != nil {
//	    return err
//	}
//	s := strip.NewWithItems(frame, cfg.Items, cfg.StripOptions()...)
//
// # Thread Safety
//
// The default configuration is loaded once using sync.Once. File writes are
// protected by a mutex and performed atomically.
package config
