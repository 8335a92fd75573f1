// Package urls holds the project links printed by the CLI and the demo.
//
// Usage:
//
//	import "github.com/muurk/segstrip/internal/urls"
//
//	fmt.Printf("Script format: %s\n", urls.ReplayScripts)
package urls
