// Package ui provides semantic text formatting for CLI output.
//
// This package defines formatters for different types of content (code,
// paths, errors, etc.) that render appropriately based on terminal
// capabilities. When colors are available, content is colorized. When
// NO_COLOR is set or the terminal doesn't support colors, text-based
// decorations (backticks, quotes) are used instead.
//
// # Semantic Formatters
//
// Use the appropriate formatter for the content type:
//
//	ui.Code.Sprint("devsecrets init")              // Commands
//	ui.Path.Sprint("~/.config/go-devsecrets")      // File paths
//	ui.Success.Sprint("✓")                          // Success indicators
//	ui.Error.Sprint("✗")                            // Error indicators
//	ui.Info.Sprint("→")                             // Informational hints
//	ui.Highlight.Sprint("myproject")               // User values
//
// # Color Behavior
//
// Colors are disabled when the NO_COLOR environment variable is set
// (any value) or the terminal doesn't support them (TERM=dumb, not a
// TTY). When disabled, formatters fall back to text decorations: Code
// uses `backticks`, Highlight uses 'single quotes', the rest print
// plain.
package ui
