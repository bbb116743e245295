// Package style provides shared UI styling primitives including colors
// and icons for consistent terminal output across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Plus    = "+"
	Minus   = "-"
	Tilde   = "~"
)

// Tree branch markers. Branch marks the first visit of a package, Revisit one already printed.
const (
	Branch  = "|-"
	Revisit = "|~"
	Indent  = "    "
)
