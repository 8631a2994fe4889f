// Package style provides shared colors and icons for terminal output.
package style

import "github.com/charmbracelet/lipgloss"

// Color is a hex terminal color.
type Color = lipgloss.Color

// Colors.
var (
	Slate  = Color("#667085")
	Dim    = Color("#98A2B3")
	Green  = Color("#22A06B")
	Red    = Color("#D93025")
	Yellow = Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "·"
)
