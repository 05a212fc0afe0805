// Package style provides shared UI styling primitives including colors
// and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Copper = lipgloss.Color("#C2703D")
	Slate  = lipgloss.Color("#667085")
	Ink    = lipgloss.Color("#0B0F19")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Blue   = lipgloss.Color("#2F6FED")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Dot     = "●"
	Plus    = "+"
	Minus   = "-"
)

// Shared lipgloss styles for rendered recipe output.
var (
	Header  = lipgloss.NewStyle().Bold(true).Foreground(Copper)
	Label   = lipgloss.NewStyle().Foreground(Slate)
	Value   = lipgloss.NewStyle().Foreground(Blue)
	Good    = lipgloss.NewStyle().Foreground(Green)
	Bad     = lipgloss.NewStyle().Foreground(Red)
	Caution = lipgloss.NewStyle().Foreground(Yellow)
)
