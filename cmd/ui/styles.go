package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	// Primary colors
	ColorGreenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")).Bold(true)
	ColorRedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true)
	ColorBlueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00BFFF")).Bold(true)

	// Object-kind styles
	BlobStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00BFFF"))
	TreeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")).Bold(true)
	CommitStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true)
	TagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF00FF")).Bold(true)

	// Layout styles
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#5F5FFF")).
			PaddingTop(1).
			PaddingBottom(1).
			MarginBottom(1)
)

// Icons
const IconCheckmark = "✓"

// Color wrapper functions
func Green(s string) string {
	return ColorGreenStyle.Render(s)
}

func Red(s string) string {
	return ColorRedStyle.Render(s)
}

func Blue(s string) string {
	return ColorBlueStyle.Render(s)
}

// Layout rendering functions
func Header(text string) string {
	return HeaderStyle.Render(text)
}
