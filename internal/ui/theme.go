package ui

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines lipgloss-compatible colors for each category of output.
type Theme struct {
	// Name is the identifier of the theme.
	Name    string
	Accent  lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
	// Bold toggles bold headers.
	Bold bool
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:    "dark",
		Accent:  lipgloss.Color("39"),  // Bright blue
		Success: lipgloss.Color("82"),  // Bright green
		Warning: lipgloss.Color("220"), // Yellow
		Error:   lipgloss.Color("196"), // Red
		Dim:     lipgloss.Color("245"), // Grey
		Bold:    true,
	}

	// NoColorTheme disables all styling. It is used whenever the error
	// stream is not a terminal.
	NoColorTheme = Theme{
		Name:    "none",
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Dim:     lipgloss.NoColor{},
	}

	currentTheme = NoColorTheme
	themeMutex   sync.RWMutex
)

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the currently active theme in a thread-safe manner.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// InitTheme selects DarkTheme when color is true and NoColorTheme otherwise.
func InitTheme(color bool) {
	if color {
		SetCurrentTheme(DarkTheme)
		return
	}
	SetCurrentTheme(NoColorTheme)
}

func render(s string, fg lipgloss.TerminalColor, bold bool) string {
	return lipgloss.NewStyle().Foreground(fg).Bold(bold).Render(s)
}

// Header renders s as a table or section header.
func Header(s string) string {
	t := GetCurrentTheme()
	return render(s, t.Accent, t.Bold)
}

// Success renders s in the success color.
func Success(s string) string { return render(s, GetCurrentTheme().Success, false) }

// Warning renders s in the warning color.
func Warning(s string) string { return render(s, GetCurrentTheme().Warning, false) }

// Failure renders s in the error color.
func Failure(s string) string { return render(s, GetCurrentTheme().Error, false) }

// Dim renders s in the secondary color.
func Dim(s string) string { return render(s, GetCurrentTheme().Dim, false) }
