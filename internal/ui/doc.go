// Package ui provides theme and styling support for the application's
// terminal output. It wraps lipgloss styles behind a small set of helpers so
// that presentation code never builds escape sequences by hand.
//
// This package is designed to be a shared dependency for packages that need
// styled output, reducing coupling between business logic and presentation.
package ui
