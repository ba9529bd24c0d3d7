package stepview

import "github.com/charmbracelet/lipgloss"

var testStyle = lipgloss.NewStyle()
