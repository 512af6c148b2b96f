package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains all configurable visual styles.
type Theme struct {
	// Board styles
	Ground lipgloss.Style
	Snow   lipgloss.Style
	Block  lipgloss.Style
	Player lipgloss.Style
	Ball   lipgloss.Style
	Stack  lipgloss.Style // Cell holding more than one ball

	// HUD styles
	HUDTitle     lipgloss.Style
	HUDValue     lipgloss.Style
	HUDSeparator lipgloss.Style
	HUDControls  lipgloss.Style
	HUDSolved    lipgloss.Style
	HUDError     lipgloss.Style

	// Level picker styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Ground: lipgloss.NewStyle().Foreground(lipgloss.Color("238")), // Dark gray
		Snow:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")), // White
		Block:  lipgloss.NewStyle().Foreground(lipgloss.Color("94")),  // Brown
		Player: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Ball:   lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Stack:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),

		HUDTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		HUDValue:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		HUDSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		HUDControls:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HUDSolved:    lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		HUDError:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// MonochromeTheme returns a grayscale theme.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Block = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	theme.Player = lipgloss.NewStyle().Bold(true)
	theme.Ball = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	theme.Stack = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	return theme
}

// ThemeByName returns a theme by name, falling back to the default.
func ThemeByName(name string) Theme {
	switch name {
	case "mono", "monochrome":
		return MonochromeTheme()
	default:
		return DefaultTheme()
	}
}
