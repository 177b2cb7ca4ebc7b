package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorLightGray = lipgloss.Color("#CCCCCC")
	colorGray      = lipgloss.Color("#888888")
	colorDarkGray  = lipgloss.Color("#444444")
)

// background colors for each slide theme
var themeColors = map[string]lipgloss.Color{
	"midnight": lipgloss.Color("#1a1a40"),
	"sunset":   lipgloss.Color("#8c3b2e"),
	"neon":     lipgloss.Color("#0f4d3c"),
	"violet":   lipgloss.Color("#4b2261"),
	"ember":    lipgloss.Color("#6b3410"),
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite).
			Align(lipgloss.Center).
			MarginTop(1).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			Align(lipgloss.Center).
			MarginBottom(2)

	headlineStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite).
			Align(lipgloss.Center)

	subtextStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			Align(lipgloss.Center)

	listItemStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			PaddingLeft(2)

	listValueStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	viewerRowStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true).
			PaddingLeft(2)

	inputStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(colorLightGray)

	infoStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDarkGray).
			Italic(true).
			MarginTop(1)
)

const logo = `
  ███████╗███╗   ██╗ ██████╗ ██████╗ ██████╗ ███████╗
  ██╔════╝████╗  ██║██╔════╝██╔═══██╗██╔══██╗██╔════╝
  █████╗  ██╔██╗ ██║██║     ██║   ██║██████╔╝█████╗
  ██╔══╝  ██║╚██╗██║██║     ██║   ██║██╔══██╗██╔══╝
  ███████╗██║ ╚████║╚██████╗╚██████╔╝██║  ██║███████╗
  ╚══════╝╚═╝  ╚═══╝ ╚═════╝ ╚═════╝ ╚═╝  ╚═╝╚══════╝
`
