package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Box drawing characters
const (
	TopLeft     = "╭"
	TopRight    = "╮"
	BottomLeft  = "╰"
	BottomRight = "╯"
	Horizontal  = "─"
	Vertical    = "│"
	LeftT       = "├"
	RightT      = "┤"
	TopT        = "┬"
	BottomT     = "┴"
	Cross       = "┼"
)

// Color palette
const (
	ColorBorder = "240"
	ColorHeader = "252"
	ColorName   = "81"
	ColorActive = "82"
	ColorMuted  = "240"
	ColorHint   = "245"
	ColorError  = "203"
)

// Shared styles
var (
	BorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBorder))
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorHeader))
	NameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorName))
	ActiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorActive))
	MutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted))
	HintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHint))
	ErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
)

// favoriteColors maps the favorite color names from the settings file to
// terminal colors.
var favoriteColors = map[string]lipgloss.Color{
	"red":     lipgloss.Color("#E74C3C"),
	"green":   lipgloss.Color("#2ECC71"),
	"blue":    lipgloss.Color("#3498DB"),
	"yellow":  lipgloss.Color("#F1C40F"),
	"purple":  lipgloss.Color("#9B59B6"),
	"orange":  lipgloss.Color("#E67E22"),
	"cyan":    lipgloss.Color("#1ABC9C"),
	"magenta": lipgloss.Color("#EC407A"),
	"gray":    lipgloss.Color("#95A5A6"),
}

// FavoriteStyle returns a style for a favorite's color name, defaulting to
// blue for unknown names.
func FavoriteStyle(color string) lipgloss.Style {
	if c, ok := favoriteColors[strings.ToLower(color)]; ok {
		return lipgloss.NewStyle().Foreground(c)
	}
	return lipgloss.NewStyle().Foreground(favoriteColors["blue"])
}

// padRight pads a string to the specified display width using runewidth
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return runewidth.Truncate(s, width, "...")
	}
	return s + strings.Repeat(" ", width-sw)
}
