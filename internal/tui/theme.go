package tui

import (
	"os"
	"strings"

	"github.com/akyairhashvil/paradajz/internal/config"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name       string
	Text       lipgloss.Style
	PausedText lipgloss.Style
	Help       lipgloss.Style
	Bar        string
	PausedBar  string
	BarEmpty   string
}

var Themes = map[string]Theme{
	"default": {
		Name:       "Default",
		Text:       lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")),
		PausedText: lipgloss.NewStyle().Foreground(lipgloss.Color("#2C3836")),
		Help:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Bar:        "#00D098",
		PausedBar:  "#2C3836",
		BarEmpty:   "#000000",
	},
	"dracula": {
		Name:       "Dracula",
		Text:       lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true), // Pink
		PausedText: lipgloss.NewStyle().Foreground(lipgloss.Color("60")),             // Comment
		Help:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Bar:        "#50FA7B", // Green
		PausedBar:  "#6272A4",
		BarEmpty:   "#282A36",
	},
}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["default"]

func SetTheme(name string) {
	if t, ok := Themes[strings.ToLower(strings.TrimSpace(name))]; ok {
		CurrentTheme = t
	}
}

// ThemeFromEnv applies the theme named by PARADAJZ_THEME, if any.
func ThemeFromEnv() Theme {
	SetTheme(os.Getenv(config.ThemeEnvVar))
	return CurrentTheme
}
