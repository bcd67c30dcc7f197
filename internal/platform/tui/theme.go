package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/crunch/internal/config"
	"github.com/vovakirdan/crunch/internal/core"
)

// Theme contains the visual styles of the terminal front end.
type Theme struct {
	// Colors maps screen colors to styles.
	Colors map[core.Color]lipgloss.Style

	Help lipgloss.Style

	// Level picker styles
	MenuTitle     lipgloss.Style
	MenuFrame     lipgloss.Style
	TableHeader   lipgloss.Style
	TableSelected lipgloss.Style
}

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

// ClassicTheme returns the default colorful theme.
func ClassicTheme() Theme {
	return Theme{
		Colors: map[core.Color]lipgloss.Style{
			core.ColorDefault:   lipgloss.NewStyle(),
			core.ColorRed:       fg("196"),
			core.ColorGreen:     fg("46"),  // Macaroon
			core.ColorYellow:    fg("220"), // Croissant
			core.ColorBlue:      fg("33"),
			core.ColorMagenta:   fg("205"), // Cupcake
			core.ColorCyan:      fg("51"),  // Donut
			core.ColorWhite:     fg("255"), // Sugar cookie
			core.ColorOrange:    fg("208"), // Danish
			core.ColorGray:      fg("240"),
			core.ColorHighlight: fg("229").Bold(true),
			core.ColorAlert:     fg("196").Bold(true),
		},
		Help:          fg("241"),
		MenuTitle:     fg("229").Bold(true).MarginBottom(1),
		MenuFrame:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		TableHeader:   lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).BorderBottom(true).Bold(true),
		TableSelected: fg("229").Background(lipgloss.Color("57")),
	}
}

// MonoTheme returns a grayscale theme. Pieces stay distinct by glyph.
func MonoTheme() Theme {
	theme := ClassicTheme()
	for c := range theme.Colors {
		theme.Colors[c] = fg("250")
	}
	theme.Colors[core.ColorDefault] = lipgloss.NewStyle()
	theme.Colors[core.ColorGray] = fg("240")
	theme.Colors[core.ColorHighlight] = fg("255").Bold(true)
	theme.Colors[core.ColorAlert] = fg("255").Bold(true).Underline(true)
	theme.TableSelected = fg("0").Background(lipgloss.Color("250"))
	return theme
}

// ThemeByName returns the theme configured as display.theme.
func ThemeByName(name string) (Theme, error) {
	switch name {
	case config.ThemeClassic, "":
		return ClassicTheme(), nil
	case config.ThemeMono:
		return MonoTheme(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q", name)
	}
}

// Style returns the style for a screen color.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if s, ok := t.Colors[c]; ok {
		return s
	}
	return t.Colors[core.ColorDefault]
}
