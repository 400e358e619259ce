package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorSky      lipgloss.Color = "#89dceb"
	colorSapphire lipgloss.Color = "#74c7ec"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
)

const (
	colorAccent  = colorMauve
	colorFocus   = colorLavender
	colorError   = colorRed
	colorWarning = colorYellow
	colorInfo    = colorTeal
)

// categoryPalette colors histogram bars and category chips; assignment cycles
// in category-set order so a fixed dataset always gets the same colors.
var categoryPalette = []lipgloss.Color{
	colorBlue, colorGreen, colorPeach, colorMauve, colorTeal, colorYellow, colorSapphire, colorPink,
}

func categoryColor(index int) lipgloss.Color {
	if index < 0 {
		index = 0
	}
	return categoryPalette[index%len(categoryPalette)]
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	subtitleStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorLavender)

	navItemStyle = lipgloss.NewStyle().Foreground(colorSubtext0).Padding(0, 1)
	navActiveStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorAccent).
			Bold(true).
			Padding(0, 1)
	navBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface2).
			Padding(0, 1)

	contentBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	metricLabelStyle = lipgloss.NewStyle().Foreground(colorOverlay1)
	metricValueStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPeach)
	metricBoxStyle   = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorSurface2).
				Padding(0, 1)

	cursorStyle   = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(colorOverlay1)
	noticeStyle   = lipgloss.NewStyle().Foreground(colorWarning)
	errorStyle    = lipgloss.NewStyle().Foreground(colorError)
	errorBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(colorError).
			Foreground(colorError).
			Padding(0, 1)

	statusStyle     = lipgloss.NewStyle().Foreground(colorInfo)
	footerStyle     = lipgloss.NewStyle().Foreground(colorOverlay1)
	footerKeyStyle  = lipgloss.NewStyle().Foreground(colorSubtext0).Bold(true)
	tableHeadStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorLavender)
	chipStyle       = lipgloss.NewStyle().Foreground(colorSubtext0).Background(colorSurface0).Padding(0, 1)
	chipActiveStyle = lipgloss.NewStyle().Foreground(colorBase).Background(colorTeal).Padding(0, 1)
)
