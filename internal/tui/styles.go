package tui

import (
	"github.com/MKhiriev/veepo/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E5484D"))
)

type palette struct {
	title  lipgloss.Style
	active lipgloss.Style
	card   lipgloss.Style
	up     lipgloss.Style
	down   lipgloss.Style
}

// brand is the Veepo accent color, also the default QR color scheme.
const brand = lipgloss.Color(models.DefaultColorScheme)

func paletteFor(theme models.Theme) palette {
	text := lipgloss.Color("#F5F5F5")
	muted := lipgloss.Color("#3A3A3A")
	if theme == models.ThemeLight {
		text = lipgloss.Color("#111111")
		muted = lipgloss.Color("#D0D0D0")
	}

	return palette{
		title:  lipgloss.NewStyle().Bold(true).Foreground(text),
		active: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#111111")).Background(brand).Padding(0, 1),
		card:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(muted).Padding(0, 1).Width(20),
		up:     lipgloss.NewStyle().Foreground(lipgloss.Color("#30A46C")),
		down:   lipgloss.NewStyle().Foreground(lipgloss.Color("#E5484D")),
	}
}
