package tui

import (
	"strings"

	"github.com/MKhiriev/veepo/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(lang models.Language, title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render(tr(lang, "keys.exit")))

	return b.String()
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// sparkline draws NPS scores, which range over -100..100, as block glyphs.
func sparkline(points []models.NPSPoint) string {
	var b strings.Builder
	for _, p := range points {
		score := min(max(p.NPSScore, -100), 100)
		idx := (score + 100) * (len(sparkBlocks) - 1) / 200
		b.WriteRune(sparkBlocks[idx])
	}
	return b.String()
}

func stars(rating int) string {
	rating = min(max(rating, 0), 5)
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

func cursor(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}

func clampIndex(idx, n int) int {
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
