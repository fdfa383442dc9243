package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/veepo/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m mainModel) updateProfile(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.edit) {
		p := m.rt.Profile.Provider.State().Data
		return m.openForm(formProfile, p.BusinessName, p.Segment, p.State, p.City, p.CNAE)
	}
	return m, nil
}

func (m mainModel) viewProfile(lang models.Language) string {
	profile := m.rt.Profile
	state := profile.Provider.State()

	var b strings.Builder
	if line := stateLine(lang, state); line != "" {
		b.WriteString(line + "\n")
	}
	if !profile.Exists() {
		b.WriteString(tr(lang, "profile.empty"))
		return b.String()
	}

	p := state.Data
	cnae := p.CNAE
	if desc := profile.CNAEDescription(p.CNAE); desc != "" {
		cnae += " " + desc
	}
	nps := "-"
	if p.NPSScore != nil {
		nps = models.FormatInteger(float64(*p.NPSScore))
	}

	rows := [][2]string{
		{tr(lang, "profile.business_name"), p.BusinessName},
		{tr(lang, "profile.segment"), p.Segment},
		{tr(lang, "profile.state"), profile.StateName(p.State)},
		{tr(lang, "profile.city"), p.City},
		{tr(lang, "profile.cnae"), cnae},
		{tr(lang, "profile.plan"), string(p.Plan)},
		{tr(lang, "dash.average"), models.FormatDecimal(p.AverageRating)},
		{"NPS", nps},
		{tr(lang, "dash.total"), models.FormatInteger(float64(p.TotalFeedbacks))},
	}
	for _, row := range rows {
		fmt.Fprintf(&b, "%-20s %s\n", row[0], valueOrDash(row[1]))
	}
	return strings.TrimRight(b.String(), "\n")
}
