package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/veepo/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m mainModel) updateDirectory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := m.rt.Directory
	if m.moveCursor(msg, len(d.State().Data)) {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.search):
		return m.openForm(formSearch, d.Filter().Search)
	case key.Matches(msg, keys.sort):
		d.NextSort()
		m.cursors[tabDirectory] = 0
	case key.Matches(msg, keys.region):
		f := d.Filter()
		f.State = nextState(m.rt.Profile.States.State().Data, f.State)
		f.City = ""
		d.SetFilter(f)
		m.cursors[tabDirectory] = 0
	}
	return m, nil
}

// nextState cycles the state filter through every state and back to none.
func nextState(states []models.State, current string) string {
	if len(states) == 0 {
		return ""
	}
	if current == "" {
		return states[0].Sigla
	}
	for i, s := range states {
		if s.Sigla == current && i+1 < len(states) {
			return states[i+1].Sigla
		}
	}
	return ""
}

func sortLabel(lang models.Language, s models.ProviderSort) string {
	switch s {
	case models.ProviderSortRating:
		return tr(lang, "directory.sort_rating")
	case models.ProviderSortRanking:
		return tr(lang, "directory.sort_ranking")
	default:
		return tr(lang, "directory.sort_newest")
	}
}

func (m mainModel) viewDirectory(lang models.Language) string {
	d := m.rt.Directory
	f := d.Filter()

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s │ %s: %s │ %s\n\n",
		tr(lang, "directory.search"), valueOrDash(f.Search),
		tr(lang, "profile.state"), valueOrDash(f.State),
		sortLabel(lang, f.SortBy))

	state := d.State()
	if line := stateLine(lang, state); line != "" {
		b.WriteString(line + "\n")
	}

	items := state.Data
	if len(items) == 0 {
		b.WriteString(tr(lang, "directory.empty"))
		return b.String()
	}

	idx := clampIndex(m.cursors[tabDirectory], len(items))
	for i, p := range items {
		name := p.BusinessName
		if name == "" {
			name = p.Name
		}
		place := strings.Trim(p.City+"/"+p.State, "/")
		fmt.Fprintf(&b, "%s%-26s %-22s %4s %6s\n", cursor(i == idx), fitText(name, 26), fitText(valueOrDash(place), 22),
			models.FormatDecimal(p.AverageRating), models.FormatDecimal(p.RankingScore))
	}

	selected := items[idx]
	b.WriteString("\n")
	b.WriteString(valueOrDash(selected.Segment))
	b.WriteString("\n")
	b.WriteString(valueOrDash(selected.Description))
	return strings.TrimRight(b.String(), "\n")
}
