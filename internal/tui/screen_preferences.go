package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/veepo/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m mainModel) updatePreferences(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.rt.Session
	prefs := s.Preferences()

	switch {
	case key.Matches(msg, keys.theme):
		prefs.Theme = toggleTheme(prefs.Theme)
		s.SetPreferences(prefs)
	case key.Matches(msg, keys.language):
		prefs.Language = toggleLanguage(prefs.Language)
		s.SetPreferences(prefs)
	case key.Matches(msg, keys.edit):
		current, _ := s.Current()
		return m.openForm(formDisplayName, current.User.Metadata.DisplayName)
	}
	return m, nil
}

func toggleTheme(t models.Theme) models.Theme {
	if t == models.ThemeLight {
		return models.ThemeDark
	}
	return models.ThemeLight
}

func toggleLanguage(l models.Language) models.Language {
	if l == models.LanguageEN {
		return models.LanguagePT
	}
	return models.LanguageEN
}

func (m mainModel) viewPreferences(lang models.Language) string {
	prefs := m.rt.Session.Preferences()
	current, _ := m.rt.Session.Current()

	var b strings.Builder
	fmt.Fprintf(&b, "%-18s %s\n", tr(lang, "prefs.name"), valueOrDash(current.User.Metadata.DisplayName))
	fmt.Fprintf(&b, "%-18s %s\n", tr(lang, "prefs.email"), valueOrDash(current.User.Email))
	fmt.Fprintf(&b, "%-18s %s\n", tr(lang, "prefs.theme"), prefs.Theme)
	fmt.Fprintf(&b, "%-18s %s\n", tr(lang, "prefs.language"), prefs.Language)
	fmt.Fprintf(&b, "%-18s %s", tr(lang, "prefs.server"), valueOrDash(m.rt.ServerVersion.State().Data))
	return b.String()
}
