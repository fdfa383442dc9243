package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/veepo/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type MenuModel struct {
	lang  models.Language
	items []string
	pages []page
	idx   int
}

func NewMenuModel(lang models.Language) *MenuModel {
	return &MenuModel{
		lang:  lang,
		items: []string{tr(lang, "menu.login"), tr(lang, "menu.register")},
		pages: []page{pageLogin, pageRegister},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		next := m.pages[m.idx]
		return m, func() tea.Msg { return navigateMsg{page: next} }
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder
	header := tr(m.lang, "menu.action")

	idColWidth := lipgloss.Width("ID") + 2
	actionColWidth := lipgloss.Width(header)
	for _, item := range m.items {
		actionColWidth = max(actionColWidth, lipgloss.Width(item))
	}

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "ID", actionColWidth, header))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		marker := " "
		if i == m.idx {
			marker = ">"
		}
		idCell := fmt.Sprintf("%s %d", marker, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item))
	}

	return renderPage(m.lang, "VEEPO · "+tr(m.lang, "menu.title"), strings.TrimRight(b.String(), "\n"), tr(m.lang, "keys.menu"))
}
