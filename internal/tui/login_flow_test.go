package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/veepo/models"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func updateLogin(t *testing.T, m loginModel, msg tea.Msg) (loginModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	lm, ok := next.(loginModel)
	require.True(t, ok)
	return lm, cmd
}

func TestLoginModel_LanguageToggleOnMenu(t *testing.T) {
	var saved []models.Language
	m := newLoginModel(context.Background(), nil, models.BuildInfo{}, models.LanguagePT, func(l models.Language) {
		saved = append(saved, l)
	})
	assert.Contains(t, m.View(), "MENU PRINCIPAL")

	m, _ = updateLogin(t, m, runeKey('g'))

	assert.Equal(t, models.LanguageEN, m.lang)
	assert.Equal(t, []models.Language{models.LanguageEN}, saved)
	assert.Contains(t, m.View(), "MAIN MENU")
}

func TestLoginModel_BuildInfoWindow(t *testing.T) {
	m := newLoginModel(context.Background(), nil, models.BuildInfo{Version: "1.4.0"}, models.LanguageEN, nil)

	m, _ = updateLogin(t, m, runeKey('v'))
	assert.Contains(t, m.View(), "1.4.0")

	m, _ = updateLogin(t, m, runeKey('g'))
	assert.Equal(t, models.LanguageEN, m.lang, "keys are swallowed while the window is open")

	m, _ = updateLogin(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showBuildInfo)
}

func TestLoginModel_Navigation(t *testing.T) {
	m := newLoginModel(context.Background(), nil, models.BuildInfo{}, models.LanguageEN, nil)

	m, _ = updateLogin(t, m, navigateMsg{page: pageRegister})
	assert.Equal(t, pageRegister, m.current)

	m, _ = updateLogin(t, m, runeKey('v'))
	assert.False(t, m.showBuildInfo, "version window only opens from the menu")

	m, _ = updateLogin(t, m, navigateMsg{page: page(42)})
	assert.Equal(t, pageRegister, m.current)
}

func TestLoginModel_Quit(t *testing.T) {
	m := newLoginModel(context.Background(), nil, models.BuildInfo{}, models.LanguagePT, nil)

	failed, cmd := updateLogin(t, m, authResultMsg{err: errors.New("invalid credentials")})
	assert.False(t, failed.quitByUser)
	assert.Nil(t, cmd)

	_, cmd = updateLogin(t, m, authResultMsg{email: "ana@veepo.com.br"})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	quit, cmd := updateLogin(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, quit.quitByUser)
	require.NotNil(t, cmd)
}
