package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/veepo/internal/client"
	"github.com/MKhiriev/veepo/internal/resource"
	"github.com/MKhiriev/veepo/models"
)

type resourceState[T any] = resource.State[T]

type page int

const (
	pageMenu page = iota
	pageLogin
	pageRegister
)

// loginModel hosts the start menu and the sign-in and sign-up forms. It quits
// once a session exists or on ctrl+c.
type loginModel struct {
	ctx        context.Context
	auth       *client.Auth
	buildInfo  models.BuildInfo
	lang       models.Language
	onLanguage func(models.Language)

	pages   map[page]tea.Model
	current page

	quitByUser    bool
	showBuildInfo bool
}

func newLoginModel(ctx context.Context, auth *client.Auth, buildInfo models.BuildInfo, lang models.Language, onLanguage func(models.Language)) loginModel {
	m := loginModel{
		ctx:        ctx,
		auth:       auth,
		buildInfo:  buildInfo,
		lang:       lang,
		onLanguage: onLanguage,
		current:    pageMenu,
	}
	m.pages = m.buildPages()
	return m
}

func (m loginModel) buildPages() map[page]tea.Model {
	return map[page]tea.Model{
		pageMenu:     NewMenuModel(m.lang),
		pageLogin:    NewAuthModel(m.ctx, m.auth, authLogin, m.lang),
		pageRegister: NewAuthModel(m.ctx, m.auth, authRegister, m.lang),
	}
}

func (m loginModel) Init() tea.Cmd {
	return m.pages[m.current].Init()
}

func (m loginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		onMenu := m.current == pageMenu
		switch msg.String() {
		case "ctrl+c":
			m.quitByUser = true
			return m, tea.Quit
		case "esc":
			if m.showBuildInfo {
				m.showBuildInfo = false
				return m, nil
			}
		case "v":
			if onMenu {
				m.showBuildInfo = !m.showBuildInfo
				return m, nil
			}
		case "g":
			if onMenu && !m.showBuildInfo {
				m.lang = toggleLanguage(m.lang)
				if m.onLanguage != nil {
					m.onLanguage(m.lang)
				}
				m.pages = m.buildPages()
				return m, nil
			}
		}
		if m.showBuildInfo {
			return m, nil
		}

	case navigateMsg:
		next, ok := m.pages[msg.page]
		if !ok {
			return m, nil
		}
		m.showBuildInfo = false
		m.current = msg.page
		return m, next.Init()

	case authResultMsg:
		if msg.err == nil {
			return m, tea.Quit
		}
	}

	updated, cmd := m.pages[m.current].Update(msg)
	m.pages[m.current] = updated
	return m, cmd
}

func (m loginModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo, m.lang)
	}
	return m.pages[m.current].View()
}
