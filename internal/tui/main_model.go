package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/veepo/internal/client"
	"github.com/MKhiriev/veepo/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabDashboard = iota
	tabFeedbacks
	tabNotifications
	tabQRCodes
	tabCampaigns
	tabDirectory
	tabProfile
	tabBilling
	tabPreferences
	tabCount
)

var tabTitles = [tabCount]string{
	"tab.dashboard", "tab.feedbacks", "tab.notifications", "tab.qr_codes",
	"tab.campaigns", "tab.directory", "tab.profile", "tab.billing", "tab.preferences",
}

var tabHotKeys = [tabCount]string{
	"keys.dashboard", "keys.feedbacks", "keys.notifications", "keys.qr_codes",
	"keys.campaigns", "keys.directory", "keys.profile", "keys.billing", "keys.preferences",
}

const statusTTL = 3 * time.Second

type formKind int

const (
	formNone formKind = iota
	formNewQRCode
	formDisplayName
	formSearch
	formProfile
)

// formFields is the number of inputs of each form; other forms have one.
var formFields = map[formKind]int{
	formNewQRCode: 2,
	formProfile:   5,
}

// mainModel is the signed-in screen. It keeps only cursor and form state;
// the data is read from the runtime on every View.
type mainModel struct {
	ctx context.Context
	rt  *client.Runtime

	tab     int
	cursors [tabCount]int

	form   formKind
	inputs []textinput.Model
	focus  int

	pendingDelete string
	annual        bool

	status    string
	statusErr bool
	statusSeq int

	logout bool
}

func newMainModel(ctx context.Context, rt *client.Runtime) mainModel {
	return mainModel{ctx: ctx, rt: rt}
}

func (m mainModel) Init() tea.Cmd {
	ctx := m.ctx
	rt := m.rt
	return func() tea.Msg {
		return startedMsg{err: rt.Start(ctx)}
	}
}

func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		if msg.err != nil {
			return m.setStatus(userMessage(msg.err, m.lang()), true)
		}
		return m, nil
	case dataChangedMsg:
		m.clampCursors()
		return m, nil
	case actionDoneMsg:
		if msg.err != nil {
			return m.setStatus(userMessage(msg.err, m.lang()), true)
		}
		return m.setStatus(msg.status, false)
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return m, nil
	case tea.KeyMsg:
		if m.form != formNone {
			return m.updateForm(msg)
		}
		return m.updateKey(msg)
	}

	if m.form != formNone {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m mainModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(msg, keys.tab):
		m.switchTab(1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.switchTab(-1)
		return m, nil
	case key.Matches(msg, keys.refresh):
		m.refresh()
		return m, nil
	}

	switch m.tab {
	case tabDashboard:
		return m.updateDashboard(msg)
	case tabFeedbacks:
		return m.updateFeedbacks(msg)
	case tabNotifications:
		return m.updateNotifications(msg)
	case tabQRCodes:
		return m.updateQRCodes(msg)
	case tabCampaigns:
		return m.updateCampaigns(msg)
	case tabDirectory:
		return m.updateDirectory(msg)
	case tabProfile:
		return m.updateProfile(msg)
	case tabBilling:
		return m.updateBilling(msg)
	case tabPreferences:
		return m.updatePreferences(msg)
	}
	return m, nil
}

func (m *mainModel) switchTab(delta int) {
	m.tab = (m.tab + delta + tabCount) % tabCount
	m.pendingDelete = ""
}

func (m mainModel) refresh() {
	switch m.tab {
	case tabDashboard:
		m.rt.Dashboard.Refresh()
	case tabFeedbacks:
		m.rt.Feedbacks.Refresh()
	case tabNotifications:
		m.rt.Notifications.Refresh()
	case tabQRCodes:
		m.rt.QRCodes.Refresh()
	case tabCampaigns:
		m.rt.Campaigns.Refresh()
	case tabDirectory:
		m.rt.Directory.Refresh()
	case tabProfile:
		m.rt.Profile.Refresh()
	case tabBilling:
		m.rt.Billing.Refresh()
	}
}

// moveCursor handles up and down for a list of n rows.
func (m *mainModel) moveCursor(msg tea.KeyMsg, n int) bool {
	switch {
	case key.Matches(msg, keys.up):
		m.cursors[m.tab] = clampIndex(m.cursors[m.tab]-1, n)
	case key.Matches(msg, keys.down):
		m.cursors[m.tab] = clampIndex(m.cursors[m.tab]+1, n)
	default:
		return false
	}
	m.pendingDelete = ""
	return true
}

func (m *mainModel) clampCursors() {
	m.cursors[tabFeedbacks] = clampIndex(m.cursors[tabFeedbacks], len(m.rt.Feedbacks.Items()))
	m.cursors[tabNotifications] = clampIndex(m.cursors[tabNotifications], m.rt.Notifications.List.Len())
	m.cursors[tabQRCodes] = clampIndex(m.cursors[tabQRCodes], m.rt.QRCodes.List.Len())
	m.cursors[tabCampaigns] = clampIndex(m.cursors[tabCampaigns], m.rt.Campaigns.List.Len())
	m.cursors[tabDirectory] = clampIndex(m.cursors[tabDirectory], len(m.rt.Directory.State().Data))
	m.cursors[tabBilling] = clampIndex(m.cursors[tabBilling], len(m.rt.Billing.Plans.State().Data))
}

func (m mainModel) setStatus(status string, isErr bool) (tea.Model, tea.Cmd) {
	m.statusSeq++
	m.status = status
	m.statusErr = isErr

	seq := m.statusSeq
	return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

// run performs an action off the UI goroutine and reports done on success.
func (m mainModel) run(done string, action func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return actionDoneMsg{status: done, err: action(ctx)}
	}
}

func (m mainModel) openForm(kind formKind, values ...string) (tea.Model, tea.Cmd) {
	fields := formFields[kind]
	if fields == 0 {
		fields = 1
	}

	m.inputs = make([]textinput.Model, fields)
	for i := range m.inputs {
		m.inputs[i] = textinput.New()
		m.inputs[i].Width = 40
		m.inputs[i].CharLimit = 200
		if i < len(values) {
			m.inputs[i].SetValue(values[i])
		}
	}
	m.inputs[0].Focus()
	m.focus = 0
	m.form = kind
	return m, textinput.Blink
}

func (m mainModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.form = formNone
		m.inputs = nil
		return m, nil
	case key.Matches(msg, keys.tab):
		m.inputs[m.focus].Blur()
		m.focus = (m.focus + 1) % len(m.inputs)
		m.inputs[m.focus].Focus()
		return m, nil
	case key.Matches(msg, keys.enter):
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m mainModel) submitForm() (tea.Model, tea.Cmd) {
	lang := m.lang()
	first := strings.TrimSpace(m.inputs[0].Value())
	if first == "" && (m.form == formNewQRCode || m.form == formDisplayName) {
		return m.setStatus(tr(lang, "form.required"), true)
	}

	var cmd tea.Cmd
	switch m.form {
	case formNewQRCode:
		description := strings.TrimSpace(m.inputs[1].Value())
		cmd = m.run(tr(lang, "status.done"), func(ctx context.Context) error {
			_, err := m.rt.QRCodes.Create(ctx, first, description)
			return err
		})
	case formDisplayName:
		cmd = m.run(tr(lang, "prefs.saved"), func(ctx context.Context) error {
			return m.rt.Auth.UpdateDisplayName(ctx, first)
		})
	case formSearch:
		f := m.rt.Directory.Filter()
		f.Search = first
		m.rt.Directory.SetFilter(f)
		m.cursors[tabDirectory] = 0
	case formProfile:
		form := client.ProfileForm{
			BusinessName: first,
			Segment:      m.inputs[1].Value(),
			State:        m.inputs[2].Value(),
			City:         m.inputs[3].Value(),
			CNAE:         m.inputs[4].Value(),
		}
		cmd = m.run(tr(lang, "prefs.saved"), func(ctx context.Context) error {
			_, err := m.rt.Profile.Save(ctx, form)
			return err
		})
	}

	m.form = formNone
	m.inputs = nil
	return m, cmd
}

func (m mainModel) lang() models.Language {
	return m.rt.Session.Preferences().Language
}

func (m mainModel) View() string {
	lang := m.lang()
	p := paletteFor(m.rt.Session.Preferences().Theme)

	var body string
	hotKeys := tr(lang, tabHotKeys[m.tab]) + "\n  " + tr(lang, "keys.main")
	if m.form != formNone {
		body = m.viewForm(lang)
		hotKeys = tr(lang, "keys.form")
	} else {
		switch m.tab {
		case tabDashboard:
			body = m.viewDashboard(lang, p)
		case tabFeedbacks:
			body = m.viewFeedbacks(lang)
		case tabNotifications:
			body = m.viewNotifications(lang)
		case tabQRCodes:
			body = m.viewQRCodes(lang)
		case tabCampaigns:
			body = m.viewCampaigns(lang)
		case tabDirectory:
			body = m.viewDirectory(lang)
		case tabProfile:
			body = m.viewProfile(lang)
		case tabBilling:
			body = m.viewBilling(lang)
		case tabPreferences:
			body = m.viewPreferences(lang)
		}
	}

	if m.status != "" {
		line := m.status
		if m.statusErr {
			line = errorStyle.Render(tr(lang, "status.error") + ": " + m.status)
		}
		body += "\n\n" + line
	}

	return appStyle.Render(renderPage(lang, m.viewHeader(lang, p), body, hotKeys))
}

func (m mainModel) viewHeader(lang models.Language, p palette) string {
	user := ""
	if s, ok := m.rt.Session.Current(); ok {
		user = s.User.DisplayNameOrEmail()
	}

	tabs := make([]string, 0, tabCount)
	for i, title := range tabTitles {
		label := tr(lang, title)
		if i == tabNotifications {
			if unread := m.rt.Notifications.UnreadCount(); unread > 0 {
				label += " (" + models.FormatInteger(float64(unread)) + ")"
			}
		}
		if i == m.tab {
			tabs = append(tabs, p.active.Render(label))
		} else {
			tabs = append(tabs, " "+label+" ")
		}
	}

	return p.title.Render("VEEPO · "+valueOrDash(user)) + "\n\n  " + lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m mainModel) viewForm(lang models.Language) string {
	var b strings.Builder
	labels := []string{tr(lang, "prefs.name")}
	title := tr(lang, "prefs.name")
	switch m.form {
	case formNewQRCode:
		labels = []string{tr(lang, "auth.name"), tr(lang, "qr.description")}
		title = tr(lang, "qr.new")
	case formSearch:
		labels = []string{tr(lang, "directory.search")}
		title = tr(lang, "tab.directory")
	case formProfile:
		labels = []string{
			tr(lang, "profile.business_name"), tr(lang, "profile.segment"),
			tr(lang, "profile.state"), tr(lang, "profile.city"), tr(lang, "profile.cnae"),
		}
		title = tr(lang, "tab.profile")
	}

	b.WriteString(title)
	b.WriteString("\n\n")
	for i, input := range m.inputs {
		b.WriteString(padRight(labels[i], 16))
		b.WriteString(" [")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// stateLine describes a fetch that has nothing to show yet.
func stateLine[T any](lang models.Language, state resourceState[T]) string {
	if state.Err != "" {
		return errorStyle.Render(tr(lang, "status.error") + ": " + state.Err)
	}
	if state.Loading {
		return helpStyle.Render(tr(lang, "status.loading"))
	}
	return ""
}
