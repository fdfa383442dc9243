package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/veepo/internal/client"
	"github.com/MKhiriev/veepo/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type authMode int

const (
	authLogin authMode = iota
	authRegister
)

// AuthModel is the sign-in and sign-up form. A successful submit yields an
// authResultMsg without error, which ends the login flow.
type AuthModel struct {
	ctx  context.Context
	auth *client.Auth
	mode authMode
	lang models.Language

	inputs     []textinput.Model
	labels     []string
	focus      int
	submitting bool
	errMsg     string
}

func NewAuthModel(ctx context.Context, auth *client.Auth, mode authMode, lang models.Language) *AuthModel {
	email := textinput.New()
	email.Placeholder = "name@example.com"
	email.CharLimit = 254
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	m := &AuthModel{
		ctx:    ctx,
		auth:   auth,
		mode:   mode,
		lang:   lang,
		inputs: []textinput.Model{email, password},
		labels: []string{tr(lang, "auth.email"), tr(lang, "auth.password")},
	}

	if mode == authRegister {
		name := textinput.New()
		name.CharLimit = 100
		name.Width = 40
		m.inputs = append(m.inputs, name)
		m.labels = append(m.labels, tr(lang, "auth.name"))
	}
	return m
}

func (m *AuthModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *AuthModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authResultMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = userMessage(result.err, m.lang)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return navigateMsg{page: pageMenu} }
		case key.Matches(keyMsg, keys.tab):
			m.moveFocus(1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.moveFocus(-1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			credentials := m.credentials()
			if err := m.validate(credentials); err != "" {
				m.errMsg = err
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSubmit(credentials)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *AuthModel) View() string {
	var b strings.Builder
	labelWidth := 0
	for _, label := range m.labels {
		labelWidth = max(labelWidth, len([]rune(label)))
	}

	b.WriteString(padRight(tr(m.lang, "auth.field"), labelWidth) + " │ " + tr(m.lang, "auth.value") + "\n")
	b.WriteString(strings.Repeat("─", labelWidth+1) + "┼" + strings.Repeat("─", 44) + "\n")
	for i, input := range m.inputs {
		b.WriteString(padRight(m.labels[i], labelWidth))
		b.WriteString(" │ [")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}

	submit := tr(m.lang, "auth.submit")
	if m.submitting {
		b.WriteString("\n[" + submit + "...]\n")
	} else {
		b.WriteString("\n[" + submit + "]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(tr(m.lang, "status.error") + ": " + m.errMsg))
		b.WriteString("\n")
	}

	title := tr(m.lang, "auth.login.title")
	if m.mode == authRegister {
		title = tr(m.lang, "auth.register.title")
	}
	return renderPage(m.lang, title, strings.TrimRight(b.String(), "\n"), tr(m.lang, "keys.auth"))
}

func (m *AuthModel) credentials() models.Credentials {
	c := models.Credentials{
		Email:    strings.TrimSpace(m.inputs[0].Value()),
		Password: m.inputs[1].Value(),
	}
	if m.mode == authRegister {
		c.DisplayName = strings.TrimSpace(m.inputs[2].Value())
	}
	return c
}

func (m *AuthModel) validate(c models.Credentials) string {
	if c.Email == "" || c.Password == "" {
		return tr(m.lang, "auth.required")
	}
	if m.mode == authRegister && len([]rune(c.Password)) < models.MinPasswordLength {
		return tr(m.lang, "auth.short")
	}
	return ""
}

func (m *AuthModel) cmdSubmit(credentials models.Credentials) tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	register := m.mode == authRegister

	return func() tea.Msg {
		var err error
		if register {
			err = auth.SignUp(ctx, credentials)
		} else {
			err = auth.Login(ctx, credentials)
		}
		return authResultMsg{email: credentials.Email, register: register, err: err}
	}
}

func (m *AuthModel) moveFocus(delta int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func padRight(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
