package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/veepo/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m mainModel) updateBilling(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	plans := m.rt.Billing.Plans.State().Data
	if m.moveCursor(msg, len(plans)) {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.annual):
		m.annual = !m.annual
	case key.Matches(msg, keys.enter):
		if len(plans) == 0 {
			return m, nil
		}
		plan := plans[clampIndex(m.cursors[tabBilling], len(plans))]
		return m, m.checkout(plan.PriceID(m.annual))
	}
	return m, nil
}

// checkout opens the hosted checkout and copies its URL for the browser.
func (m mainModel) checkout(priceID string) tea.Cmd {
	ctx, billing, lang := m.ctx, m.rt.Billing, m.lang()
	return func() tea.Msg {
		session, err := billing.Checkout(ctx, priceID)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		status := tr(lang, "billing.checkout") + ": " + session.URL
		if clipboard.WriteAll(session.URL) == nil {
			status += " (" + tr(lang, "qr.copied") + ")"
		}
		return actionDoneMsg{status: status}
	}
}

func (m mainModel) viewBilling(lang models.Language) string {
	state := m.rt.Billing.Plans.State()

	var b strings.Builder
	monthly, annual := tr(lang, "billing.monthly"), tr(lang, "billing.annual")
	if m.annual {
		annual = "[" + annual + "]"
	} else {
		monthly = "[" + monthly + "]"
	}
	b.WriteString(monthly + "  " + annual + "\n\n")

	if line := stateLine(lang, state); line != "" {
		b.WriteString(line + "\n")
	}

	plans := state.Data
	if len(plans) == 0 {
		b.WriteString("-")
		return b.String()
	}

	idx := clampIndex(m.cursors[tabBilling], len(plans))
	for i, plan := range plans {
		price := plan.MonthlyPrice
		if m.annual {
			price = plan.AnnualPrice
		}
		priceText := tr(lang, "billing.contact")
		if plan.PriceID(m.annual) != models.ContactPriceID {
			priceText = "R$ " + strings.Replace(fmt.Sprintf("%.2f", price), ".", ",", 1)
		}
		fmt.Fprintf(&b, "%s%-12s %s\n", cursor(i == idx), plan.Name, priceText)
	}

	b.WriteString("\n")
	b.WriteString(strings.Join(plans[idx].Features, " · "))
	return strings.TrimRight(b.String(), "\n")
}
