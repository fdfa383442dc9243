package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/veepo/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m mainModel) updateCampaigns(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := m.rt.Campaigns
	items := c.List.Items()
	if m.moveCursor(msg, len(items)) {
		return m, nil
	}
	if len(items) == 0 {
		return m, nil
	}

	selected := items[clampIndex(m.cursors[tabCampaigns], len(items))]
	lang := m.lang()

	switch {
	case key.Matches(msg, keys.toggle):
		return m, m.run(tr(lang, "status.done"), func(ctx context.Context) error { return c.ToggleActive(ctx, selected.ID) })
	case key.Matches(msg, keys.delete):
		if m.pendingDelete != selected.ID {
			m.pendingDelete = selected.ID
			return m.setStatus(tr(lang, "qr.confirm_delete"), false)
		}
		m.pendingDelete = ""
		return m, m.run(tr(lang, "status.done"), func(ctx context.Context) error { return c.Delete(ctx, selected.ID) })
	}
	return m, nil
}

func (m mainModel) viewCampaigns(lang models.Language) string {
	c := m.rt.Campaigns

	var b strings.Builder
	if line := stateLine(lang, c.State()); line != "" {
		b.WriteString(line + "\n")
	}

	items := c.List.Items()
	if len(items) == 0 {
		b.WriteString(tr(lang, "campaign.empty"))
		return b.String()
	}

	idx := clampIndex(m.cursors[tabCampaigns], len(items))
	for i, item := range items {
		state := tr(lang, "qr.inactive")
		if item.IsActive {
			state = tr(lang, "qr.active")
		}
		qrName := ""
		if item.QRCodeName != nil {
			qrName = *item.QRCodeName
		}
		fmt.Fprintf(&b, "%s%-24s %-8s %-18s %s\n", cursor(i == idx), fitText(item.Name, 24), state,
			fitText(valueOrDash(qrName), 18), campaignWindow(item.StartDate, item.EndDate))
	}

	b.WriteString("\n")
	b.WriteString(valueOrDash(items[idx].Description))
	return strings.TrimRight(b.String(), "\n")
}

// campaignWindow renders the active window of a campaign; open ends are dashes.
func campaignWindow(start, end *time.Time) string {
	day := func(t *time.Time) string {
		if t == nil {
			return "-"
		}
		return t.Format("02/01/2006")
	}
	return day(start) + " .. " + day(end)
}
