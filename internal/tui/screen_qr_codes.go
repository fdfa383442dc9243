package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/veepo/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m mainModel) updateQRCodes(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	q := m.rt.QRCodes
	items := q.List.Items()
	if m.moveCursor(msg, len(items)) {
		return m, nil
	}

	if key.Matches(msg, keys.newItem) {
		m.pendingDelete = ""
		return m.openForm(formNewQRCode)
	}

	if len(items) == 0 {
		return m, nil
	}
	selected := items[clampIndex(m.cursors[tabQRCodes], len(items))]
	lang := m.lang()

	switch {
	case key.Matches(msg, keys.copy):
		if err := clipboard.WriteAll(selected.TargetURL); err != nil {
			return m.setStatus(err.Error(), true)
		}
		return m.setStatus(tr(lang, "qr.copied"), false)
	case key.Matches(msg, keys.toggle):
		return m, m.run(tr(lang, "status.done"), func(ctx context.Context) error { return q.ToggleActive(ctx, selected.ID) })
	case key.Matches(msg, keys.delete):
		if m.pendingDelete != selected.ID {
			m.pendingDelete = selected.ID
			return m.setStatus(tr(lang, "qr.confirm_delete"), false)
		}
		m.pendingDelete = ""
		return m, m.run(tr(lang, "status.done"), func(ctx context.Context) error { return q.Delete(ctx, selected.ID) })
	}
	return m, nil
}

func (m mainModel) viewQRCodes(lang models.Language) string {
	q := m.rt.QRCodes

	var b strings.Builder
	if line := stateLine(lang, q.State()); line != "" {
		b.WriteString(line + "\n")
	}

	items := q.List.Items()
	if len(items) == 0 {
		b.WriteString(tr(lang, "qr.empty"))
		return b.String()
	}

	idx := clampIndex(m.cursors[tabQRCodes], len(items))
	for i, item := range items {
		state := tr(lang, "qr.inactive")
		if item.IsActive {
			state = tr(lang, "qr.active")
		}
		fmt.Fprintf(&b, "%s%-24s %-8s %5d %s\n", cursor(i == idx), fitText(item.Name, 24), state, item.Scans, tr(lang, "qr.scans"))
	}

	selected := items[idx]
	b.WriteString("\n")
	b.WriteString(valueOrDash(selected.Description))
	b.WriteString("\n")
	b.WriteString(valueOrDash(selected.TargetURL))

	return strings.TrimRight(b.String(), "\n")
}
