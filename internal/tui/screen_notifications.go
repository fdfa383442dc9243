package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/veepo/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m mainModel) updateNotifications(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := m.rt.Notifications
	items := n.List.Items()
	if m.moveCursor(msg, len(items)) {
		return m, nil
	}

	done := tr(m.lang(), "status.done")
	switch {
	case key.Matches(msg, keys.readAll):
		return m, m.run(done, n.MarkAllAsRead)
	case key.Matches(msg, keys.enter):
		if len(items) == 0 {
			return m, nil
		}
		id := items[clampIndex(m.cursors[tabNotifications], len(items))].ID
		return m, m.run(done, func(ctx context.Context) error { return n.MarkAsRead(ctx, id) })
	}
	return m, nil
}

func (m mainModel) viewNotifications(lang models.Language) string {
	n := m.rt.Notifications

	var b strings.Builder
	fmt.Fprintf(&b, "%d %s\n\n", n.UnreadCount(), tr(lang, "notif.unread"))

	if line := stateLine(lang, n.State()); line != "" {
		b.WriteString(line + "\n")
	}

	items := n.List.Items()
	if len(items) == 0 {
		b.WriteString(tr(lang, "notif.empty"))
		return b.String()
	}

	idx := clampIndex(m.cursors[tabNotifications], len(items))
	for i, item := range items {
		mark := "●"
		if item.IsRead {
			mark = " "
		}
		fmt.Fprintf(&b, "%s%s %s %s\n", cursor(i == idx), mark, item.CreatedAt.Format("02/01 15:04"), fitText(item.Message, 60))
	}

	return strings.TrimRight(b.String(), "\n")
}
