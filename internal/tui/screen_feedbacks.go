package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/veepo/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m mainModel) updateFeedbacks(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.rt.Feedbacks
	items := f.Items()
	if m.moveCursor(msg, len(items)) {
		return m, nil
	}

	if key.Matches(msg, keys.archived) {
		f.ShowArchived(!f.Archived())
		m.cursors[tabFeedbacks] = 0
		return m, nil
	}

	if len(items) == 0 {
		return m, nil
	}
	selected := items[clampIndex(m.cursors[tabFeedbacks], len(items))]
	done := tr(m.lang(), "status.done")

	switch {
	case key.Matches(msg, keys.archive):
		if f.Archived() {
			return m, m.run(done, func(ctx context.Context) error { return f.Unarchive(ctx, selected.ID) })
		}
		return m, m.run(done, func(ctx context.Context) error { return f.Archive(ctx, selected.ID) })
	case key.Matches(msg, keys.responded):
		if selected.Status == models.FeedbackPending {
			return m, m.run(done, func(ctx context.Context) error { return f.MarkResponded(ctx, selected.ID) })
		}
	}
	return m, nil
}

func (m mainModel) viewFeedbacks(lang models.Language) string {
	f := m.rt.Feedbacks

	var b strings.Builder
	active, archived := tr(lang, "feedback.active"), tr(lang, "feedback.archived")
	if f.Archived() {
		archived = "[" + archived + "]"
	} else {
		active = "[" + active + "]"
	}
	b.WriteString(active + "  " + archived + "\n\n")

	if line := stateLine(lang, f.State()); line != "" {
		b.WriteString(line + "\n")
	}

	items := f.Items()
	if len(items) == 0 {
		b.WriteString(tr(lang, "feedback.empty"))
		return b.String()
	}

	idx := clampIndex(m.cursors[tabFeedbacks], len(items))
	for i, fb := range items {
		fmt.Fprintf(&b, "%s%s %s %-10s %-18s %s\n",
			cursor(i == idx),
			fb.CreatedAt.Format("02/01"),
			stars(fb.Rating),
			fb.Status,
			fitText(valueOrDash(fb.CustomerName), 18),
			fitText(fb.Comment, 40),
		)
	}

	selected := items[idx]
	b.WriteString("\n")
	b.WriteString(valueOrDash(selected.Comment))
	if selected.Sentiment != nil {
		b.WriteString("\n" + string(*selected.Sentiment))
		if len(selected.Topics) > 0 {
			b.WriteString(" · " + strings.Join(selected.Topics, ", "))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
