package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/veepo/internal/client"
	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/session"
	"github.com/MKhiriev/veepo/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	runtime   *client.Runtime
	buildInfo models.BuildInfo
	logger    *logger.Logger
}

func New(runtime *client.Runtime, buildInfo models.BuildInfo, log *logger.Logger) (*TUI, error) {
	return &TUI{runtime: runtime, buildInfo: buildInfo, logger: log}, nil
}

// LoginFlow runs the sign-in and sign-up screens until a session exists.
func (t *TUI) LoginFlow(ctx context.Context) error {
	sess := t.runtime.Session
	setLanguage := func(lang models.Language) {
		prefs := sess.Preferences()
		prefs.Language = lang
		sess.SetPreferences(prefs)
	}

	login := newLoginModel(ctx, t.runtime.Auth, t.buildInfo, sess.Preferences().Language, setLanguage)
	finalModel, err := tea.NewProgram(login, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(loginModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

// MainLoop runs the dashboard for the signed-in user. Data changes pushed by
// the runtime repaint the screen.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainModel(ctx, t.runtime)
	program := tea.NewProgram(model, tea.WithAltScreen())

	// Subscribers may fire inside Update, so repaints are queued and sent
	// from a separate goroutine. Bursts collapse into one repaint.
	pending := make(chan struct{}, 1)
	done := make(chan struct{})
	repaint := func() {
		select {
		case pending <- struct{}{}:
		default:
		}
	}
	go func() {
		for {
			select {
			case <-done:
				return
			case <-pending:
				program.Send(dataChangedMsg{})
			}
		}
	}()
	defer close(done)

	for _, unsubscribe := range t.subscribe(repaint) {
		defer unsubscribe()
	}

	finalModel, err := program.Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(mainModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}

func (t *TUI) subscribe(repaint func()) []func() {
	rt := t.runtime
	return []func(){
		rt.Dashboard.Stats.Subscribe(func(resourceState[models.DashboardStats]) { repaint() }),
		rt.Dashboard.Trend.Subscribe(func(resourceState[[]models.NPSPoint]) { repaint() }),
		rt.Dashboard.Comparison.Subscribe(func(resourceState[models.BenchmarkComparison]) { repaint() }),
		rt.Dashboard.Recent.Subscribe(func([]models.Feedback) { repaint() }),
		rt.Feedbacks.Subscribe(func(resourceState[models.FeedbackList]) { repaint() }),
		rt.Feedbacks.List.Subscribe(func([]models.Feedback) { repaint() }),
		rt.Notifications.Subscribe(func(resourceState[models.NotificationList]) { repaint() }),
		rt.Notifications.List.Subscribe(func([]models.Notification) { repaint() }),
		rt.QRCodes.Subscribe(func(resourceState[[]models.QRCode]) { repaint() }),
		rt.QRCodes.List.Subscribe(func([]models.QRCode) { repaint() }),
		rt.Session.Subscribe(func(session.Snapshot, bool) { repaint() }),
	}
}
