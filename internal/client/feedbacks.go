package client

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"sync/atomic"

	"github.com/MKhiriev/veepo/internal/adapter"
	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/realtime"
	"github.com/MKhiriev/veepo/internal/resource"
	"github.com/MKhiriev/veepo/internal/session"
	"github.com/MKhiriev/veepo/internal/store"
	"github.com/MKhiriev/veepo/models"
)

const feedbacksSnapshotKey = "feedbacks:active"

// Feedbacks is the feedback list with its active/archived toggle.
type Feedbacks struct {
	List *resource.LiveList[models.Feedback]

	res      *resource.Resource[models.FeedbackList]
	archived atomic.Bool

	api      adapter.APIClient
	hub      *realtime.Hub
	sessions resource.SessionSource
	cache    store.SnapshotRepository
	logger   *logger.Logger
}

func NewFeedbacks(ctx context.Context, api adapter.APIClient, hub *realtime.Hub, sessions resource.SessionSource, cache store.SnapshotRepository, log *logger.Logger) *Feedbacks {
	f := &Feedbacks{
		List:     resource.NewLiveList[models.Feedback](log),
		api:      api,
		hub:      hub,
		sessions: sessions,
		cache:    cache,
		logger:   log,
	}
	f.res = resource.New(ctx, "feedbacks", sessions, f.fetch, log)
	feedList(f.res, f.List, func(l models.FeedbackList) []models.Feedback { return l.Feedbacks })

	return f
}

// State exposes loading and error of the last fetch.
func (f *Feedbacks) State() resource.State[models.FeedbackList] {
	return f.res.State()
}

// Subscribe forwards fetch state changes.
func (f *Feedbacks) Subscribe(fn func(resource.State[models.FeedbackList])) func() {
	return f.res.Subscribe(fn)
}

// Archived reports which half of the list is shown.
func (f *Feedbacks) Archived() bool {
	return f.archived.Load()
}

// ShowArchived switches between active and archived feedbacks and refetches.
func (f *Feedbacks) ShowArchived(archived bool) {
	if f.archived.Swap(archived) == archived {
		return
	}
	f.res.Refetch()
}

// Items returns the rows of the current half. Realtime updates can move a
// row to the other half before the next fetch, so the status is checked here.
func (f *Feedbacks) Items() []models.Feedback {
	statuses := f.statuses()
	items := f.List.Items()
	return slices.DeleteFunc(items, func(fb models.Feedback) bool {
		return !slices.Contains(statuses, fb.Status)
	})
}

// Load paints the cached list, fetches and follows realtime changes.
func (f *Feedbacks) Load(ctx context.Context) error {
	f.seed(ctx)
	f.res.Refetch()
	return watch(ctx, f.hub, f.sessions, models.EntityFeedbacks, f.List)
}

func (f *Feedbacks) Refresh() {
	f.res.Refetch()
}

func (f *Feedbacks) Archive(ctx context.Context, id string) error {
	return f.change(ctx, id, f.api.ArchiveFeedback)
}

func (f *Feedbacks) Unarchive(ctx context.Context, id string) error {
	return f.change(ctx, id, f.api.UnarchiveFeedback)
}

func (f *Feedbacks) MarkResponded(ctx context.Context, id string) error {
	return f.change(ctx, id, func(ctx context.Context, id string) (models.Feedback, error) {
		return f.api.UpdateFeedbackStatus(ctx, id, models.FeedbackResponded)
	})
}

func (f *Feedbacks) change(ctx context.Context, id string, call func(context.Context, string) (models.Feedback, error)) error {
	updated, err := call(ctx, id)
	if err != nil {
		return err
	}
	f.List.Update(id, func(models.Feedback) models.Feedback { return updated })
	return nil
}

func (f *Feedbacks) Close() {
	f.res.Close()
}

func (f *Feedbacks) statuses() []models.FeedbackStatus {
	return statusesFor(f.archived.Load())
}

func statusesFor(archived bool) []models.FeedbackStatus {
	if archived {
		return models.ArchivedFeedbackStatuses
	}
	return models.ActiveFeedbackStatuses
}

func (f *Feedbacks) fetch(ctx context.Context, s session.Snapshot) (models.FeedbackList, error) {
	archived := f.archived.Load()
	list, err := f.api.ListFeedbacks(ctx, models.FeedbackFilter{Statuses: statusesFor(archived)})
	if err != nil || archived {
		return list, err
	}

	if payload, err := json.Marshal(list); err == nil {
		if err = f.cache.SaveSnapshot(ctx, s.User.ID, feedbacksSnapshotKey, payload); err != nil {
			f.logger.Err(err).Str("func", "Feedbacks.fetch").Msg("failed to cache feedbacks")
		}
	}
	return list, nil
}

func (f *Feedbacks) seed(ctx context.Context) {
	s, ok := f.sessions.Current()
	if !ok || f.archived.Load() {
		return
	}

	snapshot, err := f.cache.LoadSnapshot(ctx, s.User.ID, feedbacksSnapshotKey)
	if err != nil {
		if !errors.Is(err, store.ErrSnapshotNotFound) {
			f.logger.Err(err).Str("func", "Feedbacks.seed").Msg("failed to read cached feedbacks")
		}
		return
	}

	var list models.FeedbackList
	if err = json.Unmarshal(snapshot.Payload, &list); err != nil {
		f.logger.Err(err).Str("func", "Feedbacks.seed").Msg("cached feedbacks are corrupt")
		return
	}
	f.res.Seed(list)
}
