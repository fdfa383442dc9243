package service

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/MKhiriev/veepo/internal/ratelimit"
	"github.com/MKhiriev/veepo/internal/store"
	"github.com/MKhiriev/veepo/models"
)

// ─────────────────────────────────────────────
// Fakes: store repositories
// ─────────────────────────────────────────────

type fakeUserRepository struct {
	createFn         func(ctx context.Context, user models.User) (models.User, error)
	findByEmailFn    func(ctx context.Context, email string) (models.User, error)
	findByIDFn       func(ctx context.Context, userID string) (models.User, error)
	updateMetadataFn func(ctx context.Context, userID string, update models.UserMetadataUpdate) (models.User, error)
	updatePasswordFn func(ctx context.Context, userID, passwordHash string) error
}

func (f *fakeUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if f.createFn != nil {
		return f.createFn(ctx, user)
	}
	return user, nil
}

func (f *fakeUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if f.findByEmailFn != nil {
		return f.findByEmailFn(ctx, email)
	}
	return models.User{}, store.ErrUserNotFound
}

func (f *fakeUserRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, userID)
	}
	return models.User{ID: userID}, nil
}

func (f *fakeUserRepository) UpdateUserMetadata(ctx context.Context, userID string, update models.UserMetadataUpdate) (models.User, error) {
	if f.updateMetadataFn != nil {
		return f.updateMetadataFn(ctx, userID, update)
	}
	return models.User{ID: userID}, nil
}

func (f *fakeUserRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	if f.updatePasswordFn != nil {
		return f.updatePasswordFn(ctx, userID, passwordHash)
	}
	return nil
}

type fakeQRCodeRepository struct {
	createFn func(ctx context.Context, qrCode models.QRCode) (models.QRCode, error)
	listFn   func(ctx context.Context, userID string) ([]models.QRCode, error)
	updateFn func(ctx context.Context, update models.QRCodeUpdate) (models.QRCode, error)
	deleteFn func(ctx context.Context, id, userID string) error
	scanFn   func(ctx context.Context, id string) (models.PublicQRCode, error)
}

func (f *fakeQRCodeRepository) CreateQRCode(ctx context.Context, qrCode models.QRCode) (models.QRCode, error) {
	if f.createFn != nil {
		return f.createFn(ctx, qrCode)
	}
	return qrCode, nil
}

func (f *fakeQRCodeRepository) ListQRCodes(ctx context.Context, userID string) ([]models.QRCode, error) {
	if f.listFn != nil {
		return f.listFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeQRCodeRepository) UpdateQRCode(ctx context.Context, update models.QRCodeUpdate) (models.QRCode, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, update)
	}
	return models.QRCode{ID: update.ID, UserID: update.UserID}, nil
}

func (f *fakeQRCodeRepository) DeleteQRCode(ctx context.Context, id, userID string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id, userID)
	}
	return nil
}

func (f *fakeQRCodeRepository) ScanQRCode(ctx context.Context, id string) (models.PublicQRCode, error) {
	if f.scanFn != nil {
		return f.scanFn(ctx, id)
	}
	return models.PublicQRCode{ID: id}, nil
}

type fakeFeedbackRepository struct {
	listFn         func(ctx context.Context, filter models.FeedbackFilter) (models.FeedbackList, error)
	recentFn       func(ctx context.Context, userID string, limit uint64) ([]models.Feedback, error)
	updateStatusFn func(ctx context.Context, id, userID string, status models.FeedbackStatus) (models.Feedback, error)
	insertFn       func(ctx context.Context, feedback models.Feedback) (models.Feedback, error)
}

func (f *fakeFeedbackRepository) ListFeedbacks(ctx context.Context, filter models.FeedbackFilter) (models.FeedbackList, error) {
	if f.listFn != nil {
		return f.listFn(ctx, filter)
	}
	return models.FeedbackList{}, nil
}

func (f *fakeFeedbackRepository) RecentFeedbacks(ctx context.Context, userID string, limit uint64) ([]models.Feedback, error) {
	if f.recentFn != nil {
		return f.recentFn(ctx, userID, limit)
	}
	return nil, nil
}

func (f *fakeFeedbackRepository) MapPoints(context.Context, string) ([]models.FeedbackMapPoint, error) {
	return nil, nil
}

func (f *fakeFeedbackRepository) UpdateFeedbackStatus(ctx context.Context, id, userID string, status models.FeedbackStatus) (models.Feedback, error) {
	if f.updateStatusFn != nil {
		return f.updateStatusFn(ctx, id, userID, status)
	}
	return models.Feedback{ID: id, UserID: userID, Status: status}, nil
}

func (f *fakeFeedbackRepository) InsertPublicFeedback(ctx context.Context, feedback models.Feedback) (models.Feedback, error) {
	if f.insertFn != nil {
		return f.insertFn(ctx, feedback)
	}
	feedback.UserID = "owner"
	return feedback, nil
}

func (f *fakeFeedbackRepository) GetFeedback(_ context.Context, id string) (models.Feedback, error) {
	return models.Feedback{ID: id}, nil
}

func (f *fakeFeedbackRepository) ListUnanalyzed(context.Context, uint64) ([]models.Feedback, error) {
	return nil, nil
}

func (f *fakeFeedbackRepository) SaveSentiment(_ context.Context, id string, _ models.SentimentResult, _ time.Time) (models.Feedback, error) {
	return models.Feedback{ID: id}, nil
}

type fakeNotificationRepository struct {
	createFn   func(ctx context.Context, n models.Notification) (models.Notification, error)
	markReadFn func(ctx context.Context, id, userID string) (models.Notification, error)
}

func (f *fakeNotificationRepository) CreateNotification(ctx context.Context, n models.Notification) (models.Notification, error) {
	if f.createFn != nil {
		return f.createFn(ctx, n)
	}
	return n, nil
}

func (f *fakeNotificationRepository) ListNotifications(context.Context, string, uint64) (models.NotificationList, error) {
	return models.NotificationList{}, nil
}

func (f *fakeNotificationRepository) MarkNotificationRead(ctx context.Context, id, userID string) (models.Notification, error) {
	if f.markReadFn != nil {
		return f.markReadFn(ctx, id, userID)
	}
	return models.Notification{ID: id, UserID: userID, IsRead: true}, nil
}

func (f *fakeNotificationRepository) MarkAllNotificationsRead(context.Context, string) (int64, error) {
	return 0, nil
}

type fakeProviderRepository struct {
	getByUserFn func(ctx context.Context, userID string) (models.Provider, error)
	upsertFn    func(ctx context.Context, id, name string, update models.ProviderUpdate) (models.Provider, error)
	listFn      func(ctx context.Context, filter models.ProviderFilter) ([]models.Provider, error)
}

func (f *fakeProviderRepository) ListProviders(ctx context.Context, filter models.ProviderFilter) ([]models.Provider, error) {
	if f.listFn != nil {
		return f.listFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeProviderRepository) GetProviderByUser(ctx context.Context, userID string) (models.Provider, error) {
	if f.getByUserFn != nil {
		return f.getByUserFn(ctx, userID)
	}
	return models.Provider{}, store.ErrProviderNotFound
}

func (f *fakeProviderRepository) UpsertProvider(ctx context.Context, id, name string, update models.ProviderUpdate) (models.Provider, error) {
	if f.upsertFn != nil {
		return f.upsertFn(ctx, id, name, update)
	}
	return models.Provider{ID: id, Name: name, UserID: update.UserID}, nil
}

type fakeDashboardRepository struct {
	statsFn     func(ctx context.Context, userID string, dateRange models.DateRange) (models.DashboardStats, error)
	summaryFn   func(ctx context.Context, userID string, dateRange models.DateRange) (models.RatingSummary, error)
	benchmarkFn func(ctx context.Context, cnae string) (models.Benchmark, error)
}

func (f *fakeDashboardRepository) Stats(ctx context.Context, userID string, dateRange models.DateRange) (models.DashboardStats, error) {
	if f.statsFn != nil {
		return f.statsFn(ctx, userID, dateRange)
	}
	return models.DashboardStats{}, nil
}

func (f *fakeDashboardRepository) NPSTrend(context.Context, string, models.DateRange) ([]models.NPSPoint, error) {
	return nil, nil
}

func (f *fakeDashboardRepository) RatingSummary(ctx context.Context, userID string, dateRange models.DateRange) (models.RatingSummary, error) {
	if f.summaryFn != nil {
		return f.summaryFn(ctx, userID, dateRange)
	}
	return models.RatingSummary{}, nil
}

func (f *fakeDashboardRepository) Benchmark(ctx context.Context, cnae string) (models.Benchmark, error) {
	if f.benchmarkFn != nil {
		return f.benchmarkFn(ctx, cnae)
	}
	return models.Benchmark{CNAE: cnae}, nil
}

type fakeObjectStorage struct {
	objects []store.Object
	bodies  []string
	err     error
}

func (f *fakeObjectStorage) Put(_ context.Context, object store.Object) (models.UploadedFile, error) {
	if f.err != nil {
		return models.UploadedFile{}, f.err
	}
	body, _ := io.ReadAll(object.Body)
	f.objects = append(f.objects, object)
	f.bodies = append(f.bodies, string(body))
	return models.UploadedFile{Key: object.Key, URL: "https://cdn.test/" + object.Bucket + "/" + object.Key}, nil
}

// ─────────────────────────────────────────────
// Fakes: collaborators
// ─────────────────────────────────────────────

type publishedChange struct {
	Entity models.Entity
	Type   models.ChangeType
	UserID string
	Record any
}

type recordingPublisher struct {
	mu      sync.Mutex
	changes []publishedChange
}

func (p *recordingPublisher) PublishChange(_ context.Context, entity models.Entity, changeType models.ChangeType, userID string, record any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.changes = append(p.changes, publishedChange{Entity: entity, Type: changeType, UserID: userID, Record: record})
}

type fakeQueue struct {
	enqueued []models.Feedback
}

func (q *fakeQueue) Enqueue(_ context.Context, feedback models.Feedback) {
	q.enqueued = append(q.enqueued, feedback)
}

type fakeLimiter struct {
	allowed bool
	err     error
	keys    []string
}

func (l *fakeLimiter) Allow(_ context.Context, key string) (ratelimit.Result, error) {
	l.keys = append(l.keys, key)
	return ratelimit.Result{Allowed: l.allowed}, l.err
}

func fixedClock(t time.Time) clock {
	return func() time.Time { return t }
}
