// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/store"
	"github.com/MKhiriev/veepo/internal/utils"
	"github.com/MKhiriev/veepo/internal/validators"
	"github.com/MKhiriev/veepo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type publicFeedbackFixture struct {
	feedbacks     *fakeFeedbackRepository
	notifications *fakeNotificationRepository
	limiter       *fakeLimiter
	publisher     *recordingPublisher
	queue         *fakeQueue
	hasher        *utils.Hasher
	svc           PublicFeedbackService
}

func newPublicFeedbackFixture() *publicFeedbackFixture {
	f := &publicFeedbackFixture{
		feedbacks:     &fakeFeedbackRepository{},
		notifications: &fakeNotificationRepository{},
		limiter:       &fakeLimiter{allowed: true},
		publisher:     &recordingPublisher{},
		queue:         &fakeQueue{},
		hasher:        utils.NewHasher("test-key"),
	}
	storages := &store.Storages{
		QRCodeRepository:       &fakeQRCodeRepository{},
		FeedbackRepository:     f.feedbacks,
		NotificationRepository: f.notifications,
	}
	inner := NewPublicFeedbackService(storages, f.limiter, f.hasher, f.publisher, f.queue, logger.Nop())
	f.svc = NewPublicFeedbackValidationService(inner, validators.NewDomainValidator())
	return f
}

func TestPublicFeedbackService_Submit(t *testing.T) {
	f := newPublicFeedbackFixture()
	var stored models.Feedback
	f.feedbacks.insertFn = func(_ context.Context, feedback models.Feedback) (models.Feedback, error) {
		stored = feedback
		feedback.UserID = "owner"
		return feedback, nil
	}
	var notification models.Notification
	f.notifications.createFn = func(_ context.Context, n models.Notification) (models.Notification, error) {
		notification = n
		return n, nil
	}

	inserted, err := f.svc.Submit(context.Background(), "qr1", "203.0.113.7", models.PublicFeedback{
		Rating:       5,
		Comment:      "  Ótimo atendimento ",
		CustomerName: "Ana",
	})

	require.NoError(t, err)
	require.NotNil(t, stored.QRCodeID)
	assert.Equal(t, "qr1", *stored.QRCodeID)
	assert.Equal(t, models.FeedbackPending, stored.Status)
	assert.Equal(t, models.FeedbackSourceQRCode, stored.Source)
	assert.Equal(t, "Ótimo atendimento", stored.Comment)
	assert.NotEmpty(t, stored.ID)

	assert.Equal(t, []string{f.hasher.HashParts("203.0.113.7", "qr1")}, f.limiter.keys)

	assert.Equal(t, "owner", notification.UserID)
	assert.Equal(t, models.NewFeedbackNotificationMessage, notification.Message)
	assert.Equal(t, NewFeedbackNotificationLink, notification.Link)

	require.Len(t, f.publisher.changes, 2)
	assert.Equal(t, models.EntityFeedbacks, f.publisher.changes[0].Entity)
	assert.Equal(t, models.ChangeInsert, f.publisher.changes[0].Type)
	assert.Equal(t, "owner", f.publisher.changes[0].UserID)
	assert.Equal(t, models.EntityNotifications, f.publisher.changes[1].Entity)

	require.Len(t, f.queue.enqueued, 1)
	assert.Equal(t, inserted, f.queue.enqueued[0])
}

func TestPublicFeedbackService_Submit_InvalidInputNeverReachesStorage(t *testing.T) {
	lat := 10.0
	tests := []struct {
		name  string
		input models.PublicFeedback
	}{
		{name: "rating zero", input: models.PublicFeedback{Rating: 0}},
		{name: "rating six", input: models.PublicFeedback{Rating: 6}},
		{name: "bad email", input: models.PublicFeedback{Rating: 3, CustomerEmail: "nope"}},
		{name: "latitude without longitude", input: models.PublicFeedback{Rating: 3, Latitude: &lat}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPublicFeedbackFixture()
			f.feedbacks.insertFn = func(context.Context, models.Feedback) (models.Feedback, error) {
				t.Fatal("storage must not be called")
				return models.Feedback{}, nil
			}

			_, err := f.svc.Submit(context.Background(), "qr1", "client", tt.input)

			assert.ErrorIs(t, err, ErrValidation)
			assert.Empty(t, f.limiter.keys)
			assert.Empty(t, f.publisher.changes)
		})
	}
}

func TestPublicFeedbackService_Submit_RateLimited(t *testing.T) {
	f := newPublicFeedbackFixture()
	f.limiter.allowed = false
	f.feedbacks.insertFn = func(context.Context, models.Feedback) (models.Feedback, error) {
		t.Fatal("storage must not be called")
		return models.Feedback{}, nil
	}

	_, err := f.svc.Submit(context.Background(), "qr1", "client", models.PublicFeedback{Rating: 4})

	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Empty(t, f.queue.enqueued)
}

func TestPublicFeedbackService_Submit_LimiterFailureAllows(t *testing.T) {
	f := newPublicFeedbackFixture()
	f.limiter.allowed = false
	f.limiter.err = errors.New("redis unavailable")

	_, err := f.svc.Submit(context.Background(), "qr1", "client", models.PublicFeedback{Rating: 4})

	require.NoError(t, err)
	assert.Len(t, f.queue.enqueued, 1)
}

func TestPublicFeedbackService_Submit_UnknownQRCode(t *testing.T) {
	f := newPublicFeedbackFixture()
	f.feedbacks.insertFn = func(context.Context, models.Feedback) (models.Feedback, error) {
		return models.Feedback{}, store.ErrInvalidReference
	}

	_, err := f.svc.Submit(context.Background(), "missing", "client", models.PublicFeedback{Rating: 4})

	assert.ErrorIs(t, err, store.ErrInvalidReference)
	assert.Empty(t, f.publisher.changes)
	assert.Empty(t, f.queue.enqueued)
}

func TestPublicFeedbackService_Submit_NotificationFailureKeepsFeedback(t *testing.T) {
	f := newPublicFeedbackFixture()
	f.notifications.createFn = func(context.Context, models.Notification) (models.Notification, error) {
		return models.Notification{}, errors.New("insert failed")
	}

	_, err := f.svc.Submit(context.Background(), "qr1", "client", models.PublicFeedback{Rating: 2})

	require.NoError(t, err)
	require.Len(t, f.publisher.changes, 1)
	assert.Equal(t, models.EntityFeedbacks, f.publisher.changes[0].Entity)
	assert.Len(t, f.queue.enqueued, 1)
}
