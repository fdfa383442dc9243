// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/veepo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptr[T any](v T) *T { return &v }

func validQRCodeCreate() models.QRCodeCreate {
	return models.QRCodeCreate{
		UserID:      "user-1",
		Name:        "Balcão",
		Description: "Mesa de atendimento",
		ColorScheme: "#DDF247",
	}
}

func validPublicFeedback() models.PublicFeedback {
	return models.PublicFeedback{
		Rating:        5,
		Comment:       "Ótimo atendimento",
		CustomerName:  "Ana",
		CustomerEmail: "ana@example.com",
		Latitude:      ptr(-23.55),
		Longitude:     ptr(-46.63),
	}
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestNewDomainValidator(t *testing.T) {
	require.NotNil(t, NewDomainValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewDomainValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("value and pointer", func(t *testing.T) {
		qr := validQRCodeCreate()
		require.NoError(t, v.Validate(ctx, qr))
		require.NoError(t, v.Validate(ctx, &qr))
	})

	t.Run("unknown field", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, validQRCodeCreate(), "bogus"), ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// Credentials / password
// ---------------------------------------------------------------------------

func TestValidate_Credentials(t *testing.T) {
	v := NewDomainValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		creds   models.Credentials
		fields  []string
		wantErr error
	}{
		{"valid sign-up", models.Credentials{Email: "owner@veepo.com.br", Password: "secret1"}, nil, nil},
		{"short password", models.Credentials{Email: "owner@veepo.com.br", Password: "12345"}, nil, ErrPasswordTooShort},
		{"exactly six", models.Credentials{Email: "owner@veepo.com.br", Password: "123456"}, nil, nil},
		{"empty password", models.Credentials{Email: "owner@veepo.com.br"}, nil, ErrEmptyPassword},
		{"bad email", models.Credentials{Email: "owner", Password: "secret1"}, nil, ErrInvalidEmail},
		{"display-name email", models.Credentials{Email: "Owner <owner@veepo.com.br>", Password: "secret1"}, nil, ErrInvalidEmail},
		{"sign-in short password allowed", models.Credentials{Email: "owner@veepo.com.br", Password: "123"}, []string{FieldEmail, FieldPasswordPresent}, nil},
		{"sign-in empty password", models.Credentials{Email: "owner@veepo.com.br"}, []string{FieldEmail, FieldPasswordPresent}, ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.creds, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_PasswordChange(t *testing.T) {
	v := NewDomainValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.PasswordChange{Password: "newpass"}))
	assert.ErrorIs(t, v.Validate(ctx, models.PasswordChange{Password: "abc"}), ErrPasswordTooShort)
	// multi-byte runes count as characters
	assert.NoError(t, v.Validate(ctx, models.PasswordChange{Password: "ççççç1"}))
}

// ---------------------------------------------------------------------------
// QR codes
// ---------------------------------------------------------------------------

func TestValidate_QRCodeCreate(t *testing.T) {
	v := NewDomainValidator()
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, validQRCodeCreate()))
	})

	t.Run("empty color scheme allowed", func(t *testing.T) {
		qr := validQRCodeCreate()
		qr.ColorScheme = ""
		assert.NoError(t, v.Validate(ctx, qr))
	})

	t.Run("blank name", func(t *testing.T) {
		qr := validQRCodeCreate()
		qr.Name = "   "
		assert.ErrorIs(t, v.Validate(ctx, qr), ErrEmptyName)
	})

	t.Run("blank description", func(t *testing.T) {
		qr := validQRCodeCreate()
		qr.Description = ""
		assert.ErrorIs(t, v.Validate(ctx, qr), ErrEmptyDescription)
	})

	t.Run("missing owner", func(t *testing.T) {
		qr := validQRCodeCreate()
		qr.UserID = ""
		assert.ErrorIs(t, v.Validate(ctx, qr), ErrInvalidUserID)
	})

	t.Run("bad color", func(t *testing.T) {
		qr := validQRCodeCreate()
		qr.ColorScheme = "green"
		assert.ErrorIs(t, v.Validate(ctx, qr), ErrInvalidColorScheme)
	})
}

func TestValidate_QRCodeUpdate(t *testing.T) {
	v := NewDomainValidator()
	ctx := context.Background()

	base := models.QRCodeUpdate{ID: "qr-1", UserID: "user-1"}

	assert.ErrorIs(t, v.Validate(ctx, base), ErrNoFieldsToUpdate)

	withActive := base
	withActive.IsActive = ptr(false)
	assert.NoError(t, v.Validate(ctx, withActive))

	blankName := base
	blankName.Name = ptr("")
	assert.ErrorIs(t, v.Validate(ctx, blankName), ErrEmptyName)

	noID := withActive
	noID.ID = ""
	assert.ErrorIs(t, v.Validate(ctx, noID), ErrInvalidID)
}

// ---------------------------------------------------------------------------
// Feedbacks
// ---------------------------------------------------------------------------

func TestValidate_PublicFeedback(t *testing.T) {
	v := NewDomainValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.PublicFeedback)
		wantErr error
	}{
		{"valid", func(*models.PublicFeedback) {}, nil},
		{"rating zero", func(f *models.PublicFeedback) { f.Rating = 0 }, ErrInvalidRating},
		{"rating six", func(f *models.PublicFeedback) { f.Rating = 6 }, ErrInvalidRating},
		{"rating one", func(f *models.PublicFeedback) { f.Rating = 1 }, nil},
		{"no email", func(f *models.PublicFeedback) { f.CustomerEmail = "" }, nil},
		{"bad email", func(f *models.PublicFeedback) { f.CustomerEmail = "ana@" }, ErrInvalidEmail},
		{"long comment", func(f *models.PublicFeedback) { f.Comment = strings.Repeat("a", MaxCommentLength+1) }, ErrCommentTooLong},
		{"max comment", func(f *models.PublicFeedback) { f.Comment = strings.Repeat("a", MaxCommentLength) }, nil},
		{"half coordinates", func(f *models.PublicFeedback) { f.Longitude = nil }, ErrInvalidCoordinates},
		{"latitude out of range", func(f *models.PublicFeedback) { f.Latitude = ptr(91.0) }, ErrInvalidCoordinates},
		{"no coordinates", func(f *models.PublicFeedback) { f.Latitude, f.Longitude = nil, nil }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := validPublicFeedback()
			tt.mutate(&fb)

			err := v.Validate(ctx, &fb)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_FeedbackStatusUpdate(t *testing.T) {
	v := NewDomainValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.FeedbackStatusUpdate{Status: models.FeedbackResponded}))
	assert.ErrorIs(t, v.Validate(ctx, models.FeedbackStatusUpdate{Status: "deleted"}), ErrInvalidStatus)
}

func TestValidate_FeedbackFilter(t *testing.T) {
	v := NewDomainValidator()
	ctx := context.Background()
	now := time.Now()

	assert.NoError(t, v.Validate(ctx, models.FeedbackFilter{UserID: "u", Statuses: models.ActiveFeedbackStatuses}))
	assert.ErrorIs(t, v.Validate(ctx, models.FeedbackFilter{UserID: "u", Statuses: []models.FeedbackStatus{"x"}}), ErrInvalidStatus)
	assert.ErrorIs(t, v.Validate(ctx, models.FeedbackFilter{UserID: "u", StartDate: &now, EndDate: ptr(now.Add(-time.Hour))}), ErrInvalidDateRange)
	assert.ErrorIs(t, v.Validate(ctx, models.FeedbackFilter{}), ErrInvalidUserID)
}

// ---------------------------------------------------------------------------
// Campaigns
// ---------------------------------------------------------------------------

func TestValidate_CampaignInput(t *testing.T) {
	v := NewDomainValidator()
	ctx := context.Background()
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	create := models.CampaignInput{UserID: "u", Name: ptr("Inverno"), StartDate: &start, EndDate: &end}
	assert.NoError(t, v.Validate(ctx, create))

	reversed := create
	reversed.StartDate, reversed.EndDate = &end, &start
	assert.ErrorIs(t, v.Validate(ctx, reversed), ErrInvalidDateRange)

	noName := create
	noName.Name = nil
	assert.ErrorIs(t, v.Validate(ctx, noName), ErrEmptyName)

	update := models.CampaignInput{ID: "c-1", UserID: "u"}
	assert.ErrorIs(t, v.Validate(ctx, update, FieldID, FieldUserID, FieldNotEmpty, FieldDateRange), ErrNoFieldsToUpdate)
	update.IsActive = ptr(true)
	assert.NoError(t, v.Validate(ctx, update, FieldID, FieldUserID, FieldNotEmpty, FieldDateRange))
}

// ---------------------------------------------------------------------------
// Providers
// ---------------------------------------------------------------------------

func TestValidate_ProviderUpdate(t *testing.T) {
	v := NewDomainValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.ProviderUpdate{UserID: "u", State: ptr("SP"), WebsiteURL: ptr("https://veepo.com.br")}))
	assert.NoError(t, v.Validate(ctx, models.ProviderUpdate{UserID: "u", WebsiteURL: ptr("")}))
	assert.ErrorIs(t, v.Validate(ctx, models.ProviderUpdate{UserID: "u", WebsiteURL: ptr("veepo")}), ErrInvalidURL)
	assert.ErrorIs(t, v.Validate(ctx, models.ProviderUpdate{UserID: "u", State: ptr("São Paulo")}), ErrInvalidState)
}

func TestValidate_ProviderFilter(t *testing.T) {
	v := NewDomainValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.ProviderFilter{}))
	assert.NoError(t, v.Validate(ctx, models.ProviderFilter{State: "rj", SortBy: models.ProviderSortRanking}))
	assert.ErrorIs(t, v.Validate(ctx, models.ProviderFilter{SortBy: "name"}), ErrInvalidSort)
}

// ---------------------------------------------------------------------------
// Dashboard / billing
// ---------------------------------------------------------------------------

func TestValidate_DateRange(t *testing.T) {
	v := NewDomainValidator()
	ctx := context.Background()
	day := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, v.Validate(ctx, models.DateRange{Start: day, End: day}))
	assert.ErrorIs(t, v.Validate(ctx, models.DateRange{Start: day, End: day.AddDate(0, 0, -1)}), ErrInvalidDateRange)
}

func TestValidate_CheckoutRequest(t *testing.T) {
	v := NewDomainValidator()
	ctx := context.Background()

	ok := models.CheckoutRequest{PriceID: "price_pro_monthly", UserID: "u", UserEmail: "owner@veepo.com.br"}
	assert.NoError(t, v.Validate(ctx, ok))

	contact := ok
	contact.PriceID = models.ContactPriceID
	assert.ErrorIs(t, v.Validate(ctx, contact), ErrInvalidPriceID)

	empty := ok
	empty.PriceID = " "
	assert.ErrorIs(t, v.Validate(ctx, empty), ErrInvalidPriceID)
}
