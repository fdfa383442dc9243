package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/veepo/internal/validators"
	"github.com/MKhiriev/veepo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mocks: inner services
// ─────────────────────────────────────────────

type mockInnerAuthService struct {
	AuthService
	calls int
}

func (m *mockInnerAuthService) SignUp(context.Context, models.Credentials) (models.User, error) {
	m.calls++
	return models.User{ID: "u1"}, nil
}

func (m *mockInnerAuthService) Login(context.Context, models.Credentials) (models.User, error) {
	m.calls++
	return models.User{ID: "u1"}, nil
}

func (m *mockInnerAuthService) ChangePassword(context.Context, string, models.PasswordChange) error {
	m.calls++
	return nil
}

type mockInnerCampaignService struct {
	CampaignService
	calls int
}

func (m *mockInnerCampaignService) CreateCampaign(_ context.Context, input models.CampaignInput) (models.Campaign, error) {
	m.calls++
	return models.Campaign{UserID: input.UserID}, nil
}

func (m *mockInnerCampaignService) UpdateCampaign(_ context.Context, input models.CampaignInput) (models.Campaign, error) {
	m.calls++
	return models.Campaign{ID: input.ID}, nil
}

type mockInnerQRCodeService struct {
	QRCodeService
	calls int
}

func (m *mockInnerQRCodeService) CreateQRCode(context.Context, models.QRCodeCreate) (models.QRCode, error) {
	m.calls++
	return models.QRCode{}, nil
}

func (m *mockInnerQRCodeService) UpdateQRCode(context.Context, models.QRCodeUpdate) (models.QRCode, error) {
	m.calls++
	return models.QRCode{}, nil
}

// ─────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────

func TestAuthValidationService(t *testing.T) {
	tests := []struct {
		name    string
		call    func(svc AuthService) error
		wantErr error
	}{
		{
			name: "sign up ok",
			call: func(svc AuthService) error {
				_, err := svc.SignUp(context.Background(), models.Credentials{Email: "a@b.co", Password: "secret1"})
				return err
			},
		},
		{
			name: "sign up short password",
			call: func(svc AuthService) error {
				_, err := svc.SignUp(context.Background(), models.Credentials{Email: "a@b.co", Password: "12345"})
				return err
			},
			wantErr: validators.ErrPasswordTooShort,
		},
		{
			name: "sign up bad email",
			call: func(svc AuthService) error {
				_, err := svc.SignUp(context.Background(), models.Credentials{Email: "not-an-email", Password: "secret1"})
				return err
			},
			wantErr: validators.ErrInvalidEmail,
		},
		{
			name: "login accepts short existing password",
			call: func(svc AuthService) error {
				_, err := svc.Login(context.Background(), models.Credentials{Email: "a@b.co", Password: "123"})
				return err
			},
		},
		{
			name: "login empty password",
			call: func(svc AuthService) error {
				_, err := svc.Login(context.Background(), models.Credentials{Email: "a@b.co"})
				return err
			},
			wantErr: validators.ErrEmptyPassword,
		},
		{
			name: "change password too short",
			call: func(svc AuthService) error {
				return svc.ChangePassword(context.Background(), "u1", models.PasswordChange{Password: "abc"})
			},
			wantErr: validators.ErrPasswordTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := &mockInnerAuthService{}
			err := tt.call(NewAuthValidationService(inner, validators.NewDomainValidator()))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, ErrValidation)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, inner.calls)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, inner.calls)
		})
	}
}

func TestQRCodeValidationService(t *testing.T) {
	inner := &mockInnerQRCodeService{}
	svc := NewQRCodeValidationService(inner, validators.NewDomainValidator())

	_, err := svc.CreateQRCode(context.Background(), models.QRCodeCreate{UserID: "u1", Name: " ", Description: "d"})
	assert.ErrorIs(t, err, validators.ErrEmptyName)

	_, err = svc.CreateQRCode(context.Background(), models.QRCodeCreate{UserID: "u1", Name: "n", Description: "d", ColorScheme: "red"})
	assert.ErrorIs(t, err, validators.ErrInvalidColorScheme)

	_, err = svc.UpdateQRCode(context.Background(), models.QRCodeUpdate{ID: "q1", UserID: "u1"})
	assert.ErrorIs(t, err, validators.ErrNoFieldsToUpdate)

	assert.Zero(t, inner.calls)

	_, err = svc.CreateQRCode(context.Background(), models.QRCodeCreate{UserID: "u1", Name: "n", Description: "d"})
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls)
}

func TestCampaignValidationService(t *testing.T) {
	start := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -1)
	name := "Inverno"

	inner := &mockInnerCampaignService{}
	svc := NewCampaignValidationService(inner, validators.NewDomainValidator())

	_, err := svc.CreateCampaign(context.Background(), models.CampaignInput{UserID: "u1"})
	assert.ErrorIs(t, err, validators.ErrEmptyName)

	_, err = svc.CreateCampaign(context.Background(), models.CampaignInput{UserID: "u1", Name: &name, StartDate: &start, EndDate: &end})
	assert.ErrorIs(t, err, validators.ErrInvalidDateRange)

	_, err = svc.UpdateCampaign(context.Background(), models.CampaignInput{ID: "c1", UserID: "u1"})
	assert.ErrorIs(t, err, validators.ErrNoFieldsToUpdate)

	empty := "  "
	_, err = svc.UpdateCampaign(context.Background(), models.CampaignInput{ID: "c1", UserID: "u1", Name: &empty})
	assert.ErrorIs(t, err, validators.ErrEmptyName)

	assert.Zero(t, inner.calls)

	active := false
	_, err = svc.UpdateCampaign(context.Background(), models.CampaignInput{ID: "c1", UserID: "u1", IsActive: &active})
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls)
}
