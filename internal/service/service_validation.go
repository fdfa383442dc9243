package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/veepo/internal/validators"
	"github.com/MKhiriev/veepo/models"
)

// The validation services below wrap a service and reject invalid input
// before the wrapped service, and therefore any storage call, runs.
// Methods without input rules are promoted from the embedded service.

func validate(ctx context.Context, v validators.Validator, obj any, fields ...string) error {
	if err := v.Validate(ctx, obj, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

type AuthValidationService struct {
	AuthService
	validator validators.Validator
}

func NewAuthValidationService(inner AuthService, validator validators.Validator) AuthService {
	return &AuthValidationService{AuthService: inner, validator: validator}
}

func (v *AuthValidationService) SignUp(ctx context.Context, credentials models.Credentials) (models.User, error) {
	if err := validate(ctx, v.validator, credentials); err != nil {
		return models.User{}, err
	}
	return v.AuthService.SignUp(ctx, credentials)
}

// Login only requires a password to be present: length rules apply to new
// passwords, not to existing ones.
func (v *AuthValidationService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	if err := validate(ctx, v.validator, credentials, validators.FieldEmail, validators.FieldPasswordPresent); err != nil {
		return models.User{}, err
	}
	return v.AuthService.Login(ctx, credentials)
}

func (v *AuthValidationService) ChangePassword(ctx context.Context, userID string, change models.PasswordChange) error {
	if err := validate(ctx, v.validator, change); err != nil {
		return err
	}
	return v.AuthService.ChangePassword(ctx, userID, change)
}

type QRCodeValidationService struct {
	QRCodeService
	validator validators.Validator
}

func NewQRCodeValidationService(inner QRCodeService, validator validators.Validator) QRCodeService {
	return &QRCodeValidationService{QRCodeService: inner, validator: validator}
}

func (v *QRCodeValidationService) CreateQRCode(ctx context.Context, qrCode models.QRCodeCreate) (models.QRCode, error) {
	if err := validate(ctx, v.validator, qrCode); err != nil {
		return models.QRCode{}, err
	}
	return v.QRCodeService.CreateQRCode(ctx, qrCode)
}

func (v *QRCodeValidationService) UpdateQRCode(ctx context.Context, update models.QRCodeUpdate) (models.QRCode, error) {
	if err := validate(ctx, v.validator, update); err != nil {
		return models.QRCode{}, err
	}
	return v.QRCodeService.UpdateQRCode(ctx, update)
}

type FeedbackValidationService struct {
	FeedbackService
	validator validators.Validator
}

func NewFeedbackValidationService(inner FeedbackService, validator validators.Validator) FeedbackService {
	return &FeedbackValidationService{FeedbackService: inner, validator: validator}
}

func (v *FeedbackValidationService) ListFeedbacks(ctx context.Context, filter models.FeedbackFilter) (models.FeedbackList, error) {
	if err := validate(ctx, v.validator, filter); err != nil {
		return models.FeedbackList{}, err
	}
	return v.FeedbackService.ListFeedbacks(ctx, filter)
}

func (v *FeedbackValidationService) UpdateStatus(ctx context.Context, id, userID string, status models.FeedbackStatus) (models.Feedback, error) {
	if err := validate(ctx, v.validator, models.FeedbackStatusUpdate{Status: status}); err != nil {
		return models.Feedback{}, err
	}
	return v.FeedbackService.UpdateStatus(ctx, id, userID, status)
}

type PublicFeedbackValidationService struct {
	PublicFeedbackService
	validator validators.Validator
}

func NewPublicFeedbackValidationService(inner PublicFeedbackService, validator validators.Validator) PublicFeedbackService {
	return &PublicFeedbackValidationService{PublicFeedbackService: inner, validator: validator}
}

func (v *PublicFeedbackValidationService) Submit(ctx context.Context, qrCodeID, clientKey string, feedback models.PublicFeedback) (models.Feedback, error) {
	if err := validate(ctx, v.validator, feedback); err != nil {
		return models.Feedback{}, err
	}
	return v.PublicFeedbackService.Submit(ctx, qrCodeID, clientKey, feedback)
}

type CampaignValidationService struct {
	CampaignService
	validator validators.Validator
}

func NewCampaignValidationService(inner CampaignService, validator validators.Validator) CampaignService {
	return &CampaignValidationService{CampaignService: inner, validator: validator}
}

func (v *CampaignValidationService) CreateCampaign(ctx context.Context, input models.CampaignInput) (models.Campaign, error) {
	if err := validate(ctx, v.validator, input); err != nil {
		return models.Campaign{}, err
	}
	return v.CampaignService.CreateCampaign(ctx, input)
}

func (v *CampaignValidationService) UpdateCampaign(ctx context.Context, input models.CampaignInput) (models.Campaign, error) {
	fields := []string{validators.FieldID, validators.FieldUserID, validators.FieldNotEmpty, validators.FieldDateRange}
	if input.Name != nil {
		fields = append(fields, validators.FieldName)
	}
	if err := validate(ctx, v.validator, input, fields...); err != nil {
		return models.Campaign{}, err
	}
	return v.CampaignService.UpdateCampaign(ctx, input)
}

type ProviderValidationService struct {
	ProviderService
	validator validators.Validator
}

func NewProviderValidationService(inner ProviderService, validator validators.Validator) ProviderService {
	return &ProviderValidationService{ProviderService: inner, validator: validator}
}

func (v *ProviderValidationService) ListProviders(ctx context.Context, filter models.ProviderFilter) ([]models.Provider, error) {
	if err := validate(ctx, v.validator, filter); err != nil {
		return nil, err
	}
	return v.ProviderService.ListProviders(ctx, filter)
}

func (v *ProviderValidationService) SaveProfile(ctx context.Context, update models.ProviderUpdate) (models.Provider, error) {
	if err := validate(ctx, v.validator, update); err != nil {
		return models.Provider{}, err
	}
	return v.ProviderService.SaveProfile(ctx, update)
}

type DashboardValidationService struct {
	DashboardService
	validator validators.Validator
}

func NewDashboardValidationService(inner DashboardService, validator validators.Validator) DashboardService {
	return &DashboardValidationService{DashboardService: inner, validator: validator}
}

func (v *DashboardValidationService) Stats(ctx context.Context, userID string, dateRange models.DateRange) (models.DashboardStats, error) {
	if err := v.checkRange(ctx, dateRange); err != nil {
		return models.DashboardStats{}, err
	}
	return v.DashboardService.Stats(ctx, userID, dateRange)
}

func (v *DashboardValidationService) NPSTrend(ctx context.Context, userID string, dateRange models.DateRange) ([]models.NPSPoint, error) {
	if err := v.checkRange(ctx, dateRange); err != nil {
		return nil, err
	}
	return v.DashboardService.NPSTrend(ctx, userID, dateRange)
}

func (v *DashboardValidationService) Comparison(ctx context.Context, userID string, dateRange models.DateRange) (models.BenchmarkComparison, error) {
	if err := v.checkRange(ctx, dateRange); err != nil {
		return models.BenchmarkComparison{}, err
	}
	return v.DashboardService.Comparison(ctx, userID, dateRange)
}

// checkRange skips open ranges; the service fills in the missing bound.
func (v *DashboardValidationService) checkRange(ctx context.Context, dateRange models.DateRange) error {
	if dateRange.Start.IsZero() || dateRange.End.IsZero() {
		return nil
	}
	return validate(ctx, v.validator, dateRange)
}

type BillingValidationService struct {
	BillingService
	validator validators.Validator
}

func NewBillingValidationService(inner BillingService, validator validators.Validator) BillingService {
	return &BillingValidationService{BillingService: inner, validator: validator}
}

func (v *BillingValidationService) Checkout(ctx context.Context, req models.CheckoutRequest) (models.CheckoutSession, error) {
	if err := validate(ctx, v.validator, req); err != nil {
		return models.CheckoutSession{}, err
	}
	return v.BillingService.Checkout(ctx, req)
}
