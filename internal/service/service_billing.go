package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/veepo/internal/adapter"
	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/models"
)

// planCatalog lists the subscription plans. Price ids are the payment
// provider's; the enterprise tier is sold by contact only.
var planCatalog = []models.BillingPlan{
	{
		Name:           "Basic",
		MonthlyPrice:   29,
		AnnualPrice:    199,
		MonthlyPriceID: "price_1RPzJkBrqJeZRdGhmJ0hJ8J7",
		AnnualPriceID:  "price_1RPzL2BrqJeZRdGhLYfAXY6j",
		Features:       []string{"Up to 100 feedbacks/month", "1 QR code", "Basic dashboard"},
	},
	{
		Name:           "Pro",
		MonthlyPrice:   79,
		AnnualPrice:    758,
		MonthlyPriceID: "price_1RPzMHBrqJeZRdGh07iCgklt",
		AnnualPriceID:  "price_1RPzNLBrqJeZRdGhXS3G2PMg",
		Features:       []string{"Up to 1000 feedbacks/month", "10 QR codes", "Advanced dashboard", "Priority support"},
	},
	{
		Name:           "Master",
		MonthlyPrice:   199,
		AnnualPrice:    1910,
		MonthlyPriceID: "price_1RPzOvBrqJeZRdGhwALwBSCD",
		AnnualPriceID:  "price_1RPzORBrqJeZRdGhVG2Q1eZm",
		Features:       []string{"Unlimited feedbacks", "Unlimited QR codes", "Integration API", "Dedicated support"},
	},
	{
		Name:           "Enterprise",
		MonthlyPriceID: models.ContactPriceID,
		AnnualPriceID:  models.ContactPriceID,
		Features:       []string{"Custom volume", "Dedicated onboarding", "SLA"},
	},
}

type billingService struct {
	checkout adapter.CheckoutProvider
	logger   *logger.Logger
}

// NewBillingService returns the billing service. checkout may be nil when no
// payment provider is configured; Checkout then fails.
func NewBillingService(checkout adapter.CheckoutProvider, log *logger.Logger) BillingService {
	return &billingService{checkout: checkout, logger: log}
}

func (s *billingService) Plans(ctx context.Context) []models.BillingPlan {
	plans := make([]models.BillingPlan, len(planCatalog))
	copy(plans, planCatalog)
	return plans
}

// Checkout opens a checkout session for req.PriceID. Rejections by the
// provider are validation errors; any other failure is an upstream error.
func (s *billingService) Checkout(ctx context.Context, req models.CheckoutRequest) (models.CheckoutSession, error) {
	if s.checkout == nil {
		return models.CheckoutSession{}, ErrCheckoutNotConfigured
	}

	session, err := s.checkout.CreateSession(ctx, req)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "billingService.Checkout").Str("price_id", req.PriceID).Msg("checkout session failed")
		if errors.Is(err, adapter.ErrBadRequest) {
			return models.CheckoutSession{}, fmt.Errorf("%w: %w", ErrValidation, err)
		}
		return models.CheckoutSession{}, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}

	return session, nil
}
