package client

import (
	"context"
	"strings"

	"github.com/MKhiriev/veepo/internal/adapter"
	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/resource"
	"github.com/MKhiriev/veepo/internal/session"
	"github.com/MKhiriev/veepo/models"
)

// Billing is the plan catalog and the entry point of a subscription checkout.
type Billing struct {
	Plans *resource.Resource[[]models.BillingPlan]

	api adapter.APIClient
}

func NewBilling(ctx context.Context, api adapter.APIClient, sessions resource.SessionSource, log *logger.Logger) *Billing {
	return &Billing{
		Plans: resource.New(ctx, "billing_plans", sessions, func(ctx context.Context, _ session.Snapshot) ([]models.BillingPlan, error) {
			return api.BillingPlans(ctx)
		}, log),
		api: api,
	}
}

func (b *Billing) Refresh() {
	b.Plans.Refetch()
}

// Checkout opens a hosted checkout for priceID. The enterprise tier has no
// price and is sold through the sales team instead.
func (b *Billing) Checkout(ctx context.Context, priceID string) (models.CheckoutSession, error) {
	priceID = strings.TrimSpace(priceID)
	if priceID == "" || priceID == models.ContactPriceID {
		return models.CheckoutSession{}, ErrContactSales
	}
	return b.api.Checkout(ctx, priceID)
}

func (b *Billing) Close() {
	b.Plans.Close()
}
