package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/veepo/internal/config"
	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/utils"
	"github.com/MKhiriev/veepo/models"
)

type stripeCheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type stripeCheckoutProvider struct {
	client     *utils.HTTPClient
	successURL string
	cancelURL  string
	logger     *logger.Logger
}

// NewCheckoutProvider returns a [CheckoutProvider] speaking the Stripe
// Checkout Sessions API. Success and cancel pages live under publicAppURL.
func NewCheckoutProvider(cfg config.CheckoutAdapter, publicAppURL string, log *logger.Logger) (CheckoutProvider, error) {
	if strings.TrimSpace(cfg.SecretKey) == "" {
		return nil, fmt.Errorf("%w: checkout secret key is empty", ErrNotConfigured)
	}

	client := utils.NewHTTPClient(cfg.URL, cfg.Timeout)
	client.SetBasicAuth(cfg.SecretKey, "")

	appURL := utils.NormalizeBaseURL(publicAppURL)
	return &stripeCheckoutProvider{
		client:     client,
		successURL: appURL + "/payment/success",
		cancelURL:  appURL + "/billing",
		logger:     log,
	}, nil
}

// CreateSession opens a subscription checkout for one unit of req.PriceID
// paid by card.
func (p *stripeCheckoutProvider) CreateSession(ctx context.Context, req models.CheckoutRequest) (models.CheckoutSession, error) {
	form := map[string]string{
		"mode":                    "subscription",
		"payment_method_types[0]": "card",
		"line_items[0][price]":    req.PriceID,
		"line_items[0][quantity]": "1",
		"success_url":             p.successURL,
		"cancel_url":              p.cancelURL,
	}
	if req.UserID != "" {
		form["client_reference_id"] = req.UserID
	}
	if req.UserEmail != "" {
		form["customer_email"] = req.UserEmail
	}

	var session stripeCheckoutSession
	resp, err := p.client.R().
		SetContext(ctx).
		SetFormData(form).
		SetResult(&session).
		Post("/v1/checkout/sessions")
	if err != nil {
		return models.CheckoutSession{}, requestError("checkout session request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CheckoutSession{}, err
	}
	if session.ID == "" {
		return models.CheckoutSession{}, fmt.Errorf("%w: checkout session without id", ErrInvalidResponse)
	}

	return models.CheckoutSession{SessionID: session.ID, URL: session.URL}, nil
}
