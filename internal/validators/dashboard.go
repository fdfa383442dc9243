package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/veepo/models"
)

func (v *DomainValidator) validateDateRange(ctx context.Context, r models.DateRange, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDateRange}
	}

	for _, f := range fields {
		switch f {
		case FieldDateRange:
			if r.End.Before(r.Start) {
				return ErrInvalidDateRange
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCheckoutRequest rejects empty and sales-contact price ids.
//
// Default validated fields: PriceID, UserID, Email.
func (v *DomainValidator) validateCheckoutRequest(ctx context.Context, r models.CheckoutRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPriceID, FieldUserID, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldPriceID:
			priceID := strings.TrimSpace(r.PriceID)
			if priceID == "" || priceID == models.ContactPriceID {
				return ErrInvalidPriceID
			}
		case FieldUserID:
			if r.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldEmail:
			if !isEmail(r.UserEmail) {
				return ErrInvalidEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
