package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/veepo/models"
)

// validateCampaignInput validates campaign create and update bodies.
//
// Default validated fields (create): UserID, Name, DateRange.
// Updates pass FieldID, FieldUserID, FieldNotEmpty and FieldDateRange.
func (v *DomainValidator) validateCampaignInput(ctx context.Context, c models.CampaignInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldName, FieldDateRange}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if c.ID == "" {
				return ErrInvalidID
			}
		case FieldUserID:
			if c.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldName:
			if c.Name == nil || strings.TrimSpace(*c.Name) == "" {
				return ErrEmptyName
			}
		case FieldNotEmpty:
			if c.QRCodeID == nil && c.Name == nil && c.Description == nil && c.StartDate == nil && c.EndDate == nil && c.IsActive == nil {
				return ErrNoFieldsToUpdate
			}
		case FieldDateRange:
			if c.StartDate != nil && c.EndDate != nil && c.EndDate.Before(*c.StartDate) {
				return ErrInvalidDateRange
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
