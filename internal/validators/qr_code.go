package validators

import (
	"context"
	"regexp"
	"strings"

	"github.com/MKhiriev/veepo/models"
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// validateQRCodeCreate validates the create-QR-code arguments.
//
// Default validated fields: UserID, Name, Description, ColorScheme.
// An empty color scheme is allowed and replaced by the default downstream.
func (v *DomainValidator) validateQRCodeCreate(ctx context.Context, qr models.QRCodeCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldName, FieldDescription, FieldColorScheme}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if qr.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldName:
			if strings.TrimSpace(qr.Name) == "" {
				return ErrEmptyName
			}
		case FieldDescription:
			if strings.TrimSpace(qr.Description) == "" {
				return ErrEmptyDescription
			}
		case FieldColorScheme:
			if qr.ColorScheme != "" && !hexColor.MatchString(qr.ColorScheme) {
				return ErrInvalidColorScheme
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateQRCodeUpdate validates a partial QR code update.
//
// Default validated fields: ID, UserID, NotEmpty, Name, Description, ColorScheme.
// Name and Description are only checked when present in the update.
func (v *DomainValidator) validateQRCodeUpdate(ctx context.Context, qr models.QRCodeUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUserID, FieldNotEmpty, FieldName, FieldDescription, FieldColorScheme}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if qr.ID == "" {
				return ErrInvalidID
			}
		case FieldUserID:
			if qr.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldNotEmpty:
			if qr.Empty() {
				return ErrNoFieldsToUpdate
			}
		case FieldName:
			if qr.Name != nil && strings.TrimSpace(*qr.Name) == "" {
				return ErrEmptyName
			}
		case FieldDescription:
			if qr.Description != nil && strings.TrimSpace(*qr.Description) == "" {
				return ErrEmptyDescription
			}
		case FieldColorScheme:
			if qr.ColorScheme != nil && !hexColor.MatchString(*qr.ColorScheme) {
				return ErrInvalidColorScheme
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
