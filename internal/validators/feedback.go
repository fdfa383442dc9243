package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/veepo/models"
)

// validatePublicFeedback validates an anonymous submission. It runs before
// any storage call.
//
// Default validated fields: Rating, Email, Comment, Coordinates.
// The customer email is optional; when present it must be an address.
func (v *DomainValidator) validatePublicFeedback(ctx context.Context, fb models.PublicFeedback, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRating, FieldEmail, FieldComment, FieldCoordinates}
	}

	for _, f := range fields {
		switch f {
		case FieldRating:
			if fb.Rating < models.MinRating || fb.Rating > models.MaxRating {
				return ErrInvalidRating
			}
		case FieldEmail:
			if email := strings.TrimSpace(fb.CustomerEmail); email != "" && !isEmail(email) {
				return ErrInvalidEmail
			}
		case FieldComment:
			if utf8.RuneCountInString(fb.Comment) > MaxCommentLength {
				return ErrCommentTooLong
			}
		case FieldCoordinates:
			if (fb.Latitude == nil) != (fb.Longitude == nil) {
				return ErrInvalidCoordinates
			}
			if fb.Latitude != nil && (*fb.Latitude < -90 || *fb.Latitude > 90 || *fb.Longitude < -180 || *fb.Longitude > 180) {
				return ErrInvalidCoordinates
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DomainValidator) validateFeedbackStatusUpdate(ctx context.Context, u models.FeedbackStatusUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldStatus:
			if !u.Status.Valid() {
				return ErrInvalidStatus
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateFeedbackFilter validates the owner's list filter.
//
// Default validated fields: UserID, Status, DateRange.
func (v *DomainValidator) validateFeedbackFilter(ctx context.Context, filter models.FeedbackFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldStatus, FieldDateRange}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if filter.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldStatus:
			for _, s := range filter.Statuses {
				if !s.Valid() {
					return ErrInvalidStatus
				}
			}
		case FieldDateRange:
			if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
				return ErrInvalidDateRange
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
