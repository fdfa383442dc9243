package validators

import (
	"context"

	"github.com/MKhiriev/veepo/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldID targets the row identifier of update requests.
	FieldID = "id"

	// FieldUserID targets the owner identifier.
	FieldUserID = "user_id"

	// FieldEmail targets an email address (account or customer).
	FieldEmail = "email"

	// FieldPassword targets a password that must satisfy the length policy.
	FieldPassword = "password"

	// FieldPasswordPresent only requires a non-empty password (sign-in).
	FieldPasswordPresent = "password_present"

	// FieldName targets a required display name of a QR code or campaign.
	FieldName = "name"

	// FieldDescription targets a required description.
	FieldDescription = "description"

	// FieldColorScheme targets the hex color of a QR code.
	FieldColorScheme = "color_scheme"

	// FieldNotEmpty requires a partial update to change at least one field.
	FieldNotEmpty = "not_empty"

	// FieldRating targets the 1..5 feedback rating.
	FieldRating = "rating"

	// FieldComment targets the free-text feedback comment.
	FieldComment = "comment"

	// FieldCoordinates targets feedback latitude and longitude.
	FieldCoordinates = "coordinates"

	// FieldStatus targets a feedback status or status set.
	FieldStatus = "status"

	// FieldDateRange targets start/end date ordering.
	FieldDateRange = "date_range"

	// FieldPriceID targets the checkout price identifier.
	FieldPriceID = "price_id"

	// FieldURLs targets the website and social links of a profile.
	FieldURLs = "urls"

	// FieldState targets the two-letter state code of a profile or filter.
	FieldState = "state"

	// FieldSort targets the provider directory ordering.
	FieldSort = "sort"
)

// MaxCommentLength bounds the comment of a public feedback.
const MaxCommentLength = 2000

// DomainValidator implements the Validator interface for every request model
// accepted by the Veepo API. It supports both value and pointer forms of each
// model and allows optional field-level scoping via variadic field names.
type DomainValidator struct {
}

// NewDomainValidator constructs a new DomainValidator
// and returns it as the Validator interface.
func NewDomainValidator() Validator {
	return &DomainValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj.
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// the default set of the model is validated.
func (v *DomainValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.PasswordChange:
		return v.validatePasswordChange(ctx, value, fields...)
	case *models.PasswordChange:
		return v.validatePasswordChange(ctx, *value, fields...)

	case models.QRCodeCreate:
		return v.validateQRCodeCreate(ctx, value, fields...)
	case *models.QRCodeCreate:
		return v.validateQRCodeCreate(ctx, *value, fields...)

	case models.QRCodeUpdate:
		return v.validateQRCodeUpdate(ctx, value, fields...)
	case *models.QRCodeUpdate:
		return v.validateQRCodeUpdate(ctx, *value, fields...)

	case models.PublicFeedback:
		return v.validatePublicFeedback(ctx, value, fields...)
	case *models.PublicFeedback:
		return v.validatePublicFeedback(ctx, *value, fields...)

	case models.FeedbackStatusUpdate:
		return v.validateFeedbackStatusUpdate(ctx, value, fields...)
	case *models.FeedbackStatusUpdate:
		return v.validateFeedbackStatusUpdate(ctx, *value, fields...)

	case models.FeedbackFilter:
		return v.validateFeedbackFilter(ctx, value, fields...)
	case *models.FeedbackFilter:
		return v.validateFeedbackFilter(ctx, *value, fields...)

	case models.CampaignInput:
		return v.validateCampaignInput(ctx, value, fields...)
	case *models.CampaignInput:
		return v.validateCampaignInput(ctx, *value, fields...)

	case models.ProviderUpdate:
		return v.validateProviderUpdate(ctx, value, fields...)
	case *models.ProviderUpdate:
		return v.validateProviderUpdate(ctx, *value, fields...)

	case models.ProviderFilter:
		return v.validateProviderFilter(ctx, value, fields...)
	case *models.ProviderFilter:
		return v.validateProviderFilter(ctx, *value, fields...)

	case models.DateRange:
		return v.validateDateRange(ctx, value, fields...)
	case *models.DateRange:
		return v.validateDateRange(ctx, *value, fields...)

	case models.CheckoutRequest:
		return v.validateCheckoutRequest(ctx, value, fields...)
	case *models.CheckoutRequest:
		return v.validateCheckoutRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}
