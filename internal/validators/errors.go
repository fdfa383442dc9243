package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID      = errors.New("invalid user ID")
	ErrInvalidID          = errors.New("invalid ID")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrEmptyPassword      = errors.New("password is required")
	ErrEmptyName          = errors.New("name is required")
	ErrEmptyDescription   = errors.New("description is required")
	ErrInvalidColorScheme = errors.New("color scheme must be a hex color")
	ErrNoFieldsToUpdate   = errors.New("at least one field must be provided for update")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrCommentTooLong     = errors.New("comment is too long")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrInvalidStatus      = errors.New("invalid feedback status")
	ErrInvalidDateRange   = errors.New("end date must not precede start date")
	ErrInvalidPriceID     = errors.New("invalid price id")
	ErrInvalidURL         = errors.New("invalid url")
	ErrInvalidState       = errors.New("state must be a two-letter code")
	ErrInvalidSort        = errors.New("invalid sort")
)
