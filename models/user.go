package models

import "time"

// User represents an account entity used for authentication and authorization.
// PasswordHash must never leave the server.
type User struct {
	// ID is the server-assigned UUID of the user.
	ID string `json:"id"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// Password carries the plain-text password on sign-up/sign-in requests only.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in the users table.
	PasswordHash string `json:"-"`

	// Metadata is the user-editable profile metadata mirrored by the client session.
	Metadata UserMetadata `json:"user_metadata"`

	CreatedAt time.Time `json:"created_at"`
}

// UserMetadata holds display attributes of the account.
type UserMetadata struct {
	DisplayName string `json:"display_name,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

// UserMetadataUpdate is a partial update of [UserMetadata]. Nil fields are left untouched.
type UserMetadataUpdate struct {
	DisplayName *string `json:"display_name,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
}

// PasswordChange is the body of the change-password request.
type PasswordChange struct {
	Password string `json:"password"`
}

// DisplayNameOrEmail returns the display name, falling back to the email.
func (u User) DisplayNameOrEmail() string {
	if u.Metadata.DisplayName != "" {
		return u.Metadata.DisplayName
	}
	return u.Email
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the body of sign-up and sign-in requests. DisplayName is
// only used on sign-up.
type Credentials struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name,omitempty"`
}

// MinPasswordLength is the shortest password accepted on sign-up and
// password change.
const MinPasswordLength = 6
