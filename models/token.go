package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
// UserID is a cached copy of the "sub" claim.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	SignedString string `json:"-"`

	UserID string `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" claim.
func (t *Token) GetUserID() (string, error) {
	userID, err := t.GetSubject()
	if err != nil {
		return "", err
	}
	if userID == "" {
		return "", errors.New("empty subject")
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// Session is what sign-up and sign-in return to the client: the
// authenticated user and the bearer token for subsequent calls.
type Session struct {
	User        User   `json:"user"`
	AccessToken string `json:"access_token"`
}
