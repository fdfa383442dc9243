// Package utils holds small helpers shared by the server and the client:
// request context keys, password and token hashing, JSON responses, the
// resty client, JWT handling and UUID generation.
package utils

import (
	"context"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey carries the authenticated user id set by the auth middleware.
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext returns the user id stored by WithUserID. An empty or
// missing value reports false.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}
