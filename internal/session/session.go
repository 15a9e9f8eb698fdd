// Package session carries the caller's credentials through the request
// context. The gateway never verifies tokens itself; verification is
// the backend's job, so claims are read unverified only to fill the
// X-User-Id header the backend expects.
package session

import (
	"context"

	"github.com/golang-jwt/jwt/v4"
)

type contextKey string

const (
	tokenKey  contextKey = "sessionToken"
	userIDKey contextKey = "sessionUserID"
)

func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)

	return token, ok
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)

	return userID, ok
}

// UserIDFromToken extracts the subject claim of a bearer token without
// verifying the signature. Returns an empty string for anything that
// does not parse as a JWT.
func UserIDFromToken(token string) string {
	claims := jwt.MapClaims{}

	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return ""
	}

	sub, _ := claims["sub"].(string)

	return sub
}
