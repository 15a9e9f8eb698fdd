package session

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v4"
)

func TestTokenRoundTrip(t *testing.T) {
	ctx := WithToken(context.Background(), "abc")

	token, ok := TokenFromContext(ctx)
	if !ok || token != "abc" {
		t.Fatalf("TokenFromContext() = (%q, %v), want (abc, true)", token, ok)
	}

	if _, ok := TokenFromContext(context.Background()); ok {
		t.Fatal("TokenFromContext() found a token in an empty context")
	}
}

func TestUserIDFromToken(t *testing.T) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "client-42"}).
		SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if got := UserIDFromToken(signed); got != "client-42" {
		t.Fatalf("UserIDFromToken() = %q, want client-42", got)
	}

	if got := UserIDFromToken("not-a-jwt"); got != "" {
		t.Fatalf("UserIDFromToken() = %q for garbage input, want empty", got)
	}
}
