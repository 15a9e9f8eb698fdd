package booking

import "context"

type contextKey string

const idempotencyKey contextKey = "bookingIdempotencyKey"

// NewContextWithIdempotencyKey attaches the key that deduplicates one
// booking attempt on the backend side. The gateway sets it before
// calling Book; the backend client forwards it as the Idempotency-Key
// header on the reservation submit.
func NewContextWithIdempotencyKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, idempotencyKey, key)
}

// IdempotencyKeyFromContext reads the attempt's key back out; the
// second return is false when no key was attached.
func IdempotencyKeyFromContext(ctx context.Context) (string, bool) {
	key, ok := ctx.Value(idempotencyKey).(string)

	return key, ok
}
