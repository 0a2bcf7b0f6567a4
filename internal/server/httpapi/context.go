package httpapi

import "context"

// Caller identifies the authenticated user behind a request. It is resolved
// by the auth middleware and is the only identity source handlers may use.
type Caller struct {
	ID    int64
	Email string
}

type ctxKey int

const callerKey ctxKey = iota

func withCaller(ctx context.Context, c *Caller) context.Context {
	return context.WithValue(ctx, callerKey, c)
}

// CallerFrom extracts the authenticated caller from ctx.
func CallerFrom(ctx context.Context) (*Caller, bool) {
	c, ok := ctx.Value(callerKey).(*Caller)
	return c, ok
}
