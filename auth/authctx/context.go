// Package authctx propagates the verified identity of a request through its
// context.
//
// The authentication middleware stores the decoded token claims with Set;
// downstream handlers read them back with Get or MustGet:
//
//	claims, ok := authctx.Get[*jwt.Claims](r.Context())
package authctx

import (
	"context"
)

// contextKey is an unexported type to prevent collisions with other packages.
type contextKey struct{}

// claimsKey is the single key used to store claims in context.
var claimsKey = contextKey{}

// Set stores the verified identity claims in the context.
func Set(ctx context.Context, claims any) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// Get retrieves typed identity claims from the context. Returns the claims
// and true if present and of the requested type.
func Get[T any](ctx context.Context) (T, bool) {
	val := ctx.Value(claimsKey)
	if val == nil {
		var zero T
		return zero, false
	}
	claims, ok := val.(T)
	return claims, ok
}

// MustGet retrieves typed identity claims from the context. Panics if claims
// are missing or of the wrong type; use only behind the authentication
// middleware, which guarantees they exist.
func MustGet[T any](ctx context.Context) T {
	claims, ok := Get[T](ctx)
	if !ok {
		panic("authctx: claims not found in context or wrong type")
	}
	return claims
}
