package domain

import "context"

// Identity is the resolved caller identity, bound to the request context by
// the auth middleware after a successful token verification.
type Identity struct {
	Email string
}

// TokenVerifier validates a bearer token against the external identity
// provider and resolves the caller's identity.
type TokenVerifier interface {
	// Verify returns ErrUnauthorized when the token cannot be verified,
	// for whatever reason. The cause is logged, never surfaced.
	Verify(ctx context.Context, token string) (Identity, error)
}
