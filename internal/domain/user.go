package domain

import "time"

// Identity is supplied by an external authentication provider; the server only sees the
// subject of a verified bearer token and uses it as the user ID.

// TokenIssuer issues tokens (e.g. JWT) for a user. Used by the development token command.
type TokenIssuer interface {
	Issue(userID, email string, roles []string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated user ID.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}
