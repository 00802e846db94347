package jwt

import (
	"errors"
	"time"
)

// ErrInvalidToken covers expired, malformed and badly-signed tokens alike.
var ErrInvalidToken = errors.New("invalid token")

// Claims represents the token claims that are processed for authentication.
type Claims struct {
	UserID string
}

// Signer mints and validates session credentials. The signing key is fixed
// at construction; a token whose signature does not verify is never
// partially trusted.
type Signer interface {
	Sign(subject string, duration time.Duration) (token string, err error)
	Verify(tokenString string) (*Claims, error)
}
