package hash

import "errors"

// ErrMalformedHash reports a stored secret that cannot be decoded. A plain
// mismatch is never an error, only (false, nil).
var ErrMalformedHash = errors.New("malformed password hash")

// Hasher is the one-way password transform used by registration and
// password reset.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hashed string) (bool, error)
}
