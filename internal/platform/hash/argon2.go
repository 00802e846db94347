package hash

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/ferdiebergado/gastos/internal/config"
	"github.com/ferdiebergado/gastos/internal/pkg/security"
	"golang.org/x/crypto/argon2"
)

type Argon2Hasher struct {
	memory     uint32
	iterations uint32
	threads    uint8
	saltLen    uint32
	keyLen     uint32
}

var _ Hasher = (*Argon2Hasher)(nil)

func NewArgon2Hasher(cfg *config.Argon2Options) *Argon2Hasher {
	return &Argon2Hasher{
		memory:     cfg.Memory,
		iterations: cfg.Iterations,
		threads:    cfg.Threads,
		saltLen:    cfg.SaltLength,
		keyLen:     cfg.KeyLength,
	}
}

// Hash derives an argon2id key from plain with a fresh random salt and
// returns it in the standard encoded form. Two calls with the same input
// never produce the same output.
func (h *Argon2Hasher) Hash(plain string) (string, error) {
	salt, err := security.GenerateRandomBytes(h.saltLen)
	if err != nil {
		return "", fmt.Errorf("generate salt with length %d: %w", h.saltLen, err)
	}

	key := argon2.IDKey([]byte(plain), salt, h.iterations, h.memory, h.threads, h.keyLen)

	saltBase64 := base64.RawStdEncoding.EncodeToString(salt)
	keyBase64 := base64.RawStdEncoding.EncodeToString(key)

	encoded := fmt.Sprintf("$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		h.memory, h.iterations, h.threads, saltBase64, keyBase64)

	return encoded, nil
}

// Verify recomputes the key with the parameters embedded in hashed and
// compares in constant time.
func (h *Argon2Hasher) Verify(plain, hashed string) (bool, error) {
	parts := strings.Split(hashed, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, fmt.Errorf("%w: unexpected format", ErrMalformedHash)
	}

	var memory, iterations uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &threads); err != nil {
		return false, fmt.Errorf("%w: scan parameters: %v", ErrMalformedHash, err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("%w: decode salt: %v", ErrMalformedHash, err)
	}

	wantKey, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("%w: decode key: %v", ErrMalformedHash, err)
	}

	keyLen := len(wantKey)
	if keyLen > int(^uint32(0)) {
		return false, fmt.Errorf("%w: key length %d exceeds uint32", ErrMalformedHash, keyLen)
	}

	gotKey := argon2.IDKey([]byte(plain), salt, iterations, memory, threads, uint32(keyLen))
	return subtle.ConstantTimeCompare(gotKey, wantKey) == 1, nil
}
