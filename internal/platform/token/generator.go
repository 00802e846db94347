package token

import (
	"encoding/base64"
	"fmt"

	"github.com/ferdiebergado/gastos/internal/config"
	"github.com/ferdiebergado/gastos/internal/pkg/security"
)

// Generator produces the opaque one-time values mailed to users for email
// verification and password reset.
type Generator interface {
	Generate() (string, error)
}

type randGenerator struct {
	length uint32
}

var _ Generator = (*randGenerator)(nil)

func NewRandGenerator(cfg *config.TokenOptions) Generator {
	return &randGenerator{length: cfg.Length}
}

// Generate returns a URL-safe random string built from length bytes of
// entropy.
func (g *randGenerator) Generate() (string, error) {
	b, err := security.GenerateRandomBytes(g.length)
	if err != nil {
		return "", fmt.Errorf("generate token with length %d: %w", g.length, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
