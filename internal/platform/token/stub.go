package token

import "errors"

type StubGenerator struct {
	GenerateFunc func() (string, error)
}

var _ Generator = (*StubGenerator)(nil)

func (g *StubGenerator) Generate() (string, error) {
	if g.GenerateFunc == nil {
		return "", errors.New("Generate is not implemented by stub")
	}
	return g.GenerateFunc()
}
