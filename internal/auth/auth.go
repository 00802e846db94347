package auth

import (
	"database/sql"

	"github.com/ferdiebergado/gastos/internal/config"
	"github.com/ferdiebergado/gastos/internal/platform/email"
	"github.com/ferdiebergado/gastos/internal/platform/hash"
	"github.com/ferdiebergado/gastos/internal/platform/jwt"
	"github.com/ferdiebergado/gastos/internal/platform/token"
	"github.com/ferdiebergado/gastos/internal/user"
)

type Provider struct {
	Cfg    *config.Config
	DB     *sql.DB
	Hasher hash.Hasher
	Signer jwt.Signer
	Mailer email.Mailer
	Tokens token.Generator
}

type Module struct {
	svc     *Service
	handler *Handler
}

func (m *Module) Handler() *Handler {
	return m.handler
}

func (m *Module) Service() *Service {
	return m.svc
}

func NewModule(provider *Provider, userSvc user.UserService) *Module {
	repo := NewRepository(provider.DB)
	svc := NewService(repo, userSvc, provider)
	handler := NewHandler(svc)
	return &Module{
		svc:     svc,
		handler: handler,
	}
}
