package app

import (
	"database/sql"
	"fmt"

	"github.com/ferdiebergado/gastos/internal/config"
	"github.com/ferdiebergado/gastos/internal/pkg/validation"
	"github.com/ferdiebergado/gastos/internal/platform/email"
	"github.com/ferdiebergado/gastos/internal/platform/hash"
	"github.com/ferdiebergado/gastos/internal/platform/jwt"
	"github.com/ferdiebergado/gastos/internal/platform/router"
	"github.com/ferdiebergado/gastos/internal/platform/token"
)

type Provider struct {
	Cfg       *config.Config
	DB        *sql.DB
	Signer    jwt.Signer
	Mailer    email.Mailer
	Validator validation.Validator
	Hasher    hash.Hasher
	Tokens    token.Generator
	Router    router.Router
}

func NewProvider(cfg *config.Config, signingKey string, dbConn *sql.DB) (*Provider, error) {
	smtpCfg, err := email.NewSMTPConfig()
	if err != nil {
		return nil, fmt.Errorf("new smtp config: %w", err)
	}

	mailer, err := email.NewSMTPMailer(smtpCfg, cfg.Email)
	if err != nil {
		return nil, fmt.Errorf("new smtp mailer: %w", err)
	}

	provider := &Provider{
		Cfg:       cfg,
		DB:        dbConn,
		Signer:    jwt.NewGolangJWTSigner(cfg.JWT, signingKey),
		Mailer:    mailer,
		Validator: validation.NewGoPlaygroundValidator(),
		Hasher:    hash.NewArgon2Hasher(cfg.Argon2),
		Tokens:    token.NewRandGenerator(cfg.Token),
		Router:    router.NewGoexpressRouter(),
	}

	return provider, nil
}
