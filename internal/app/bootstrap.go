package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ferdiebergado/gastos/internal/config"
	"github.com/ferdiebergado/gastos/internal/middleware"
	"github.com/ferdiebergado/gastos/internal/pkg/message"
	"github.com/ferdiebergado/gastos/internal/platform/db"
	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/gopherkit/env"
)

// envKey names the session signing key. The service cannot start safely
// without it.
const envKey = "KEY"

func Run(baseCtx context.Context) error {
	signalCtx, stop := signal.NotifyContext(baseCtx, os.Interrupt, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if os.Getenv("ENV") != "production" {
		if err := env.Load(".env"); err != nil {
			return fmt.Errorf("load env: %w", err)
		}
	}

	cfg, err := config.Load("config.json")
	if err != nil {
		return err
	}

	signingKey, ok := os.LookupEnv(envKey)
	if !ok {
		return fmt.Errorf(message.EnvErrFmt, envKey)
	}

	dbConn, err := db.NewConnection(signalCtx, cfg.DB)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	provider, err := NewProvider(cfg, signingKey, dbConn)
	if err != nil {
		return err
	}

	middlewares := []func(http.Handler) http.Handler{
		goexpress.RecoverFromPanic,
		middleware.LogRequest,
		middleware.CheckContentType,
	}

	apiServer := New(provider, middlewares)
	if err := apiServer.Start(signalCtx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return apiServer.Shutdown()
}
