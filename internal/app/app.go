package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/ferdiebergado/gastos/internal/auth"
	"github.com/ferdiebergado/gastos/internal/list"
	"github.com/ferdiebergado/gastos/internal/transaction"
	"github.com/ferdiebergado/gastos/internal/user"
)

type App struct {
	server          *http.Server
	provider        *Provider
	middlewares     []func(http.Handler) http.Handler
	stop            context.CancelFunc
	shutdownTimeout time.Duration
}

func (a *App) registerMiddlewares() {
	for _, mw := range a.middlewares {
		a.provider.Router.Use(mw)
	}
}

func (a *App) setupRoutes() {
	p := a.provider
	maxBodyBytes := p.Cfg.Server.MaxBodyBytes

	userModule := user.NewModule(p.DB)

	authProvider := &auth.Provider{
		Cfg:    p.Cfg,
		DB:     p.DB,
		Hasher: p.Hasher,
		Signer: p.Signer,
		Mailer: p.Mailer,
		Tokens: p.Tokens,
	}
	authModule := auth.NewModule(authProvider, userModule.Service())
	mountAuthRoutes(p.Router, authModule.Handler(), p.Validator, p.Signer, maxBodyBytes)

	listModule := list.NewModule(p.DB)
	mountListRoutes(p.Router, listModule.Handler(), p.Validator, p.Signer, maxBodyBytes)

	txnModule := transaction.NewModule(p.DB)
	mountTransactionRoutes(p.Router, txnModule.Handler(), p.Validator, p.Signer, maxBodyBytes)
}

func (a *App) Start(ctx context.Context) error {
	a.registerMiddlewares()
	a.setupRoutes()

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening...", "address", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("listen and serve: %w", err)
			return
		}
		slog.Info("Server has stopped.")
		serverErr <- nil
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received.")
		return nil
	case err := <-serverErr:
		return err
	}
}

func (a *App) Shutdown() error {
	slog.Info("Shutting down server...")
	a.stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}

func New(provider *Provider, middlewares []func(http.Handler) http.Handler) *App {
	serverCtx, stop := context.WithCancel(context.Background())
	serverCfg := provider.Cfg.Server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", serverCfg.Port),
		Handler: provider.Router,
		BaseContext: func(_ net.Listener) context.Context {
			return serverCtx
		},
		ReadTimeout:  serverCfg.ReadTimeout.Duration,
		WriteTimeout: serverCfg.WriteTimeout.Duration,
		IdleTimeout:  serverCfg.IdleTimeout.Duration,
	}

	return &App{
		server:          server,
		provider:        provider,
		middlewares:     middlewares,
		stop:            stop,
		shutdownTimeout: serverCfg.ShutdownTimeout.Duration,
	}
}
