package app

import (
	"github.com/ferdiebergado/gastos/internal/auth"
	"github.com/ferdiebergado/gastos/internal/list"
	"github.com/ferdiebergado/gastos/internal/middleware"
	"github.com/ferdiebergado/gastos/internal/pkg/validation"
	"github.com/ferdiebergado/gastos/internal/platform/jwt"
	"github.com/ferdiebergado/gastos/internal/platform/router"
	"github.com/ferdiebergado/gastos/internal/transaction"
)

func mountAuthRoutes(r router.Router, handler *auth.Handler, validator validation.Validator, signer jwt.Signer, maxBodyBytes int64) {
	r.Group("/api/auth", func(gr router.Router) {
		gr.Post("/register", handler.RegisterUser,
			middleware.DecodePayload[auth.RegisterUserRequest](maxBodyBytes),
			middleware.ValidateInput[auth.RegisterUserRequest](validator))
		gr.Get("/verify-email/{token}", handler.VerifyEmail)
		gr.Post("/login", handler.LoginUser,
			middleware.DecodePayload[auth.LoginUserRequest](maxBodyBytes),
			middleware.ValidateInput[auth.LoginUserRequest](validator))
		gr.Put("/preferences", handler.UpdatePreferences,
			auth.RequireToken(signer),
			middleware.DecodePayload[auth.UpdatePreferencesRequest](maxBodyBytes),
			middleware.ValidateInput[auth.UpdatePreferencesRequest](validator))
		gr.Post("/forgot-password", handler.ForgotPassword,
			middleware.DecodePayload[auth.ForgotPasswordRequest](maxBodyBytes),
			middleware.ValidateInput[auth.ForgotPasswordRequest](validator))
		gr.Post("/reset-password/{token}", handler.ResetPassword,
			middleware.DecodePayload[auth.ResetPasswordRequest](maxBodyBytes),
			middleware.ValidateInput[auth.ResetPasswordRequest](validator))
	})
}

func mountListRoutes(r router.Router, handler *list.Handler, validator validation.Validator, signer jwt.Signer, maxBodyBytes int64) {
	r.Group("/api/lists", func(gr router.Router) {
		gr.Get("/", handler.ListLists)
		gr.Post("/", handler.CreateList,
			middleware.DecodePayload[list.CreateListRequest](maxBodyBytes),
			middleware.ValidateInput[list.CreateListRequest](validator))
		gr.Delete("/{id}", handler.DeleteList)
	}, auth.RequireToken(signer))
}

func mountTransactionRoutes(r router.Router, handler *transaction.Handler, validator validation.Validator, signer jwt.Signer, maxBodyBytes int64) {
	r.Group("/api/transactions", func(gr router.Router) {
		gr.Get("/{listID}", handler.ListTransactions)
		gr.Post("/", handler.CreateTransaction,
			middleware.DecodePayload[transaction.CreateTransactionRequest](maxBodyBytes),
			middleware.ValidateInput[transaction.CreateTransactionRequest](validator))
		gr.Delete("/{id}", handler.DeleteTransaction)
	}, auth.RequireToken(signer))
}
