package auth

import (
	"context"
	"errors"

	"github.com/ferdiebergado/gastos/internal/user"
)

type StubService struct {
	RegisterUserFunc      func(ctx context.Context, params RegisterUserParams) (RegisterResult, error)
	VerifyEmailFunc       func(ctx context.Context, verifyToken string) (user.User, string, error)
	LoginUserFunc         func(ctx context.Context, params LoginUserParams) (user.User, string, error)
	UpdatePreferencesFunc func(ctx context.Context, userID string, params user.UpdatePreferencesParams) (*user.User, error)
	ForgotPasswordFunc    func(ctx context.Context, email string) error
	ResetPasswordFunc     func(ctx context.Context, resetToken, newPassword string) error
}

var _ AuthService = (*StubService)(nil)

func (s *StubService) RegisterUser(ctx context.Context, params RegisterUserParams) (RegisterResult, error) {
	if s.RegisterUserFunc == nil {
		return RegisterResult{}, errors.New("RegisterUser is not implemented by stub")
	}
	return s.RegisterUserFunc(ctx, params)
}

func (s *StubService) VerifyEmail(ctx context.Context, verifyToken string) (user.User, string, error) {
	if s.VerifyEmailFunc == nil {
		return user.User{}, "", errors.New("VerifyEmail is not implemented by stub")
	}
	return s.VerifyEmailFunc(ctx, verifyToken)
}

func (s *StubService) LoginUser(ctx context.Context, params LoginUserParams) (user.User, string, error) {
	if s.LoginUserFunc == nil {
		return user.User{}, "", errors.New("LoginUser is not implemented by stub")
	}
	return s.LoginUserFunc(ctx, params)
}

func (s *StubService) UpdatePreferences(ctx context.Context, userID string, params user.UpdatePreferencesParams) (*user.User, error) {
	if s.UpdatePreferencesFunc == nil {
		return nil, errors.New("UpdatePreferences is not implemented by stub")
	}
	return s.UpdatePreferencesFunc(ctx, userID, params)
}

func (s *StubService) ForgotPassword(ctx context.Context, email string) error {
	if s.ForgotPasswordFunc == nil {
		return errors.New("ForgotPassword is not implemented by stub")
	}
	return s.ForgotPasswordFunc(ctx, email)
}

func (s *StubService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	if s.ResetPasswordFunc == nil {
		return errors.New("ResetPassword is not implemented by stub")
	}
	return s.ResetPasswordFunc(ctx, resetToken, newPassword)
}
