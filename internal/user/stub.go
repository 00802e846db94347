package user

import (
	"context"
	"errors"
)

type StubService struct {
	CreateUserFunc        func(ctx context.Context, params CreateUserParams) (User, error)
	FindUserByEmailFunc   func(ctx context.Context, email string) (*User, error)
	FindUserFunc          func(ctx context.Context, userID string) (*User, error)
	UpdatePreferencesFunc func(ctx context.Context, userID string, params UpdatePreferencesParams) (*User, error)
}

var _ UserService = (*StubService)(nil)

func (s *StubService) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	if s.CreateUserFunc == nil {
		return User{}, errors.New("CreateUser is not implemented by stub")
	}
	return s.CreateUserFunc(ctx, params)
}

func (s *StubService) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	if s.FindUserByEmailFunc == nil {
		return nil, errors.New("FindUserByEmail is not implemented by stub")
	}
	return s.FindUserByEmailFunc(ctx, email)
}

func (s *StubService) FindUser(ctx context.Context, userID string) (*User, error) {
	if s.FindUserFunc == nil {
		return nil, errors.New("FindUser is not implemented by stub")
	}
	return s.FindUserFunc(ctx, userID)
}

func (s *StubService) UpdatePreferences(ctx context.Context, userID string, params UpdatePreferencesParams) (*User, error) {
	if s.UpdatePreferencesFunc == nil {
		return nil, errors.New("UpdatePreferences is not implemented by stub")
	}
	return s.UpdatePreferencesFunc(ctx, userID, params)
}
