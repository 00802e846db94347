package user

import (
	"context"
	"fmt"
)

var _ UserService = (*Service)(nil)

// UserRepository is the persistence contract for user records.
type UserRepository interface {
	CreateUser(ctx context.Context, params CreateUserParams) (User, error)
	FindUserByEmail(ctx context.Context, email string) (*User, error)
	FindUser(ctx context.Context, userID string) (*User, error)
	UpdatePreferences(ctx context.Context, userID string, params UpdatePreferencesParams) (*User, error)
}

type Service struct {
	repo UserRepository
}

func (s *Service) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	u, err := s.repo.CreateUser(ctx, params)
	if err != nil {
		return u, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (s *Service) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.FindUserByEmail(ctx, email)
}

func (s *Service) FindUser(ctx context.Context, userID string) (*User, error) {
	return s.repo.FindUser(ctx, userID)
}

// UpdatePreferences applies a partial update; fields with Valid unset are
// left untouched.
func (s *Service) UpdatePreferences(ctx context.Context, userID string, params UpdatePreferencesParams) (*User, error) {
	return s.repo.UpdatePreferences(ctx, userID, params)
}

func NewService(repo UserRepository) *Service {
	return &Service{repo: repo}
}
