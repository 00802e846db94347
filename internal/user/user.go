package user

import (
	"context"
	"database/sql"
)

// UserService is the user management contract consumed by the auth module.
type UserService interface {
	CreateUser(ctx context.Context, params CreateUserParams) (User, error)
	FindUserByEmail(ctx context.Context, email string) (*User, error)
	FindUser(ctx context.Context, userID string) (*User, error)
	UpdatePreferences(ctx context.Context, userID string, params UpdatePreferencesParams) (*User, error)
}

type Module struct {
	repo *Repository
	svc  *Service
}

func (m *Module) Service() *Service {
	return m.svc
}

func NewModule(db *sql.DB) *Module {
	repo := NewRepository(db)
	svc := NewService(repo)
	return &Module{
		repo: repo,
		svc:  svc,
	}
}
