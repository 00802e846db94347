package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ferdiebergado/gastos/internal/user"
)

var _ AuthRepository = (*Repository)(nil)

type Repository struct {
	db *sql.DB
}

const queryFindByVerificationToken = `
SELECT id, first_name, last_name, email, password_hash, verified,
verification_token, reset_password_token, reset_password_expires,
preferred_currency, preferred_currency_symbol, preferred_language,
created_at, updated_at
FROM users
WHERE verification_token = $1
LIMIT 1
`

func (r *Repository) FindUserByVerificationToken(ctx context.Context, token string) (*user.User, error) {
	return r.findByToken(ctx, queryFindByVerificationToken, token)
}

const queryFindByResetToken = `
SELECT id, first_name, last_name, email, password_hash, verified,
verification_token, reset_password_token, reset_password_expires,
preferred_currency, preferred_currency_symbol, preferred_language,
created_at, updated_at
FROM users
WHERE reset_password_token = $1
LIMIT 1
`

func (r *Repository) FindUserByResetToken(ctx context.Context, token string) (*user.User, error) {
	return r.findByToken(ctx, queryFindByResetToken, token)
}

func (r *Repository) findByToken(ctx context.Context, query, token string) (*user.User, error) {
	row := r.db.QueryRowContext(ctx, query, token)
	var u user.User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.Verified,
		&u.VerificationToken, &u.ResetPasswordToken, &u.ResetPasswordExpires,
		&u.PreferredCurrency, &u.PreferredCurrencySymbol, &u.PreferredLanguage,
		&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, user.ErrNotFound
		}
		return nil, fmt.Errorf("%w: find user by token: %v", user.ErrQueryFailed, err)
	}
	return &u, nil
}

const queryMarkUserVerified = `
UPDATE users
SET verified = TRUE, verification_token = NULL, updated_at = NOW()
WHERE id = $1
`

// MarkUserVerified flips the user to verified and consumes the verification
// token in one statement, making the transition exactly-once.
func (r *Repository) MarkUserVerified(ctx context.Context, userID string) error {
	if err := r.exec(ctx, queryMarkUserVerified, userID); err != nil {
		return fmt.Errorf("mark user %s verified: %w", userID, err)
	}
	return nil
}

const querySetResetToken = `
UPDATE users
SET reset_password_token = $2, reset_password_expires = $3, updated_at = NOW()
WHERE id = $1
`

func (r *Repository) SetResetToken(ctx context.Context, userID, token string, expires time.Time) error {
	if err := r.exec(ctx, querySetResetToken, userID, token, expires); err != nil {
		return fmt.Errorf("set reset token for user %s: %w", userID, err)
	}
	return nil
}

const queryClearResetToken = `
UPDATE users
SET reset_password_token = NULL, reset_password_expires = NULL, updated_at = NOW()
WHERE id = $1
`

func (r *Repository) ClearResetToken(ctx context.Context, userID string) error {
	if err := r.exec(ctx, queryClearResetToken, userID); err != nil {
		return fmt.Errorf("clear reset token for user %s: %w", userID, err)
	}
	return nil
}

const queryChangeUserPassword = `
UPDATE users
SET password_hash = $2, reset_password_token = NULL, reset_password_expires = NULL, updated_at = NOW()
WHERE id = $1
`

// ChangeUserPassword stores the new secret and consumes the reset token in
// the same statement.
func (r *Repository) ChangeUserPassword(ctx context.Context, userID, newHash string) error {
	if err := r.exec(ctx, queryChangeUserPassword, userID, newHash); err != nil {
		return fmt.Errorf("change password for user %s: %w", userID, err)
	}
	return nil
}

func (r *Repository) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %v", user.ErrQueryFailed, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected: %v", user.ErrQueryFailed, err)
	}

	if affected == 0 {
		return user.ErrNotFound
	}
	return nil
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db}
}
