package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

var _ UserRepository = (*Repository)(nil)

var (
	ErrNotFound       = errors.New("user repository: user not found")
	ErrDuplicateEmail = errors.New("user repository: email already exists")
	ErrQueryFailed    = errors.New("user repository: query failed")
)

// pgUniqueViolation is the Postgres error code returned when the unique
// index on users.email rejects an insert; it is the final arbiter when two
// registrations race past the existence pre-check.
const pgUniqueViolation = "23505"

type Repository struct {
	db *sql.DB
}

type CreateUserParams struct {
	FirstName         string
	LastName          string
	Email             string
	PasswordHash      string
	VerificationToken string
}

const userColumns = `id, first_name, last_name, email, password_hash, verified,
verification_token, reset_password_token, reset_password_expires,
preferred_currency, preferred_currency_symbol, preferred_language,
created_at, updated_at`

func scanUser(row *sql.Row) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.Verified,
		&u.VerificationToken, &u.ResetPasswordToken, &u.ResetPasswordExpires,
		&u.PreferredCurrency, &u.PreferredCurrencySymbol, &u.PreferredLanguage,
		&u.CreatedAt, &u.UpdatedAt)
	return u, err
}

const QueryUserCreate = `
INSERT INTO users (id, first_name, last_name, email, password_hash, verification_token)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + userColumns

func (r *Repository) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	row := r.db.QueryRowContext(ctx, QueryUserCreate, uuid.NewString(),
		params.FirstName, params.LastName, params.Email, params.PasswordHash, params.VerificationToken)
	u, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return u, ErrDuplicateEmail
		}
		return u, fmt.Errorf("%w: create user with email %s: %v", ErrQueryFailed, params.Email, err)
	}
	return u, nil
}

const QueryUserFindByEmail = `
SELECT ` + userColumns + ` FROM users
WHERE email = $1
LIMIT 1
`

func (r *Repository) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	row := r.db.QueryRowContext(ctx, QueryUserFindByEmail, email)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: find user with email %s: %v", ErrQueryFailed, email, err)
	}
	return &u, nil
}

const QueryUserFind = `
SELECT ` + userColumns + ` FROM users
WHERE id = $1
LIMIT 1
`

func (r *Repository) FindUser(ctx context.Context, userID string) (*User, error) {
	row := r.db.QueryRowContext(ctx, QueryUserFind, userID)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: find user with id %s: %v", ErrQueryFailed, userID, err)
	}
	return &u, nil
}

type UpdatePreferencesParams struct {
	Currency Optional[string]
	Symbol   Optional[string]
	Language Optional[string]
}

const QueryUserUpdatePreferences = `
UPDATE users
SET preferred_currency = COALESCE($2, preferred_currency),
    preferred_currency_symbol = COALESCE($3, preferred_currency_symbol),
    preferred_language = COALESCE($4, preferred_language),
    updated_at = NOW()
WHERE id = $1
RETURNING ` + userColumns

func (r *Repository) UpdatePreferences(ctx context.Context, userID string, params UpdatePreferencesParams) (*User, error) {
	row := r.db.QueryRowContext(ctx, QueryUserUpdatePreferences, userID,
		optionalArg(params.Currency), optionalArg(params.Symbol), optionalArg(params.Language))
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: update preferences for user %s: %v", ErrQueryFailed, userID, err)
	}
	return &u, nil
}

func optionalArg(o Optional[string]) any {
	if !o.Valid {
		return nil
	}
	return o.Value
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db}
}
