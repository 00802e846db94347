package transaction

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ferdiebergado/gastos/internal/model"
	"github.com/google/uuid"
)

var _ TransactionRepository = (*Repository)(nil)

var (
	ErrNotFound    = errors.New("transaction repository: transaction not found")
	ErrQueryFailed = errors.New("transaction repository: query failed")
)

type Transaction struct {
	model.Model

	UserID      string
	ListID      string
	Description string
	Amount      float64
	Type        string
}

type Repository struct {
	db *sql.DB
}

const QueryTransactionsByList = `
SELECT id, user_id, list_id, description, amount, type, created_at, updated_at
FROM transactions
WHERE list_id = $1 AND user_id = $2
ORDER BY created_at DESC
`

func (r *Repository) ListTransactions(ctx context.Context, listID, userID string) ([]Transaction, error) {
	rows, err := r.db.QueryContext(ctx, QueryTransactionsByList, listID, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: list transactions for list %s: %v", ErrQueryFailed, listID, err)
	}
	defer rows.Close()

	var txns []Transaction
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.ListID, &t.Description, &t.Amount, &t.Type,
			&t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("transaction repository: scan row: %w", err)
		}
		txns = append(txns, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("transaction repository: iterate over rows: %w", err)
	}

	return txns, nil
}

type CreateTransactionParams struct {
	UserID      string
	ListID      string
	Description string
	Amount      float64
	Type        string
}

const QueryTransactionCreate = `
INSERT INTO transactions (id, user_id, list_id, description, amount, type)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, user_id, list_id, description, amount, type, created_at, updated_at
`

func (r *Repository) CreateTransaction(ctx context.Context, params CreateTransactionParams) (Transaction, error) {
	row := r.db.QueryRowContext(ctx, QueryTransactionCreate, uuid.NewString(),
		params.UserID, params.ListID, params.Description, params.Amount, params.Type)
	var t Transaction
	if err := row.Scan(&t.ID, &t.UserID, &t.ListID, &t.Description, &t.Amount, &t.Type,
		&t.CreatedAt, &t.UpdatedAt); err != nil {
		return t, fmt.Errorf("%w: create transaction for user %s: %v", ErrQueryFailed, params.UserID, err)
	}
	return t, nil
}

const QueryTransactionDelete = `
DELETE FROM transactions
WHERE id = $1 AND user_id = $2
`

func (r *Repository) DeleteTransaction(ctx context.Context, txnID, userID string) error {
	res, err := r.db.ExecContext(ctx, QueryTransactionDelete, txnID, userID)
	if err != nil {
		return fmt.Errorf("%w: delete transaction %s: %v", ErrQueryFailed, txnID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected: %v", ErrQueryFailed, err)
	}

	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db}
}
