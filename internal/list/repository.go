package list

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ferdiebergado/gastos/internal/model"
	"github.com/google/uuid"
)

var _ ListRepository = (*Repository)(nil)

var (
	ErrNotFound    = errors.New("list repository: list not found")
	ErrQueryFailed = errors.New("list repository: query failed")
)

type List struct {
	model.Model

	UserID string
	Name   string
}

type Repository struct {
	db *sql.DB
}

const QueryListAll = `
SELECT id, user_id, name, created_at, updated_at FROM lists
WHERE user_id = $1
ORDER BY created_at DESC
`

func (r *Repository) ListLists(ctx context.Context, userID string) ([]List, error) {
	rows, err := r.db.QueryContext(ctx, QueryListAll, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: list lists for user %s: %v", ErrQueryFailed, userID, err)
	}
	defer rows.Close()

	var lists []List
	for rows.Next() {
		var l List
		if err := rows.Scan(&l.ID, &l.UserID, &l.Name, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("list repository: scan row: %w", err)
		}
		lists = append(lists, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list repository: iterate over rows: %w", err)
	}

	return lists, nil
}

const QueryListCreate = `
INSERT INTO lists (id, user_id, name)
VALUES ($1, $2, $3)
RETURNING id, user_id, name, created_at, updated_at
`

func (r *Repository) CreateList(ctx context.Context, userID, name string) (List, error) {
	row := r.db.QueryRowContext(ctx, QueryListCreate, uuid.NewString(), userID, name)
	var l List
	if err := row.Scan(&l.ID, &l.UserID, &l.Name, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return l, fmt.Errorf("%w: create list for user %s: %v", ErrQueryFailed, userID, err)
	}
	return l, nil
}

const QueryListDelete = `
DELETE FROM lists
WHERE id = $1 AND user_id = $2
`

// DeleteList removes a list only when it belongs to userID.
func (r *Repository) DeleteList(ctx context.Context, listID, userID string) error {
	res, err := r.db.ExecContext(ctx, QueryListDelete, listID, userID)
	if err != nil {
		return fmt.Errorf("%w: delete list %s: %v", ErrQueryFailed, listID, err)
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
