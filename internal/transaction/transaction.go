// Package transaction holds the income/expense entries recorded under a
// list. Like lists, entries belong to exactly one user and carry no further
// business rules.
package transaction

import "database/sql"

type Module struct {
	repo    *Repository
	svc     *Service
	handler *Handler
}

func (m *Module) Handler() *Handler {
	return m.handler
}

func (m *Module) Service() *Service {
	return m.svc
}

func NewModule(db *sql.DB) *Module {
	repo := NewRepository(db)
	svc := NewService(repo)
	handler := NewHandler(svc)
	return &Module{
		repo:    repo,
		svc:     svc,
		handler: handler,
	}
}
