package transaction

import "context"

var _ TransactionService = (*Service)(nil)

type TransactionRepository interface {
	ListTransactions(ctx context.Context, listID, userID string) ([]Transaction, error)
	CreateTransaction(ctx context.Context, params CreateTransactionParams) (Transaction, error)
	DeleteTransaction(ctx context.Context, txnID, userID string) error
}

type Service struct {
	repo TransactionRepository
}

func (s *Service) ListTransactions(ctx context.Context, listID, userID string) ([]Transaction, error) {
	return s.repo.ListTransactions(ctx, listID, userID)
}

func (s *Service) CreateTransaction(ctx context.Context, params CreateTransactionParams) (Transaction, error) {
	return s.repo.CreateTransaction(ctx, params)
}

func (s *Service) DeleteTransaction(ctx context.Context, txnID, userID string) error {
	return s.repo.DeleteTransaction(ctx, txnID, userID)
}

func NewService(repo TransactionRepository) *Service {
	return &Service{repo: repo}
}
