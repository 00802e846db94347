package list

import "context"

var _ ListService = (*Service)(nil)

type ListRepository interface {
	ListLists(ctx context.Context, userID string) ([]List, error)
	CreateList(ctx context.Context, userID, name string) (List, error)
	DeleteList(ctx context.Context, listID, userID string) error
}

type Service struct {
	repo ListRepository
}

func (s *Service) ListLists(ctx context.Context, userID string) ([]List, error) {
	return s.repo.ListLists(ctx, userID)
}

func (s *Service) CreateList(ctx context.Context, userID, name string) (List, error) {
	return s.repo.CreateList(ctx, userID, name)
}

func (s *Service) DeleteList(ctx context.Context, listID, userID string) error {
	return s.repo.DeleteList(ctx, listID, userID)
}

func NewService(repo ListRepository) *Service {
	return &Service{repo: repo}
}
