package service

import (
	"context"

	"itemsapi/internal/repository"
)

// ItemService orchestrates item operations. Today it is a passthrough
// to the repository; rules like quotas or uniqueness checks belong here
// when they arrive.
type ItemService struct {
	repo repository.ItemRepository
}

func NewItemService(repo repository.ItemRepository) *ItemService {
	return &ItemService{repo: repo}
}

func (s *ItemService) Create(ctx context.Context, name, description string) (*repository.Item, error) {
	return s.repo.Create(ctx, name, description)
}

func (s *ItemService) Get(ctx context.Context, id string) (*repository.Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ItemService) List(ctx context.Context, limit, offset int, q string) ([]repository.Item, error) {
	return s.repo.List(ctx, limit, offset, q)
}

func (s *ItemService) Update(ctx context.Context, id string, name, description *string) (*repository.Item, error) {
	return s.repo.Update(ctx, id, name, description)
}

func (s *ItemService) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}
