package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryItemRepository is an in-memory ItemRepository used by tests.
// It honors the same contract as the Postgres implementation: absent
// rows are (nil, nil), list is newest first with clamped paging, the
// q filter matches name or description case-insensitively.
type MemoryItemRepository struct {
	mu    sync.RWMutex
	items map[string]Item
	seq   map[string]int // insertion order, tie-breaker for equal timestamps
	next  int
}

func NewMemoryItemRepository() *MemoryItemRepository {
	return &MemoryItemRepository{
		items: make(map[string]Item),
		seq:   make(map[string]int),
	}
}

func (r *MemoryItemRepository) Create(ctx context.Context, name, description string) (*Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	item := Item{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.items[item.ID] = item
	r.seq[item.ID] = r.next
	r.next++

	return &item, nil
}

func (r *MemoryItemRepository) GetByID(ctx context.Context, id string) (*Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (r *MemoryItemRepository) List(ctx context.Context, limit, offset int, q string) ([]Item, error) {
	if limit < 1 {
		limit = ListDefaultLimit
	}
	if limit > ListMaxLimit {
		limit = ListMaxLimit
	}
	if offset < 0 {
		offset = 0
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]Item, 0, len(r.items))
	needle := strings.ToLower(q)
	for _, item := range r.items {
		if q != "" &&
			!strings.Contains(strings.ToLower(item.Name), needle) &&
			!strings.Contains(strings.ToLower(item.Description), needle) {
			continue
		}
		matched = append(matched, item)
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return r.seq[matched[i].ID] > r.seq[matched[j].ID]
	})

	if offset >= len(matched) {
		return []Item{}, nil
	}
	matched = matched[offset:]
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *MemoryItemRepository) Update(ctx context.Context, id string, name, description *string) (*Item, error) {
	if name == nil && description == nil {
		return r.GetByID(ctx, id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}

	if name != nil {
		item.Name = *name
	}
	if description != nil {
		item.Description = *description
	}
	item.UpdatedAt = time.Now().UTC()
	r.items[id] = item

	return &item, nil
}

func (r *MemoryItemRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	delete(r.seq, id)
	return true, nil
}
