package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/pkg/errors"

	"stufflending/internal/domain"
	"stufflending/internal/repository"
)

type itemRepository struct {
	mu     sync.Mutex
	items  map[int]*domain.Item
	nextID int
}

// NewItemRepository creates an empty in-memory item store. Item IDs are
// sequential integers starting at 1.
func NewItemRepository() repository.ItemRepository {
	return &itemRepository{items: make(map[int]*domain.Item), nextID: 1}
}

func (r *itemRepository) Create(_ context.Context, item *domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextID
	r.nextID++
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *itemRepository) GetByID(_ context.Context, id int) (*domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	it, ok := r.items[id]
	if !ok {
		return nil, errors.Wrapf(domain.ErrNotFound, "item %d", id)
	}
	cp := *it
	return &cp, nil
}

func (r *itemRepository) Update(_ context.Context, item *domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return errors.Wrapf(domain.ErrNotFound, "item %d", item.ID)
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *itemRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return errors.Wrapf(domain.ErrNotFound, "item %d", id)
	}
	delete(r.items, id)
	return nil
}

func (r *itemRepository) List(_ context.Context) ([]domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Item, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, *it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *itemRepository) ListByOwner(_ context.Context, ownerID string) ([]domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.Item
	for _, it := range r.items {
		if it.OwnerID == ownerID {
			out = append(out, *it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
