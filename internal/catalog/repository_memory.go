package catalog

import (
	"errors"
	"sync"
)

var ErrItemNotFound = errors.New("menu item not found")

// InMemoryRepository holds the catalog in memory, in menu order.
// There is no database behind it: the menu is seeded at startup.
type InMemoryRepository struct {
	mu    sync.RWMutex
	order []string
	items map[string]*MenuItem
}

func NewInMemoryRepository(seed []MenuItem) *InMemoryRepository {
	r := &InMemoryRepository{
		order: make([]string, 0, len(seed)),
		items: make(map[string]*MenuItem, len(seed)),
	}
	for i := range seed {
		item := seed[i]
		r.order = append(r.order, item.ID)
		r.items[item.ID] = &item
	}
	return r
}

func (r *InMemoryRepository) GetByID(id string) (*MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *InMemoryRepository) List() []*MenuItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*MenuItem, 0, len(r.order))
	for _, id := range r.order {
		copied := *r.items[id]
		out = append(out, &copied)
	}
	return out
}

func (r *InMemoryRepository) ListByCategory(category Category) []*MenuItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*MenuItem
	for _, id := range r.order {
		if r.items[id].Category == category {
			copied := *r.items[id]
			out = append(out, &copied)
		}
	}
	return out
}

func (r *InMemoryRepository) UpdateImageURL(id, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return ErrItemNotFound
	}
	item.ImageURL = url
	return nil
}

func (r *InMemoryRepository) SetAvailability(id string, available bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return ErrItemNotFound
	}
	item.IsAvailable = available
	return nil
}
