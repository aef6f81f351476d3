package cart

import (
	"errors"
	"sync"
)

var ErrItemNotFound = errors.New("cart item not found")

// InMemoryRepository keeps one ordered cart per session. Carts live for
// the session's lifetime only, matching the browser-tab behavior of the
// site: nothing survives a restart.
type InMemoryRepository struct {
	mu    sync.RWMutex
	carts map[string][]*Item
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		carts: make(map[string][]*Item),
	}
}

func (r *InMemoryRepository) Items(sessionID string) []*Item {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lines := r.carts[sessionID]
	out := make([]*Item, 0, len(lines))
	for _, line := range lines {
		copied := *line
		out = append(out, &copied)
	}
	return out
}

func (r *InMemoryRepository) Get(sessionID, itemID string) (*Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, line := range r.carts[sessionID] {
		if line.ID == itemID {
			copied := *line
			return &copied, nil
		}
	}
	return nil, ErrItemNotFound
}

func (r *InMemoryRepository) Append(sessionID string, item *Item) {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *item
	r.carts[sessionID] = append(r.carts[sessionID], &copied)
}

func (r *InMemoryRepository) Replace(sessionID, itemID string, item *Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, line := range r.carts[sessionID] {
		if line.ID == itemID {
			copied := *item
			r.carts[sessionID][i] = &copied
			return nil
		}
	}
	return ErrItemNotFound
}

func (r *InMemoryRepository) Remove(sessionID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := r.carts[sessionID]
	for i, line := range lines {
		if line.ID == itemID {
			r.carts[sessionID] = append(lines[:i], lines[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

func (r *InMemoryRepository) Clear(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, sessionID)
}
