package session

import "sync"

type InMemoryRepository struct {
	mu     sync.Mutex
	scroll map[string]float64
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		scroll: make(map[string]float64),
	}
}

func (r *InMemoryRepository) SetScroll(sessionID string, offset float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.scroll[sessionID] = offset
}

func (r *InMemoryRepository) TakeScroll(sessionID string) (float64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	offset, ok := r.scroll[sessionID]
	if ok {
		delete(r.scroll, sessionID)
	}
	return offset, ok
}
