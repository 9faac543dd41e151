package store

import (
	"errors"
	"sync"

	"github.com/dshills/archon/internal/review"
)

// ErrEmptyID is returned when saving a review without an id.
var ErrEmptyID = errors.New("review id is empty")

// Memory keeps reviews for the lifetime of the process. It is safe for
// concurrent use.
type Memory struct {
	mu      sync.RWMutex
	reviews map[string]review.ArchitectureReview
	order   []string
}

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{reviews: make(map[string]review.ArchitectureReview)}
}

// Save stores r under its id. Saving an existing id replaces the record but
// keeps its original position in FindAll.
func (m *Memory) Save(r review.ArchitectureReview) error {
	if r.ID == "" {
		return ErrEmptyID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.reviews[r.ID]; !ok {
		m.order = append(m.order, r.ID)
	}
	m.reviews[r.ID] = r
	return nil
}

// FindByID returns the review with id, or false if there is none.
func (m *Memory) FindByID(id string) (review.ArchitectureReview, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.reviews[id]
	return r, ok
}

// FindAll returns every stored review in insertion order.
func (m *Memory) FindAll() []review.ArchitectureReview {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]review.ArchitectureReview, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.reviews[id])
	}
	return out
}

// Len reports the number of stored reviews.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.reviews)
}
