package items

import (
	"context"
	"sync"
)

// Store keeps the ordered item list.
type Store interface {
	// List returns all items in insertion order.
	List(ctx context.Context) ([]Item, error)
	// Add appends an item named name and returns it.
	Add(ctx context.Context, name string) (Item, error)
}

// MemoryStore keeps items in process memory. Contents are lost on restart.
type MemoryStore struct {
	mu    sync.RWMutex
	items []Item
}

// NewMemoryStore creates a store holding a copy of seed.
func NewMemoryStore(seed ...Item) *MemoryStore {
	items := make([]Item, len(seed))
	copy(items, seed)
	return &MemoryStore{items: items}
}

// List returns a snapshot of the items.
func (s *MemoryStore) List(ctx context.Context) ([]Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out, nil
}

// Add appends a new item with ID len+1. Items are never removed, so the ID
// stays unique; a delete operation would need a separate counter.
func (s *MemoryStore) Add(ctx context.Context, name string) (Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := Item{ID: len(s.items) + 1, Name: name}
	s.items = append(s.items, item)
	return item, nil
}
