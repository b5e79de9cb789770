package menu

import (
	"sync"

	"github.com/maksimkurb/keen-menu/src/internal/errors"
)

// IDStrategy selects how ids are assigned to created items.
type IDStrategy string

const (
	// IDSequence hands out ids from a counter that never goes back, so ids are
	// not reused after deletes.
	IDSequence IDStrategy = "sequence"
	// IDLength uses len(collection)+1. Ids can repeat once items are deleted.
	IDLength IDStrategy = "length"
)

// ErrItemNotFound is returned when no item has the requested id.
var ErrItemNotFound = errors.NewNotFoundError("Menu item not found")

// Store owns the ordered in-memory collection of menu items.
type Store struct {
	mu       sync.RWMutex
	items    []MenuItem
	nextID   int
	strategy IDStrategy
}

// NewStore creates a store holding a copy of seed. An empty strategy means IDSequence.
func NewStore(seed []MenuItem, strategy IDStrategy) *Store {
	if strategy == "" {
		strategy = IDSequence
	}

	s := &Store{
		items:    make([]MenuItem, 0, len(seed)),
		nextID:   1,
		strategy: strategy,
	}
	for _, item := range seed {
		s.items = append(s.items, item.clone())
		if item.ID >= s.nextID {
			s.nextID = item.ID + 1
		}
	}
	return s
}

// Strategy returns the id strategy in use.
func (s *Store) Strategy() IDStrategy {
	return s.strategy
}

// Len returns the number of items.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// List returns all items in insertion order.
func (s *Store) List() []MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]MenuItem, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item.clone())
	}
	return items
}

// Get returns the item with the given id.
func (s *Store) Get(id int) (MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i == -1 {
		return MenuItem{}, ErrItemNotFound
	}
	return s.items[i].clone(), nil
}

// Create appends a new item built from fields and returns it.
func (s *Store) Create(fields Fields) MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := fields.newItem(s.assignID())
	s.items = append(s.items, item)
	return item.clone()
}

// Replace overwrites the item in place with a record made only of the given
// fields. Attributes missing from fields are not carried over.
func (s *Store) Replace(id int, fields Fields) (MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i == -1 {
		return MenuItem{}, ErrItemNotFound
	}
	s.items[i] = fields.newItem(id)
	return s.items[i].clone(), nil
}

// Merge updates only the attributes present in fields.
func (s *Store) Merge(id int, fields Fields) (MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i == -1 {
		return MenuItem{}, ErrItemNotFound
	}
	fields.applyTo(&s.items[i])
	return s.items[i].clone(), nil
}

// Delete removes the item and returns it. The order of the remaining items is kept.
func (s *Store) Delete(id int) (MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i == -1 {
		return MenuItem{}, ErrItemNotFound
	}
	deleted := s.items[i]
	s.items = append(s.items[:i], s.items[i+1:]...)
	return deleted, nil
}

// assignID must be called with the write lock held.
func (s *Store) assignID() int {
	switch s.strategy {
	case IDLength:
		return len(s.items) + 1
	default:
		id := s.nextID
		s.nextID++
		return id
	}
}

// indexOf returns the position of the first item with the id, or -1.
func (s *Store) indexOf(id int) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
