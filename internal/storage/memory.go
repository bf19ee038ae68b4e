package storage

import (
	"context"
	"sync"

	"github.com/tartampluch/go-addressbook/internal/addressbook"
)

// MemoryStore implements [Store] without touching the disk.
// It keeps a Snapshot rather than the book itself, so later mutations of a
// saved book do not leak into the store.
type MemoryStore struct {
	mu       sync.Mutex
	snapshot *Snapshot
	saves    int
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns a store preloaded with contacts, if any.
func NewMemoryStore(contacts ...Contact) *MemoryStore {
	if len(contacts) == 0 {
		return &MemoryStore{}
	}
	return &MemoryStore{snapshot: &Snapshot{Contacts: contacts}}
}

func (s *MemoryStore) Load(_ context.Context) (*addressbook.AddressBook, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot == nil {
		return addressbook.New(), nil
	}
	return s.snapshot.Book()
}

func (s *MemoryStore) Save(_ context.Context, book *addressbook.AddressBook) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := SnapshotOf(book)
	s.snapshot = &snap
	s.saves++
	return nil
}

// Snapshot returns the last saved state and whether anything was saved.
func (s *MemoryStore) Snapshot() (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot == nil {
		return Snapshot{}, false
	}
	return *s.snapshot, true
}

// Saves counts the Save calls.
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
