package session

import (
	"errors"
	"sync"
)

// ErrNoBatch indicates the user has no evaluation batch yet.
var ErrNoBatch = errors.New("no evaluation batch for user")

// ErrSelectionOutOfRange indicates a selection index outside the ranked list.
var ErrSelectionOutOfRange = errors.New("selection index out of range")

// Store keeps the latest evaluation batch per user. A new batch replaces
// the previous one and resets the selection.
type Store struct {
	mu      sync.RWMutex
	batches map[string]*Batch
}

// NewStore builds an empty Store.
func NewStore() *Store {
	return &Store{batches: make(map[string]*Batch)}
}

// Put replaces the user's batch.
func (s *Store) Put(userEmail string, batch *Batch) {
	s.mu.Lock()
	s.batches[userEmail] = batch
	s.mu.Unlock()
}

// Get returns the user's current batch.
func (s *Store) Get(userEmail string) (*Batch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	batch, ok := s.batches[userEmail]
	if !ok {
		return nil, ErrNoBatch
	}
	return batch, nil
}

// Select updates the user's selected candidate index.
func (s *Store) Select(userEmail string, index int) (*Batch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	batch, ok := s.batches[userEmail]
	if !ok {
		return nil, ErrNoBatch
	}
	if index < 0 || index >= len(batch.Records) {
		return nil, ErrSelectionOutOfRange
	}
	batch.SelectedIndex = index
	return batch, nil
}
