// Package memstore is a list-backed Store kept in process memory.
package memstore

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/idilsaglam/littlelemon/internal/model"
)

var ErrNoSchema = errors.New("memstore: schema not created")

// Store keeps items in insertion order; writes replace by ID in place.
type Store struct {
	mu    sync.Mutex
	ready bool
	items []model.MenuItem
	byID  map[string]int
}

func New() *Store { return &Store{byID: map[string]int{}} }

// Seeded returns a ready store holding items.
func Seeded(items []model.MenuItem) *Store {
	s := New()
	s.ready = true
	s.put(items)
	return s
}

func (s *Store) CreateSchema(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = true
	return nil
}

func (s *Store) WriteAll(_ context.Context, items []model.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return ErrNoSchema
	}
	s.put(items)
	return nil
}

func (s *Store) ReadAll(context.Context) ([]model.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, ErrNoSchema
	}
	out := make([]model.MenuItem, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *Store) Search(_ context.Context, query, category string) ([]model.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, ErrNoSchema
	}
	q := strings.ToLower(query)
	out := []model.MenuItem{}
	for _, it := range s.items {
		if category != "" && it.Category != category {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(it.Title), q) {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

func (s *Store) put(items []model.MenuItem) {
	for _, it := range items {
		if i, ok := s.byID[it.ID]; ok {
			s.items[i] = it
			continue
		}
		s.byID[it.ID] = len(s.items)
		s.items = append(s.items, it)
	}
}
