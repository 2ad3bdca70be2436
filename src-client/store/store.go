// Package store owns the client-side event list.
//
// The canonical list mirrors what the backend returned, in the order the
// backend (or the latest local reorder) decided. The view is never edited
// on its own: every change goes to the canonical list and the view is
// recomputed with ApplyFilter, so it is always a subset of the canonical
// list in canonical relative order.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"campusevents/src-client/model"
)

var (
	ErrNotFound     = errors.New("event not found")
	ErrInvalidOrder = errors.New("order is not a permutation of the events")
)

type Loader interface {
	ListEvents(ctx context.Context) ([]model.Event, error)
}

type Store struct {
	mu        sync.RWMutex
	canonical []model.Event
	view      []model.Event
	term      string
	category  string

	loader Loader
	cache  *model.EventCache
}

type Option func(*Store)

// WithCache mirrors every successful Load into the local database.
func WithCache(cache *model.EventCache) Option {
	return func(s *Store) {
		s.cache = cache
	}
}

func New(loader Loader, opts ...Option) *Store {
	s := &Store{
		canonical: []model.Event{},
		view:      []model.Event{},
		category:  model.CategoryAll,
		loader:    loader,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the canonical list with the backend's. On failure the
// current list is kept and the error returned.
func (s *Store) Load(ctx context.Context) error {
	events, err := s.loader.ListEvents(ctx)
	if err != nil {
		return fmt.Errorf("(*Store).Load: %w", err)
	}
	s.Replace(events)

	if s.cache != nil {
		if err := s.cache.Save(ctx, events); err != nil {
			slog.Warn("can't cache events", "error", err)
		}
	}
	return nil
}

// LoadCached fills the canonical list from the local cache.
func (s *Store) LoadCached(ctx context.Context) error {
	if s.cache == nil {
		return errors.New("(*Store).LoadCached: no cache configured")
	}
	events, err := s.cache.Load(ctx)
	if err != nil {
		return fmt.Errorf("(*Store).LoadCached: %w", err)
	}
	s.Replace(events)
	return nil
}

func (s *Store) Replace(events []model.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.canonical = append(make([]model.Event, 0, len(events)), events...)
	s.refresh()
}

func (s *Store) SetFilter(term, category string) {
	if category == "" {
		category = model.CategoryAll
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.term = term
	s.category = category
	s.refresh()
}

func (s *Store) Filter() (term, category string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.term, s.category
}

// Whether the active filter shows the whole canonical list. Only then is a
// local ordering worth sending to the backend.
func (s *Store) Unfiltered() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Unfiltered(s.term, s.category)
}

// Events returns a copy of the canonical list.
func (s *Store) Events() []model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Event(nil), s.canonical...)
}

// View returns a copy of the filtered view.
func (s *Store) View() []model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Event(nil), s.view...)
}

func (s *Store) Get(id int64) (model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := indexOf(s.canonical, id)
	if i < 0 {
		return model.Event{}, fmt.Errorf("(*Store).Get: %d: %w", id, ErrNotFound)
	}
	return s.canonical[i], nil
}

// ApplyCreate puts a freshly created event at the front of the list.
func (s *Store) ApplyCreate(event model.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.canonical = append([]model.Event{event}, s.canonical...)
	s.refresh()
}

// ApplyMutation merges patch into the event with the given id. The event
// may enter or leave the view as a result.
func (s *Store) ApplyMutation(id int64, patch model.EventPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.canonical, id)
	if i < 0 {
		return fmt.Errorf("(*Store).ApplyMutation: %d: %w", id, ErrNotFound)
	}
	patch.Apply(&s.canonical[i])
	s.refresh()
	return nil
}

func (s *Store) ApplyDelete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.canonical, id)
	if i < 0 {
		return fmt.Errorf("(*Store).ApplyDelete: %d: %w", id, ErrNotFound)
	}
	s.canonical = append(s.canonical[:i:i], s.canonical[i+1:]...)
	s.refresh()
	return nil
}

// ApplyMove moves the event activeID to where overID sits and returns the
// resulting canonical id order, along with whether the filter was empty at
// the time of the move. Moving within the canonical list keeps the view
// equal to the same move performed on the view alone.
func (s *Store) ApplyMove(activeID, overID int64) ([]int64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	from := indexOf(s.canonical, activeID)
	if from < 0 {
		return nil, false, fmt.Errorf("(*Store).ApplyMove: active %d: %w", activeID, ErrNotFound)
	}
	to := indexOf(s.canonical, overID)
	if to < 0 {
		return nil, false, fmt.Errorf("(*Store).ApplyMove: over %d: %w", overID, ErrNotFound)
	}
	s.canonical = ArrayMove(s.canonical, from, to)
	s.renumber()
	s.refresh()
	return IDs(s.canonical), Unfiltered(s.term, s.category), nil
}

// ApplyReorder takes either a permutation of the whole canonical list or a
// permutation of the current view. In the latter case the viewed events
// are rearranged among the slots they already occupy and hidden events
// stay where they are.
func (s *Store) ApplyReorder(ids []int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case isPermutation(ids, s.canonical):
		s.canonical = arrange(s.canonical, ids)
	case isPermutation(ids, s.view):
		byID := make(map[int64]model.Event, len(s.view))
		for _, event := range s.view {
			byID[event.ID] = event
		}
		next := make([]model.Event, len(s.canonical))
		copy(next, s.canonical)
		slot := 0
		for i := range next {
			if _, viewed := byID[next[i].ID]; viewed {
				next[i] = byID[ids[slot]]
				slot++
			}
		}
		s.canonical = next
	default:
		return fmt.Errorf("(*Store).ApplyReorder: %w", ErrInvalidOrder)
	}
	s.renumber()
	s.refresh()
	return nil
}

// caller must hold the write lock
func (s *Store) refresh() {
	s.view = ApplyFilter(s.canonical, s.term, s.category)
}

// caller must hold the write lock
func (s *Store) renumber() {
	for i := range s.canonical {
		position := i
		s.canonical[i].Position = &position
	}
}

func isPermutation(ids []int64, events []model.Event) bool {
	if len(ids) != len(events) {
		return false
	}
	want := make(map[int64]struct{}, len(events))
	for _, event := range events {
		want[event.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := want[id]; !ok {
			return false
		}
		delete(want, id)
	}
	return len(want) == 0
}

func arrange(events []model.Event, ids []int64) []model.Event {
	byID := make(map[int64]model.Event, len(events))
	for _, event := range events {
		byID[event.ID] = event
	}
	arranged := make([]model.Event, 0, len(ids))
	for _, id := range ids {
		arranged = append(arranged, byID[id])
	}
	return arranged
}
