package application

import (
	"context"
	"slices"
	"sync"

	"github.com/bnema/portal-cli/internal/domain"
)

// Collection is a point-in-time copy of a store's state.
type Collection[T domain.Entity] struct {
	Items   []T
	Loading bool
	Current *T
	Err     error
}

// Store mirrors one backend collection in memory. Items only change after a call succeeds, and
// the lock is never held while a call is in flight, so the last response to arrive wins.
type Store[T domain.Entity] struct {
	mu       sync.RWMutex
	items    []T
	current  *T
	inflight int
	err      error
}

func NewStore[T domain.Entity]() *Store[T] {
	return &Store[T]{}
}

func (s *Store[T]) Snapshot() Collection[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := Collection[T]{
		Items:   slices.Clone(s.items),
		Loading: s.inflight > 0,
		Err:     s.err,
	}
	if s.current != nil {
		current := *s.current
		snapshot.Current = &current
	}

	return snapshot
}

func (s *Store[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.items)
}

// Fetch replaces the collection with the call's result. The loading flag is cleared whatever
// the outcome and a failure keeps the previous items.
func (s *Store[T]) Fetch(ctx context.Context, call func(context.Context) ([]T, error)) ([]T, error) {
	s.begin()

	items, err := call(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight--
	s.err = err
	if err != nil {
		return nil, err
	}

	s.items = slices.Clone(items)
	return slices.Clone(items), nil
}

// FetchOne loads a single record into Current.
func (s *Store[T]) FetchOne(ctx context.Context, call func(context.Context) (T, error)) (T, error) {
	s.begin()

	item, err := call(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight--
	s.err = err
	if err != nil {
		var zero T
		return zero, err
	}

	s.current = &item
	return item, nil
}

// Create appends the server's representation of a new record. A record whose id is already
// present replaces the existing one.
func (s *Store[T]) Create(ctx context.Context, call func(context.Context) (T, error)) (T, error) {
	item, err := call(ctx)
	if err != nil {
		return item, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(item.EntityID()); i >= 0 {
		s.items[i] = item
	} else {
		s.items = append(s.items, item)
	}

	return item, nil
}

// Update replaces the record matching id with the server's representation. Unknown ids leave
// the collection as it is.
func (s *Store[T]) Update(ctx context.Context, id int64, call func(context.Context) (T, error)) (T, error) {
	item, err := call(ctx)
	if err != nil {
		return item, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		s.items[i] = item
	}
	if s.current != nil && (*s.current).EntityID() == id {
		current := item
		s.current = &current
	}

	return item, nil
}

// Patch is Update for endpoints that answer without a body: apply edits the matched record once
// the call succeeds.
func (s *Store[T]) Patch(ctx context.Context, id int64, call func(context.Context) error, apply func(*T)) error {
	if err := call(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		apply(&s.items[i])
	}
	if s.current != nil && (*s.current).EntityID() == id {
		apply(s.current)
	}

	return nil
}

// Remove drops the record matching id once the call succeeds.
func (s *Store[T]) Remove(ctx context.Context, id int64, call func(context.Context) error) error {
	if err := call(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = slices.DeleteFunc(s.items, func(item T) bool { return item.EntityID() == id })
	if s.current != nil && (*s.current).EntityID() == id {
		s.current = nil
	}

	return nil
}

func (s *Store[T]) Replace(items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = slices.Clone(items)
}

// EditAll applies edit to every record.
func (s *Store[T]) EditAll(edit func(*T)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		edit(&s.items[i])
	}
}

func (s *Store[T]) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inflight++
}

func (s *Store[T]) indexOf(id int64) int {
	return slices.IndexFunc(s.items, func(item T) bool { return item.EntityID() == id })
}
