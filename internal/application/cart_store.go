package application

import (
	"context"

	"github.com/bnema/portal-cli/internal/domain"
	"github.com/bnema/portal-cli/internal/ports"
)

type CartStore struct {
	store *Store[domain.CartItem]
	api   ports.CartAPI
}

func NewCartStore(api ports.CartAPI) *CartStore {
	return &CartStore{store: NewStore[domain.CartItem](), api: api}
}

func (s *CartStore) Snapshot() Collection[domain.CartItem] {
	return s.store.Snapshot()
}

func (s *CartStore) FetchForUser(ctx context.Context, userID int64) ([]domain.CartItem, error) {
	return s.store.Fetch(ctx, func(ctx context.Context) ([]domain.CartItem, error) {
		return s.api.ListForUser(ctx, userID)
	})
}

// Add keeps one line per cart item id; the backend may merge quantities into an existing line.
func (s *CartStore) Add(ctx context.Context, item domain.NewCartItem) (domain.CartItem, error) {
	return s.store.Create(ctx, func(ctx context.Context) (domain.CartItem, error) {
		return s.api.Add(ctx, item)
	})
}

func (s *CartStore) UpdateQuantity(ctx context.Context, id int64, quantity int) (domain.CartItem, error) {
	return s.store.Update(ctx, id, func(ctx context.Context) (domain.CartItem, error) {
		return s.api.UpdateQuantity(ctx, id, quantity)
	})
}

func (s *CartStore) Remove(ctx context.Context, id int64) error {
	return s.store.Remove(ctx, id, func(ctx context.Context) error {
		return s.api.Remove(ctx, id)
	})
}

func (s *CartStore) Clear(ctx context.Context, userID int64) error {
	if err := s.api.Clear(ctx, userID); err != nil {
		return err
	}

	s.store.Replace(nil)
	return nil
}

func (s *CartStore) Total() float64 {
	var total float64
	for _, item := range s.store.Items() {
		total += item.Subtotal()
	}
	return total
}
