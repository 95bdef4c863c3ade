package application

import (
	"context"

	"github.com/bnema/portal-cli/internal/domain"
	"github.com/bnema/portal-cli/internal/ports"
)

type AlertStore struct {
	store *Store[domain.LowStockAlert]
	api   ports.InventoryAPI
}

func NewAlertStore(api ports.InventoryAPI) *AlertStore {
	return &AlertStore{store: NewStore[domain.LowStockAlert](), api: api}
}

func (s *AlertStore) Snapshot() Collection[domain.LowStockAlert] {
	return s.store.Snapshot()
}

func (s *AlertStore) FetchLowStock(ctx context.Context, threshold int) ([]domain.LowStockAlert, error) {
	return s.store.Fetch(ctx, func(ctx context.Context) ([]domain.LowStockAlert, error) {
		return s.api.LowStock(ctx, threshold)
	})
}

// Acknowledge removes the alert from the pending list.
func (s *AlertStore) Acknowledge(ctx context.Context, id int64) error {
	return s.store.Remove(ctx, id, func(ctx context.Context) error {
		return s.api.Acknowledge(ctx, id)
	})
}
