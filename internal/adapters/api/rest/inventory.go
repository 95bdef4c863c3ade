package rest

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/bnema/portal-cli/internal/adapters/gateway"
	"github.com/bnema/portal-cli/internal/domain"
	"github.com/bnema/portal-cli/internal/ports"
)

type InventoryAPI struct {
	requester Requester
}

var _ ports.InventoryAPI = (*InventoryAPI)(nil)

func NewInventoryAPI(requester Requester) *InventoryAPI {
	return &InventoryAPI{requester: requester}
}

// LowStock lists alerts at or below threshold; zero leaves the backend default in place.
func (a *InventoryAPI) LowStock(ctx context.Context, threshold int) ([]domain.LowStockAlert, error) {
	if threshold < 0 {
		return nil, fmt.Errorf("threshold must not be negative, got %d", threshold)
	}

	path := "/inventory/low-stock"
	if threshold > 0 {
		path += "?threshold=" + strconv.Itoa(threshold)
	}

	var alerts gateway.List[domain.LowStockAlert]
	if err := a.requester.Do(ctx, http.MethodGet, path, nil, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

func (a *InventoryAPI) Acknowledge(ctx context.Context, id int64) error {
	if err := requireID("alert", id); err != nil {
		return err
	}
	return a.requester.Do(ctx, http.MethodPut, pathf("/inventory/alerts/%s/acknowledge", id), nil, nil)
}
