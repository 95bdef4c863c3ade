package rest

import (
	"context"
	"net/http"

	"github.com/bnema/portal-cli/internal/adapters/gateway"
	"github.com/bnema/portal-cli/internal/domain"
	"github.com/bnema/portal-cli/internal/ports"
)

type CartAPI struct {
	requester Requester
}

var _ ports.CartAPI = (*CartAPI)(nil)

func NewCartAPI(requester Requester) *CartAPI {
	return &CartAPI{requester: requester}
}

func (a *CartAPI) ListForUser(ctx context.Context, userID int64) ([]domain.CartItem, error) {
	if err := requireID("user", userID); err != nil {
		return nil, err
	}

	var items gateway.List[domain.CartItem]
	if err := a.requester.Do(ctx, http.MethodGet, pathf("/cart/user/%s", userID), nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (a *CartAPI) Add(ctx context.Context, item domain.NewCartItem) (domain.CartItem, error) {
	if err := item.Validate(); err != nil {
		return domain.CartItem{}, err
	}

	var added domain.CartItem
	if err := a.requester.Do(ctx, http.MethodPost, "/cart/add", item, &added); err != nil {
		return domain.CartItem{}, err
	}
	return added, nil
}

func (a *CartAPI) UpdateQuantity(ctx context.Context, id int64, quantity int) (domain.CartItem, error) {
	if err := requireID("cart item", id); err != nil {
		return domain.CartItem{}, err
	}
	if err := domain.ValidateQuantity(quantity); err != nil {
		return domain.CartItem{}, err
	}

	var updated domain.CartItem
	body := map[string]int{"quantity": quantity}
	if err := a.requester.Do(ctx, http.MethodPut, pathf("/cart/%s/quantity", id), body, &updated); err != nil {
		return domain.CartItem{}, err
	}
	return updated, nil
}

func (a *CartAPI) Remove(ctx context.Context, id int64) error {
	if err := requireID("cart item", id); err != nil {
		return err
	}
	return a.requester.Do(ctx, http.MethodDelete, pathf("/cart/%s", id), nil, nil)
}

func (a *CartAPI) Clear(ctx context.Context, userID int64) error {
	if err := requireID("user", userID); err != nil {
		return err
	}
	return a.requester.Do(ctx, http.MethodDelete, pathf("/cart/user/%s/clear", userID), nil, nil)
}
