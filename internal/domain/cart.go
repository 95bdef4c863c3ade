package domain

import "fmt"

type CartItem struct {
	CartItemID  int64   `json:"cartItemId"`
	UserID      int64   `json:"userId"`
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName,omitempty"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
}

func (c CartItem) EntityID() int64 { return c.CartItemID }

func (c CartItem) Validate() error {
	if err := requirePositiveID("cart item", "cartItemId", c.CartItemID); err != nil {
		return err
	}
	if c.Quantity < 0 {
		return invalid("cart item", "quantity must not be negative, got %d", c.Quantity)
	}

	return nil
}

func (c CartItem) Subtotal() float64 {
	return c.UnitPrice * float64(c.Quantity)
}

type NewCartItem struct {
	UserID    int64 `json:"userId"`
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

func (c NewCartItem) Validate() error {
	if c.UserID <= 0 || c.ProductID <= 0 {
		return fmt.Errorf("cart item requires user and product ids")
	}

	return ValidateQuantity(c.Quantity)
}

func ValidateQuantity(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive, got %d", quantity)
	}

	return nil
}
