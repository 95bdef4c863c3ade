package cmd

import (
	"context"
	"strconv"

	"github.com/bnema/portal-cli/internal/adapters/render/listing"
	"github.com/bnema/portal-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newCartCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "cart",
		Short:       "Manage your shop cart",
		Annotations: route("/shop/cart"),
	}

	cmd.AddCommand(
		newCartShowCmd(app),
		newCartAddCmd(app),
		newCartQuantityCmd(app),
		newCartRemoveCmd(app),
		newCartClearCmd(app),
	)

	return cmd
}

func newCartShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show your cart and its total",
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := requireUser(app)
			if err != nil {
				return err
			}

			store := app.stores.Cart
			err = fetch(cmd, "Fetching cart", func(ctx context.Context) error {
				_, err := store.FetchForUser(ctx, user.UserID)
				return err
			})
			if err != nil {
				return err
			}

			return writeCart(cmd, app)
		},
	}
}

func newCartAddCmd(app *app) *cobra.Command {
	var item domain.NewCartItem

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product to your cart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := requireUser(app)
			if err != nil {
				return err
			}
			item.UserID = user.UserID

			added, err := app.stores.Cart.Add(cmd.Context(), item)
			if err != nil {
				return err
			}

			return writeView(cmd, app, listing.Cart([]domain.CartItem{added}, added.Subtotal()), added)
		},
	}

	cmd.Flags().Int64Var(&item.ProductID, "product", 0, "Product id")
	cmd.Flags().IntVar(&item.Quantity, "quantity", 1, "Quantity")
	_ = cmd.MarkFlagRequired("product")

	return cmd
}

func newCartQuantityCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "quantity <cart-item-id> <quantity>",
		Short: "Change the quantity of a cart line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "cart item")
			if err != nil {
				return err
			}
			quantity, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			if err := domain.ValidateQuantity(quantity); err != nil {
				return err
			}

			item, err := app.stores.Cart.UpdateQuantity(cmd.Context(), id, quantity)
			if err != nil {
				return err
			}

			return writeView(cmd, app, listing.Cart([]domain.CartItem{item}, item.Subtotal()), item)
		},
	}
}

func newCartRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <cart-item-id>",
		Short: "Remove a line from your cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "cart item")
			if err != nil {
				return err
			}
			if err := app.stores.Cart.Remove(cmd.Context(), id); err != nil {
				return err
			}
			return writeDone(cmd, "Cart line %d removed.", id)
		},
	}
}

func newCartClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty your cart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := requireUser(app)
			if err != nil {
				return err
			}
			if err := app.stores.Cart.Clear(cmd.Context(), user.UserID); err != nil {
				return err
			}
			return writeDone(cmd, "Cart cleared.")
		},
	}
}

func writeCart(cmd *cobra.Command, app *app) error {
	items := app.stores.Cart.Snapshot().Items
	total := app.stores.Cart.Total()

	return writeView(cmd, app, listing.Cart(items, total), struct {
		Items []domain.CartItem `json:"items"`
		Total float64           `json:"total"`
	}{Items: items, Total: total})
}
