package rest

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/velora-jewels/storefront-go/internal/domain/cart"
	"github.com/velora-jewels/storefront-go/internal/gateway"
)

var _ cart.Service = (*CartClient)(nil)

// CartClient talks to the cart service. Every mutation returns the
// authoritative server-side cart.
type CartClient struct {
	api *gateway.Client
}

// NewCartClient returns a CartClient using the given gateway.
func NewCartClient(api *gateway.Client) *CartClient {
	return &CartClient{api: api}
}

// Get fetches the user's cart.
func (c *CartClient) Get(ctx context.Context, userID string) (*cart.Cart, error) {
	var out cart.Cart
	if err := c.api.Get(ctx, "/cart/"+userID, nil, &out); err != nil {
		return nil, errors.Wrap(err, "get cart")
	}
	return &out, nil
}

// AddItem adds a product line to the user's cart.
func (c *CartClient) AddItem(ctx context.Context, req cart.AddItemRequest) (*cart.Cart, error) {
	var out cart.Cart
	if err := c.api.Post(ctx, "/cart", req, &out); err != nil {
		return nil, errors.Wrap(err, "add cart item")
	}
	return &out, nil
}

// UpdateItem changes an existing cart line.
func (c *CartClient) UpdateItem(ctx context.Context, cartID, itemID string, req cart.UpdateItemRequest) (*cart.Cart, error) {
	var out cart.Cart
	if err := c.api.Put(ctx, "/cart/"+cartID+"/item/"+itemID, req, &out); err != nil {
		return nil, errors.Wrap(err, "update cart item")
	}
	return &out, nil
}

// RemoveItem deletes one cart line.
func (c *CartClient) RemoveItem(ctx context.Context, cartID, itemID string) (*cart.Cart, error) {
	var out cart.Cart
	if err := c.api.Delete(ctx, "/cart/"+cartID+"/item/"+itemID, &out); err != nil {
		return nil, errors.Wrap(err, "remove cart item")
	}
	return &out, nil
}

// Clear empties the user's cart.
func (c *CartClient) Clear(ctx context.Context, userID string) error {
	if err := c.api.Delete(ctx, "/cart/clear/"+userID, nil); err != nil {
		return errors.Wrap(err, "clear cart")
	}
	return nil
}
