package cart

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/velora-jewels/storefront-go/internal/domain/product"
)

// ErrUnauthenticated is returned by cart operations attempted without a
// signed-in user. No network call is made in that case.
var ErrUnauthenticated = errors.New("authentication required")

// Cart is one user's shopping cart. TotalItems and TotalPrice are derived by
// the owning remote service; the client never recomputes them.
type Cart struct {
	ID         string          `json:"_id"`
	UserID     string          `json:"userId"`
	Items      []Item          `json:"items"`
	TotalItems int             `json:"totalItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// Item is one cart line. PriceSnapshot is the unit price captured when the
// item was added, frozen against later product price changes.
type Item struct {
	ID              string           `json:"_id"`
	ProductID       string           `json:"productId"`
	Product         *product.Product `json:"product,omitempty"`
	Quantity        int              `json:"quantity"`
	SelectedVariant *product.Variant `json:"selectedVariant,omitempty"`
	PriceSnapshot   decimal.Decimal  `json:"priceSnapshot"`
	AddedAt         time.Time        `json:"addedAt"`
}

// AddItemRequest is the payload for adding a product to a cart.
type AddItemRequest struct {
	UserID        string           `json:"userId"`
	ProductID     string           `json:"productId"`
	Quantity      int              `json:"quantity"`
	Variant       *product.Variant `json:"variant,omitempty"`
	PriceSnapshot decimal.Decimal  `json:"priceSnapshot"`
}

// UpdateItemRequest is the payload for changing an existing cart line.
type UpdateItemRequest struct {
	Quantity int              `json:"quantity"`
	Variant  *product.Variant `json:"variant,omitempty"`
}

// Service defines the remote cart operations. Every mutation returns the
// authoritative server-side cart, which callers adopt wholesale.
type Service interface {
	Get(ctx context.Context, userID string) (*Cart, error)
	AddItem(ctx context.Context, req AddItemRequest) (*Cart, error)
	UpdateItem(ctx context.Context, cartID, itemID string, req UpdateItemRequest) (*Cart, error)
	RemoveItem(ctx context.Context, cartID, itemID string) (*Cart, error)
	Clear(ctx context.Context, userID string) error
}
