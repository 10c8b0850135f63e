package cart

import (
	"context"
	"sync"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Container is the client-side cart state holder. It lazily loads the
// signed-in user's cart and replaces its local copy with the authoritative
// server response after every mutation. There is no optimistic update and no
// local merge; concurrent mutations race and the last response to arrive wins.
//
// All methods are safe for concurrent use. While no user is signed in the
// container is empty and every mutation fails with ErrUnauthenticated before
// any network call.
type Container struct {
	svc Service

	mu     sync.Mutex
	userID string
	cart   *Cart
}

// NewContainer creates an empty cart container backed by the given service.
func NewContainer(svc Service) *Container {
	return &Container{svc: svc}
}

// HandleSignIn records the signed-in user and loads their cart from the
// remote service. It is intended to be registered as a session sign-in hook.
func (c *Container) HandleSignIn(ctx context.Context, userID string) error {
	c.mu.Lock()
	c.userID = userID
	c.cart = nil
	c.mu.Unlock()

	loaded, err := c.svc.Get(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "load cart")
	}

	c.mu.Lock()
	if c.userID == userID {
		c.cart = loaded
	}
	c.mu.Unlock()
	return nil
}

// HandleSignOut discards all local cart state. Registered as a session
// sign-out hook.
func (c *Container) HandleSignOut() {
	c.mu.Lock()
	c.userID = ""
	c.cart = nil
	c.mu.Unlock()
}

// Cart returns the current cart snapshot, or nil when none is loaded.
func (c *Container) Cart() *Cart {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cart
}

// ItemCount returns the server-derived total quantity across all lines.
func (c *Container) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cart == nil {
		return 0
	}
	return c.cart.TotalItems
}

// Total returns the server-derived cart total.
func (c *Container) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cart == nil {
		return decimal.Zero
	}
	return c.cart.TotalPrice
}

// AddItem adds a product to the signed-in user's cart. The UserID field of
// the request is filled in from the session.
func (c *Container) AddItem(ctx context.Context, req AddItemRequest) error {
	c.mu.Lock()
	userID := c.userID
	c.mu.Unlock()
	if userID == "" {
		return ErrUnauthenticated
	}

	req.UserID = userID
	updated, err := c.svc.AddItem(ctx, req)
	if err != nil {
		return errors.Wrap(err, "add item")
	}
	c.adopt(userID, updated)
	return nil
}

// UpdateItem changes the quantity or variant of an existing cart line.
func (c *Container) UpdateItem(ctx context.Context, itemID string, req UpdateItemRequest) error {
	userID, cartID, err := c.current()
	if err != nil {
		return err
	}

	updated, err := c.svc.UpdateItem(ctx, cartID, itemID, req)
	if err != nil {
		return errors.Wrap(err, "update item")
	}
	c.adopt(userID, updated)
	return nil
}

// RemoveItem deletes one line from the cart.
func (c *Container) RemoveItem(ctx context.Context, itemID string) error {
	userID, cartID, err := c.current()
	if err != nil {
		return err
	}

	updated, err := c.svc.RemoveItem(ctx, cartID, itemID)
	if err != nil {
		return errors.Wrap(err, "remove item")
	}
	c.adopt(userID, updated)
	return nil
}

// Clear empties the signed-in user's cart on the server and locally.
func (c *Container) Clear(ctx context.Context) error {
	c.mu.Lock()
	userID := c.userID
	c.mu.Unlock()
	if userID == "" {
		return ErrUnauthenticated
	}

	if err := c.svc.Clear(ctx, userID); err != nil {
		return errors.Wrap(err, "clear cart")
	}

	c.mu.Lock()
	if c.userID == userID {
		c.cart = nil
	}
	c.mu.Unlock()
	return nil
}

// current returns the signed-in user and loaded cart IDs, or
// ErrUnauthenticated when either is missing.
func (c *Container) current() (userID, cartID string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.userID == "" || c.cart == nil {
		return "", "", ErrUnauthenticated
	}
	return c.userID, c.cart.ID, nil
}

// adopt replaces local state with the server response unless the session
// changed while the request was in flight.
func (c *Container) adopt(userID string, updated *Cart) {
	c.mu.Lock()
	if c.userID == userID {
		c.cart = updated
	}
	c.mu.Unlock()
}
