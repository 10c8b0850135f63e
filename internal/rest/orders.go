package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-faster/errors"

	"github.com/velora-jewels/storefront-go/internal/domain/order"
	"github.com/velora-jewels/storefront-go/internal/gateway"
)

var _ order.Service = (*OrdersClient)(nil)

// OrdersClient talks to the order service.
type OrdersClient struct {
	api *gateway.Client
}

// NewOrdersClient returns an OrdersClient using the given gateway.
func NewOrdersClient(api *gateway.Client) *OrdersClient {
	return &OrdersClient{api: api}
}

// Create places an order from the checkout payload.
func (c *OrdersClient) Create(ctx context.Context, req order.CreateRequest) (*order.Order, error) {
	var out order.Order
	if err := c.api.Post(ctx, "/orders", req, &out); err != nil {
		return nil, errors.Wrap(err, "create order")
	}
	return &out, nil
}

// List fetches orders with optional server-side filters.
func (c *OrdersClient) List(ctx context.Context, q order.ListQuery) (*order.ListResult, error) {
	query := url.Values{}
	if q.UserID != "" {
		query.Set("userId", q.UserID)
	}
	if q.Status != "" {
		query.Set("status", string(q.Status))
	}
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		query.Set("limit", strconv.Itoa(q.Limit))
	}

	var raw json.RawMessage
	if err := c.api.Get(ctx, "/orders", query, &raw); err != nil {
		return nil, errors.Wrap(err, "list orders")
	}

	items, page, err := normalizeList[order.Order](raw, "orders")
	if err != nil {
		return nil, errors.Wrap(err, "normalize orders")
	}

	return &order.ListResult{
		Orders:     items,
		Total:      page.total,
		Page:       page.page,
		TotalPages: page.totalPages,
	}, nil
}

// GetByID fetches one order. A 404 maps to order.ErrNotFound.
func (c *OrdersClient) GetByID(ctx context.Context, id string) (*order.Order, error) {
	var out order.Order
	if err := c.api.Get(ctx, "/orders/"+id, nil, &out); err != nil {
		if statusIs(err, http.StatusNotFound) {
			return nil, order.ErrNotFound
		}
		return nil, errors.Wrapf(err, "get order %s", id)
	}
	return &out, nil
}

// UpdateStatus moves an order to a new status (admin only).
func (c *OrdersClient) UpdateStatus(ctx context.Context, id string, status order.Status) (*order.Order, error) {
	body := struct {
		Status order.Status `json:"status"`
	}{Status: status}

	var out order.Order
	if err := c.api.Put(ctx, "/orders/"+id, body, &out); err != nil {
		if statusIs(err, http.StatusNotFound) {
			return nil, order.ErrNotFound
		}
		return nil, errors.Wrapf(err, "update order %s status", id)
	}
	return &out, nil
}

// Delete removes an order (admin only).
func (c *OrdersClient) Delete(ctx context.Context, id string) error {
	if err := c.api.Delete(ctx, "/orders/"+id, nil); err != nil {
		if statusIs(err, http.StatusNotFound) {
			return order.ErrNotFound
		}
		return errors.Wrapf(err, "delete order %s", id)
	}
	return nil
}
