package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-faster/errors"

	"github.com/velora-jewels/storefront-go/internal/domain/payment"
	"github.com/velora-jewels/storefront-go/internal/gateway"
)

var _ payment.Service = (*PaymentsClient)(nil)

// PaymentsClient talks to the payment service.
type PaymentsClient struct {
	api *gateway.Client
}

// NewPaymentsClient returns a PaymentsClient using the given gateway.
func NewPaymentsClient(api *gateway.Client) *PaymentsClient {
	return &PaymentsClient{api: api}
}

// Create records a payment against an order.
func (c *PaymentsClient) Create(ctx context.Context, req payment.CreateRequest) (*payment.Payment, error) {
	var out payment.Payment
	if err := c.api.Post(ctx, "/payments", req, &out); err != nil {
		return nil, errors.Wrap(err, "create payment")
	}
	return &out, nil
}

// UpdateStatus moves a payment to a new status.
func (c *PaymentsClient) UpdateStatus(ctx context.Context, req payment.UpdateStatusRequest) (*payment.Payment, error) {
	var out payment.Payment
	if err := c.api.Put(ctx, "/payments/status", req, &out); err != nil {
		return nil, errors.Wrap(err, "update payment status")
	}
	return &out, nil
}

// List fetches payments with optional server-side filters.
func (c *PaymentsClient) List(ctx context.Context, q payment.ListQuery) (*payment.ListResult, error) {
	query := url.Values{}
	if q.UserID != "" {
		query.Set("userId", q.UserID)
	}
	if q.OrderID != "" {
		query.Set("orderId", q.OrderID)
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
	if err := c.api.Get(ctx, "/payments", query, &raw); err != nil {
		return nil, errors.Wrap(err, "list payments")
	}

	items, page, err := normalizeList[payment.Payment](raw, "payments")
	if err != nil {
		return nil, errors.Wrap(err, "normalize payments")
	}

	return &payment.ListResult{
		Payments:   items,
		Total:      page.total,
		Page:       page.page,
		TotalPages: page.totalPages,
	}, nil
}

// GetByID fetches one payment. A 404 maps to payment.ErrNotFound.
func (c *PaymentsClient) GetByID(ctx context.Context, id string) (*payment.Payment, error) {
	var out payment.Payment
	if err := c.api.Get(ctx, "/payments/"+id, nil, &out); err != nil {
		if statusIs(err, http.StatusNotFound) {
			return nil, payment.ErrNotFound
		}
		return nil, errors.Wrapf(err, "get payment %s", id)
	}
	return &out, nil
}
