package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-faster/errors"

	"github.com/velora-jewels/storefront-go/internal/domain/user"
	"github.com/velora-jewels/storefront-go/internal/gateway"
)

var _ user.Directory = (*UsersClient)(nil)

// UsersClient talks to the user service.
type UsersClient struct {
	api *gateway.Client
}

// NewUsersClient returns a UsersClient using the given gateway.
func NewUsersClient(api *gateway.Client) *UsersClient {
	return &UsersClient{api: api}
}

// Create adds a user record (admin only).
func (c *UsersClient) Create(ctx context.Context, req user.CreateRequest) (*user.User, error) {
	var out user.User
	if err := c.api.Post(ctx, "/users", req, &out); err != nil {
		return nil, errors.Wrap(err, "create user")
	}
	return &out, nil
}

// List fetches users with optional search and pagination (admin only).
func (c *UsersClient) List(ctx context.Context, q user.ListQuery) (*user.ListResult, error) {
	query := url.Values{}
	if q.Search != "" {
		query.Set("search", q.Search)
	}
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		query.Set("limit", strconv.Itoa(q.Limit))
	}

	var raw json.RawMessage
	if err := c.api.Get(ctx, "/users", query, &raw); err != nil {
		return nil, errors.Wrap(err, "list users")
	}

	items, page, err := normalizeList[user.User](raw, "users")
	if err != nil {
		return nil, errors.Wrap(err, "normalize users")
	}

	return &user.ListResult{
		Users:      items,
		Total:      page.total,
		Page:       page.page,
		TotalPages: page.totalPages,
	}, nil
}

// GetByID fetches one user. A 404 maps to user.ErrNotFound.
func (c *UsersClient) GetByID(ctx context.Context, id string) (*user.User, error) {
	var out user.User
	if err := c.api.Get(ctx, "/users/"+id, nil, &out); err != nil {
		if statusIs(err, http.StatusNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, errors.Wrapf(err, "get user %s", id)
	}
	return &out, nil
}

// Update applies a partial user update.
func (c *UsersClient) Update(ctx context.Context, id string, req user.UpdateRequest) (*user.User, error) {
	var out user.User
	if err := c.api.Put(ctx, "/users/"+id, req, &out); err != nil {
		if statusIs(err, http.StatusNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, errors.Wrapf(err, "update user %s", id)
	}
	return &out, nil
}

// Delete removes a user record (admin only).
func (c *UsersClient) Delete(ctx context.Context, id string) error {
	if err := c.api.Delete(ctx, "/users/"+id, nil); err != nil {
		if statusIs(err, http.StatusNotFound) {
			return user.ErrNotFound
		}
		return errors.Wrapf(err, "delete user %s", id)
	}
	return nil
}
