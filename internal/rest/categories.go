package rest

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-faster/errors"

	"github.com/velora-jewels/storefront-go/internal/domain/category"
	"github.com/velora-jewels/storefront-go/internal/gateway"
)

var _ category.Directory = (*CategoriesClient)(nil)

// CategoriesClient talks to the category service.
type CategoriesClient struct {
	api *gateway.Client
}

// NewCategoriesClient returns a CategoriesClient using the given gateway.
func NewCategoriesClient(api *gateway.Client) *CategoriesClient {
	return &CategoriesClient{api: api}
}

// List fetches all categories, normalizing bare-array and wrapped responses.
func (c *CategoriesClient) List(ctx context.Context) ([]category.Category, error) {
	var raw json.RawMessage
	if err := c.api.Get(ctx, "/categories", nil, &raw); err != nil {
		return nil, errors.Wrap(err, "list categories")
	}
	items, _, err := normalizeList[category.Category](raw, "categories")
	if err != nil {
		return nil, errors.Wrap(err, "normalize categories")
	}
	return items, nil
}

// GetByID fetches one category. A 404 maps to category.ErrNotFound.
func (c *CategoriesClient) GetByID(ctx context.Context, id string) (*category.Category, error) {
	var cat category.Category
	if err := c.api.Get(ctx, "/categories/"+id, nil, &cat); err != nil {
		if statusIs(err, http.StatusNotFound) {
			return nil, category.ErrNotFound
		}
		return nil, errors.Wrapf(err, "get category %s", id)
	}
	return &cat, nil
}

// Create adds a category (admin only).
func (c *CategoriesClient) Create(ctx context.Context, req category.CreateRequest) (*category.Category, error) {
	var cat category.Category
	if err := c.api.Post(ctx, "/categories", req, &cat); err != nil {
		return nil, errors.Wrap(err, "create category")
	}
	return &cat, nil
}

// Update applies a partial category update (admin only).
func (c *CategoriesClient) Update(ctx context.Context, id string, req category.UpdateRequest) (*category.Category, error) {
	var cat category.Category
	if err := c.api.Put(ctx, "/categories/"+id, req, &cat); err != nil {
		if statusIs(err, http.StatusNotFound) {
			return nil, category.ErrNotFound
		}
		return nil, errors.Wrapf(err, "update category %s", id)
	}
	return &cat, nil
}

// Delete removes a category (admin only).
func (c *CategoriesClient) Delete(ctx context.Context, id string) error {
	if err := c.api.Delete(ctx, "/categories/"+id, nil); err != nil {
		if statusIs(err, http.StatusNotFound) {
			return category.ErrNotFound
		}
		return errors.Wrapf(err, "delete category %s", id)
	}
	return nil
}
