package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-faster/errors"

	"github.com/velora-jewels/storefront-go/internal/domain/product"
	"github.com/velora-jewels/storefront-go/internal/gateway"
)

var _ product.Catalog = (*ProductsClient)(nil)

// ProductsClient talks to the product service.
type ProductsClient struct {
	api *gateway.Client
}

// NewProductsClient returns a ProductsClient using the given gateway.
func NewProductsClient(api *gateway.Client) *ProductsClient {
	return &ProductsClient{api: api}
}

// List fetches a product listing. The response is normalized: the service
// historically returns either a bare array or a wrapped object.
func (c *ProductsClient) List(ctx context.Context, q product.ListQuery) (*product.ListResult, error) {
	query := url.Values{}
	if q.CategoryID != "" {
		query.Set("categoryId", q.CategoryID)
	}
	if q.SearchTerm != "" {
		query.Set("search", q.SearchTerm)
	}
	if q.MinPrice != nil {
		query.Set("minPrice", q.MinPrice.String())
	}
	if q.MaxPrice != nil {
		query.Set("maxPrice", q.MaxPrice.String())
	}
	if q.InStock != nil {
		query.Set("inStock", strconv.FormatBool(*q.InStock))
	}
	if q.SortBy != "" {
		query.Set("sortBy", q.SortBy)
	}
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		query.Set("limit", strconv.Itoa(q.Limit))
	}

	var raw json.RawMessage
	if err := c.api.Get(ctx, "/products", query, &raw); err != nil {
		return nil, errors.Wrap(err, "list products")
	}

	items, page, err := normalizeList[product.Product](raw, "products")
	if err != nil {
		return nil, errors.Wrap(err, "normalize products")
	}

	return &product.ListResult{
		Products:   items,
		Total:      page.total,
		Page:       page.page,
		TotalPages: page.totalPages,
	}, nil
}

// GetByID fetches one product. A 404 maps to product.ErrNotFound.
func (c *ProductsClient) GetByID(ctx context.Context, id string) (*product.Product, error) {
	var p product.Product
	if err := c.api.Get(ctx, "/products/"+id, nil, &p); err != nil {
		if statusIs(err, http.StatusNotFound) {
			return nil, product.ErrNotFound
		}
		return nil, errors.Wrapf(err, "get product %s", id)
	}
	return &p, nil
}

// Create adds a product to the catalog (admin only).
func (c *ProductsClient) Create(ctx context.Context, req product.CreateRequest) (*product.Product, error) {
	var p product.Product
	if err := c.api.Post(ctx, "/products", req, &p); err != nil {
		return nil, errors.Wrap(err, "create product")
	}
	return &p, nil
}

// Update applies a partial product update (admin only).
func (c *ProductsClient) Update(ctx context.Context, id string, req product.UpdateRequest) (*product.Product, error) {
	var p product.Product
	if err := c.api.Put(ctx, "/products/"+id, req, &p); err != nil {
		if statusIs(err, http.StatusNotFound) {
			return nil, product.ErrNotFound
		}
		return nil, errors.Wrapf(err, "update product %s", id)
	}
	return &p, nil
}

// Delete removes a product from the catalog (admin only).
func (c *ProductsClient) Delete(ctx context.Context, id string) error {
	if err := c.api.Delete(ctx, "/products/"+id, nil); err != nil {
		if statusIs(err, http.StatusNotFound) {
			return product.ErrNotFound
		}
		return errors.Wrapf(err, "delete product %s", id)
	}
	return nil
}
