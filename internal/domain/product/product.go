package product

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a requested product does not exist.
var ErrNotFound = errors.New("product not found")

var hundred = decimal.NewFromInt(100)

// Product represents a catalog item available for purchase. Prices are
// decimal currency units; Discount is a percentage in [0,100].
type Product struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	SKU         string          `json:"SKU,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Discount    decimal.Decimal `json:"discount,omitempty"`
	Stock       int             `json:"stock"`
	Variants    []Variant       `json:"variants"`
	CategoryID  string          `json:"categoryId"`
	Images      []string        `json:"images"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Variant describes one purchasable variation of a product. All fields are
// optional; an empty string means the attribute does not apply.
type Variant struct {
	ID       string `json:"_id,omitempty"`
	Color    string `json:"color,omitempty"`
	Size     string `json:"size,omitempty"`
	Material string `json:"material,omitempty"`
}

// EffectivePrice returns the price after applying the discount percentage:
// price * (1 - discount/100). It is always derived, never stored. A zero
// discount yields the list price exactly.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.Discount.IsZero() {
		return p.Price
	}
	return p.Price.Sub(p.Price.Mul(p.Discount).Div(hundred))
}

// InStock reports whether the product has at least one unit available.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// CreateRequest holds the fields for creating a catalog product.
type CreateRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	SKU         string          `json:"SKU,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Discount    decimal.Decimal `json:"discount,omitempty"`
	Stock       int             `json:"stock"`
	Variants    []Variant       `json:"variants,omitempty"`
	CategoryID  string          `json:"categoryId"`
	Images      []string        `json:"images,omitempty"`
}

// UpdateRequest holds a partial product update. Nil fields are left unchanged
// by the remote service.
type UpdateRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	SKU         *string          `json:"SKU,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Discount    *decimal.Decimal `json:"discount,omitempty"`
	Stock       *int             `json:"stock,omitempty"`
	Variants    []Variant        `json:"variants,omitempty"`
	CategoryID  *string          `json:"categoryId,omitempty"`
	Images      []string         `json:"images,omitempty"`
}

// ListQuery holds the server-side listing parameters. The remote service
// interprets them; client-side refinement goes through Search.
type ListQuery struct {
	CategoryID string
	SearchTerm string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	InStock    *bool
	SortBy     string
	Page       int
	Limit      int
}

// ListResult is the canonical shape of a product listing after response
// normalization at the service boundary.
type ListResult struct {
	Products   []Product
	Total      int
	Page       int
	TotalPages int
}

// Catalog defines the remote product catalog operations.
type Catalog interface {
	List(ctx context.Context, q ListQuery) (*ListResult, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	Create(ctx context.Context, req CreateRequest) (*Product, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Product, error)
	Delete(ctx context.Context, id string) error
}
