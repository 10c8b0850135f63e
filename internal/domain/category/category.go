// Package category holds the catalog taxonomy types. A category with a nil
// parent reference is top-level; parent references are resolved (and cycle
// checked) by the remote service, not here.
package category

import (
	"context"
	"time"

	"github.com/go-faster/errors"
)

// ErrNotFound is returned when a requested category does not exist.
var ErrNotFound = errors.New("category not found")

// Category represents one node of the catalog taxonomy.
type Category struct {
	ID               string    `json:"_id"`
	Name             string    `json:"name"`
	ParentCategoryID *string   `json:"parentCategoryId"`
	Description      string    `json:"description,omitempty"`
	Image            string    `json:"image,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// IsTopLevel reports whether the category has no parent.
func (c Category) IsTopLevel() bool {
	return c.ParentCategoryID == nil
}

// CreateRequest holds the fields for creating a category.
type CreateRequest struct {
	Name             string  `json:"name"`
	ParentCategoryID *string `json:"parentCategoryId"`
	Description      string  `json:"description,omitempty"`
	Image            string  `json:"image,omitempty"`
}

// UpdateRequest holds a partial category update.
type UpdateRequest struct {
	Name             *string `json:"name,omitempty"`
	ParentCategoryID *string `json:"parentCategoryId,omitempty"`
	Description      *string `json:"description,omitempty"`
	Image            *string `json:"image,omitempty"`
}

// Directory defines the remote category operations.
type Directory interface {
	List(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, id string) (*Category, error)
	Create(ctx context.Context, req CreateRequest) (*Category, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Category, error)
	Delete(ctx context.Context, id string) error
}
