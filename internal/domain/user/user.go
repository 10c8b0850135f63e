package user

import (
	"context"
	"time"

	"github.com/go-faster/errors"
)

// ErrNotFound is returned when a requested user does not exist.
var ErrNotFound = errors.New("user not found")

// User is a customer identity as returned by the auth and user services.
type User struct {
	ID        string    `json:"_id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateRequest holds the fields for creating a user record.
type CreateRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role,omitempty"`
}

// UpdateRequest holds a partial user update.
type UpdateRequest struct {
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Role      *string `json:"role,omitempty"`
}

// ListQuery holds the server-side user listing parameters.
type ListQuery struct {
	Search string
	Page   int
	Limit  int
}

// ListResult is the canonical shape of a user listing.
type ListResult struct {
	Users      []User
	Total      int
	Page       int
	TotalPages int
}

// Directory defines the remote user operations.
type Directory interface {
	Create(ctx context.Context, req CreateRequest) (*User, error)
	List(ctx context.Context, q ListQuery) (*ListResult, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*User, error)
	Delete(ctx context.Context, id string) error
}
