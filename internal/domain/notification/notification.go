package notification

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-faster/errors"
)

// ErrUnauthenticated is returned by notification operations attempted without
// a signed-in user. No network call is made in that case.
var ErrUnauthenticated = errors.New("authentication required")

// Type tags a notification for presentation purposes.
type Type string

const (
	TypeInfo      Type = "info"
	TypeSuccess   Type = "success"
	TypeWarning   Type = "warning"
	TypeError     Type = "error"
	TypeOrder     Type = "order"
	TypePayment   Type = "payment"
	TypePromotion Type = "promotion"
)

// Notification is one message addressed to a user.
type Notification struct {
	ID        string          `json:"_id"`
	UserID    string          `json:"userId"`
	Title     string          `json:"title"`
	Message   string          `json:"message"`
	Type      Type            `json:"type"`
	IsRead    bool            `json:"isRead"`
	Data      json.RawMessage `json:"data,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// CreateRequest is the payload for publishing a notification to a user.
type CreateRequest struct {
	UserID  string          `json:"userId"`
	Title   string          `json:"title"`
	Message string          `json:"message"`
	Type    Type            `json:"type"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Service defines the remote notification operations.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Notification, error)
	ListByUser(ctx context.Context, userID string) ([]Notification, error)
	MarkAsRead(ctx context.Context, id string) (*Notification, error)
	Delete(ctx context.Context, id string) error
}
