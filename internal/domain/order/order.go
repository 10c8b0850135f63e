package order

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/velora-jewels/storefront-go/internal/domain/product"
)

// ErrNotFound is returned when a requested order does not exist.
var ErrNotFound = errors.New("order not found")

// Status enumerates the order lifecycle. Orders progress pending through
// delivered, or move to cancelled at any point before delivery.
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// Cancellable reports whether an order in this status may still be cancelled.
func (s Status) Cancellable() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusProcessing, StatusShipped:
		return true
	default:
		return false
	}
}

// PaymentStatus mirrors the payment state the order service tracks alongside
// the order itself.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// Item is one order line, frozen at checkout time: name, image, price, and
// variant are copied from the product so later catalog edits cannot change a
// placed order.
type Item struct {
	ProductID       string           `json:"productId"`
	ProductName     string           `json:"productName"`
	ProductImage    string           `json:"productImage"`
	Quantity        int              `json:"quantity"`
	Price           decimal.Decimal  `json:"price"`
	SelectedVariant *product.Variant `json:"selectedVariant,omitempty"`
}

// ShippingAddress is the destination captured with the order.
type ShippingAddress struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
	Phone     string `json:"phone,omitempty"`
}

// Order is a placed order with computed totals and frozen item details.
type Order struct {
	ID              string           `json:"_id"`
	UserID          string           `json:"userId"`
	OrderNumber     string           `json:"orderNumber"`
	Items           []Item           `json:"items"`
	ShippingAddress ShippingAddress  `json:"shippingAddress"`
	BillingAddress  *ShippingAddress `json:"billingAddress,omitempty"`
	Subtotal        decimal.Decimal  `json:"subtotal"`
	ShippingCost    decimal.Decimal  `json:"shippingCost"`
	Tax             decimal.Decimal  `json:"tax"`
	Total           decimal.Decimal  `json:"total"`
	Status          Status           `json:"status"`
	PaymentStatus   PaymentStatus    `json:"paymentStatus"`
	PaymentMethod   string           `json:"paymentMethod"`
	Notes           string           `json:"notes,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// CreateRequest is the checkout payload. The remote service recomputes and
// persists the authoritative totals.
type CreateRequest struct {
	Items           []Item           `json:"items"`
	ShippingAddress ShippingAddress  `json:"shippingAddress"`
	BillingAddress  *ShippingAddress `json:"billingAddress,omitempty"`
	PaymentMethod   string           `json:"paymentMethod"`
	Notes           string           `json:"notes,omitempty"`
}

// ListQuery holds the server-side order listing parameters.
type ListQuery struct {
	UserID string
	Status Status
	Page   int
	Limit  int
}

// ListResult is the canonical shape of an order listing.
type ListResult struct {
	Orders     []Order
	Total      int
	Page       int
	TotalPages int
}

// Service defines the remote order operations.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Order, error)
	List(ctx context.Context, q ListQuery) (*ListResult, error)
	GetByID(ctx context.Context, id string) (*Order, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Order, error)
	Delete(ctx context.Context, id string) error
}
