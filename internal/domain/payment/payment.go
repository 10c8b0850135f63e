package payment

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a requested payment does not exist.
var ErrNotFound = errors.New("payment not found")

// Method enumerates the accepted payment instruments.
type Method string

const (
	MethodCreditCard     Method = "credit_card"
	MethodDebitCard      Method = "debit_card"
	MethodPayPal         Method = "paypal"
	MethodStripe         Method = "stripe"
	MethodBankTransfer   Method = "bank_transfer"
	MethodCashOnDelivery Method = "cash_on_delivery"
)

// Status enumerates the payment lifecycle: pending through completed, or
// failed/cancelled/refunded.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
	StatusRefunded   Status = "refunded"
)

// Payment is the record associated 1:1 with an order.
type Payment struct {
	ID            string          `json:"_id"`
	OrderID       string          `json:"orderId"`
	UserID        string          `json:"userId"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Method        Method          `json:"paymentMethod"`
	Status        Status          `json:"status"`
	TransactionID string          `json:"transactionId,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// CardDetails carries card fields for card-based methods. Left zero for
// paypal and cash-on-delivery.
type CardDetails struct {
	CardNumber     string `json:"cardNumber,omitempty"`
	ExpiryDate     string `json:"expiryDate,omitempty"`
	CVV            string `json:"cvv,omitempty"`
	CardholderName string `json:"cardholderName,omitempty"`
}

// CreateRequest is the payload for recording a payment against an order.
type CreateRequest struct {
	OrderID string          `json:"orderId"`
	Amount  decimal.Decimal `json:"amount"`
	Method  Method          `json:"paymentMethod"`
	Details CardDetails     `json:"paymentDetails"`
}

// UpdateStatusRequest moves a payment to a new status, optionally attaching
// the gateway transaction reference.
type UpdateStatusRequest struct {
	Status        Status `json:"status"`
	TransactionID string `json:"transactionId,omitempty"`
}

// ListQuery holds the server-side payment listing parameters.
type ListQuery struct {
	UserID  string
	OrderID string
	Status  Status
	Page    int
	Limit   int
}

// ListResult is the canonical shape of a payment listing.
type ListResult struct {
	Payments   []Payment
	Total      int
	Page       int
	TotalPages int
}

// Service defines the remote payment operations.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Payment, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (*Payment, error)
	List(ctx context.Context, q ListQuery) (*ListResult, error)
	GetByID(ctx context.Context, id string) (*Payment, error)
}
