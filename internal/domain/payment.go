package domain

import "time"

// Payment statuses keep the provider-era common code values: the display
// name lookup in common_codes is keyed by (code, group).
type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "020"
	PaymentStatusCancelled PaymentStatus = "030"

	PaymentStatusGroup = "300"
)

type ReservationStatus string

const (
	ReservationStatusReserved  ReservationStatus = "reserved"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

type SelectedQuote struct {
	ID         string            `json:"id"`
	QuoteID    string            `json:"quote_id"`
	CustomerID string            `json:"customer_id"`
	Status     ReservationStatus `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

type Payment struct {
	ID              string        `json:"id"`
	PaymentKey      string        `json:"payment_key"`
	OrderID         string        `json:"order_id"`
	Amount          int64         `json:"amount"`
	Method          string        `json:"method"`
	Status          PaymentStatus `json:"status"`
	ApprovedAt      time.Time     `json:"approved_at"`
	CancelReason    *string       `json:"cancel_reason,omitempty"`
	PaymentTitle    string        `json:"payment_title"`
	SelectedQuoteID string        `json:"selected_quote_id"`
	IsDeleted       bool          `json:"is_deleted"`
	DeletedAt       *time.Time    `json:"deleted_at,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// ConfirmPaymentInput identifies the quote being paid for, the requesting
// customer and the provider-side payment handle.
type ConfirmPaymentInput struct {
	QuoteID    string
	CustomerID string
	PaymentKey string
	OrderID    string
	Amount     int64
}

// PaymentReceipt is the confirmation/detail result. Status carries the
// human-readable name resolved from common_codes, not the raw code.
type PaymentReceipt struct {
	PaymentKey      string    `json:"payment_key"`
	OrderID         string    `json:"order_id"`
	Status          string    `json:"status"`
	Method          string    `json:"method"`
	ApprovedAt      time.Time `json:"approved_at"`
	Amount          int64     `json:"amount"`
	SelectedQuoteID string    `json:"selected_quote_id"`
	PaymentTitle    string    `json:"payment_title"`
	CancelReason    *string   `json:"cancel_reason,omitempty"`
	Message         string    `json:"message"`
}

type CancelReceipt struct {
	PaymentKey      string `json:"payment_key"`
	Status          string `json:"status"`
	Method          string `json:"method"`
	CancelReason    string `json:"cancel_reason"`
	SelectedQuoteID string `json:"selected_quote_id"`
	Message         string `json:"message"`
}

// CreateReservationParams carries everything the reservation transaction
// persists: the new selected quote, the quote/request status transitions
// and the payment row.
type CreateReservationParams struct {
	QuoteID      string
	RequestID    string
	CustomerID   string
	PaymentKey   string
	OrderID      string
	Amount       int64
	Method       string
	ApprovedAt   time.Time
	PaymentTitle string
	// CloseRequest is set for open-call requests only; a targeted request
	// is left untouched.
	CloseRequest bool
}

// CancelledReservation is the projection returned by the cancellation
// transaction, carrying what the response and the cancel event need.
type CancelledReservation struct {
	PaymentKey      string
	Method          string
	SelectedQuoteID string
	Cost            int64
	DogName         string
	CustomerUserID  string
	CustomerName    string
	CustomerChatID  *int64
	GroomerUserID   string
	GroomerNickname string
	GroomerChatID   *int64
}
