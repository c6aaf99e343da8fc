package dto

import (
	"time"

	"github.com/soyj0/GroomPay/internal/domain"
)

type PaymentResponse struct {
	PaymentKey      string  `json:"payment_key"`
	OrderID         string  `json:"order_id"`
	Status          string  `json:"status"`
	Method          string  `json:"method"`
	ApprovedAt      string  `json:"approved_at"`
	Amount          int64   `json:"amount"`
	SelectedQuoteID string  `json:"selected_quote_id"`
	PaymentTitle    string  `json:"payment_title"`
	CancelReason    *string `json:"cancel_reason,omitempty"`
	Message         string  `json:"message"`
}

type CancelResponse struct {
	PaymentKey      string `json:"payment_key"`
	Status          string `json:"status"`
	Method          string `json:"method"`
	CancelReason    string `json:"cancel_reason"`
	SelectedQuoteID string `json:"selected_quote_id"`
	Message         string `json:"message"`
}

type NotificationResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToPaymentResponse(r *domain.PaymentReceipt) PaymentResponse {
	return PaymentResponse{
		PaymentKey:      r.PaymentKey,
		OrderID:         r.OrderID,
		Status:          r.Status,
		Method:          r.Method,
		ApprovedAt:      r.ApprovedAt.Format(time.RFC3339),
		Amount:          r.Amount,
		SelectedQuoteID: r.SelectedQuoteID,
		PaymentTitle:    r.PaymentTitle,
		CancelReason:    r.CancelReason,
		Message:         r.Message,
	}
}

func ToCancelResponse(r *domain.CancelReceipt) CancelResponse {
	return CancelResponse{
		PaymentKey:      r.PaymentKey,
		Status:          r.Status,
		Method:          r.Method,
		CancelReason:    r.CancelReason,
		SelectedQuoteID: r.SelectedQuoteID,
		Message:         r.Message,
	}
}

func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		Role:      string(n.Role),
		Type:      string(n.Type),
		Message:   n.Message,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
}
