package dto

type ConfirmPaymentRequest struct {
	QuoteID    string `json:"quote_id" binding:"required,uuid"`
	CustomerID string `json:"customer_id" binding:"required,uuid"`
	PaymentKey string `json:"payment_key" binding:"required"`
	OrderID    string `json:"order_id" binding:"required"`
	Amount     int64  `json:"amount" binding:"required,gt=0"`
}

type CancelPaymentRequest struct {
	CancelReason string `json:"cancel_reason" binding:"required"`
}
