package ports

import "context"

type PaymentGateway interface {
	Confirm(ctx context.Context, paymentKey, orderID string, amount int64) (map[string]any, error)
	Cancel(ctx context.Context, paymentKey, cancelReason string) (map[string]any, error)
}
