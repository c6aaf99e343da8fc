package ports

import (
	"context"
	"time"

	"github.com/soyj0/GroomPay/internal/domain"
)

type PaymentRepo interface {
	GetByPaymentKey(ctx context.Context, paymentKey string) (*domain.Payment, error)
	MarkDeleted(ctx context.Context, paymentKey string) error
	DeleteExpired(ctx context.Context, deletedBefore time.Time) (int64, error)
}
