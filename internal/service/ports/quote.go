package ports

import (
	"context"

	"github.com/soyj0/GroomPay/internal/domain"
)

type QuoteRepo interface {
	GetPaymentView(ctx context.Context, quoteID string) (*domain.QuotePaymentView, error)
}
