package ports

import (
	"context"

	"github.com/soyj0/GroomPay/internal/domain"
)

type ReservationRepo interface {
	// ExistsByQuote is a pre-check only; the unique keys inside
	// CreateReservation are the actual duplicate guard.
	ExistsByQuote(ctx context.Context, quoteID string) (bool, error)
	CreateReservation(ctx context.Context, params domain.CreateReservationParams) (string, error)
	CancelReservation(ctx context.Context, paymentKey, cancelReason string) (*domain.CancelledReservation, error)
}
