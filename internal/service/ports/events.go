package ports

import "github.com/soyj0/GroomPay/internal/domain"

// ReservationEvents is the post-commit handoff to the notification
// dispatcher. Publishing must not run inside the payment transaction.
type ReservationEvents interface {
	ReservationConfirmed(event domain.ReservationConfirmedEvent)
	ReservationCancelled(event domain.ReservationCancelledEvent)
}
