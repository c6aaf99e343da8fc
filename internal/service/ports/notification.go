package ports

import (
	"context"

	"github.com/soyj0/GroomPay/internal/domain"
)

type NotificationRepo interface {
	Save(ctx context.Context, n *domain.Notification) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Notification, error)
}
