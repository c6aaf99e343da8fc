package service

import (
	"context"

	"github.com/soyj0/GroomPay/internal/domain"
	"github.com/soyj0/GroomPay/internal/service/ports"
)

type NotificationService struct {
	repo ports.NotificationRepo
}

func NewNotificationService(repo ports.NotificationRepo) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) ListByUser(ctx context.Context, userID string) ([]*domain.Notification, error) {
	return s.repo.ListByUser(ctx, userID)
}
