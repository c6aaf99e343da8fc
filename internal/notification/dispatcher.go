package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/soyj0/GroomPay/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type notificationSaver interface {
	Save(ctx context.Context, n *domain.Notification) error
}

type pushSender interface {
	Push(ctx context.Context, chatID *int64, text string)
}

// Dispatcher turns reservation events into persisted notification rows, one
// per counterparty, off the caller's execution path. Events are published
// only after the owning transaction has committed, so a consumed event is
// always safe to act on. Delivery is at-least-once per recipient: there is
// no atomicity across the two rows of one event.
type Dispatcher struct {
	repo   notificationSaver
	push   pushSender
	queue  chan any
	logger logger.Logger
}

func NewDispatcher(repo notificationSaver, push pushSender, queueSize int, logger logger.Logger) *Dispatcher {
	return &Dispatcher{
		repo:   repo,
		push:   push,
		queue:  make(chan any, queueSize),
		logger: logger,
	}
}

func (d *Dispatcher) ReservationConfirmed(event domain.ReservationConfirmedEvent) {
	d.queue <- event
}

func (d *Dispatcher) ReservationCancelled(event domain.ReservationCancelledEvent) {
	d.queue <- event
}

func (d *Dispatcher) Start(ctx context.Context) {
	d.logger.Info("notification dispatcher started")

	for {
		select {
		case <-ctx.Done():
			d.drain()
			d.logger.Info("notification dispatcher stopped")
			return
		case event := <-d.queue:
			d.handle(ctx, event)
		}
	}
}

// drain flushes events accepted before shutdown; their transactions have
// already committed.
func (d *Dispatcher) drain() {
	for {
		select {
		case event := <-d.queue:
			d.handle(context.Background(), event)
		default:
			return
		}
	}
}

func (d *Dispatcher) handle(ctx context.Context, event any) {
	switch ev := event.(type) {
	case domain.ReservationConfirmedEvent:
		d.handleConfirmed(ctx, ev)
	case domain.ReservationCancelledEvent:
		d.handleCancelled(ctx, ev)
	default:
		d.logger.Error("unknown notification event",
			logger.Any("event", event),
		)
	}
}

func (d *Dispatcher) handleConfirmed(ctx context.Context, ev domain.ReservationConfirmedEvent) {
	customerMessage := fmt.Sprintf(
		"예약이 완료되었습니다. 미용사: %s, 강아지: %s, 비용: %d원, 미용 날짜: %s",
		ev.GroomerNickname, ev.DogName, ev.Amount, ev.BeautyDate,
	)
	groomerMessage := fmt.Sprintf(
		"예약이 완료되었습니다. 고객: %s, 강아지: %s, 비용: %d원, 미용 날짜: %s",
		ev.CustomerName, ev.DogName, ev.Amount, ev.BeautyDate,
	)

	d.deliver(ctx, ev.CustomerUserID, domain.RoleCustomer, domain.NotificationTypeReservation, customerMessage, ev.CustomerChatID)
	d.deliver(ctx, ev.GroomerUserID, domain.RoleGroomer, domain.NotificationTypeReservation, groomerMessage, ev.GroomerChatID)
}

func (d *Dispatcher) handleCancelled(ctx context.Context, ev domain.ReservationCancelledEvent) {
	customerMessage := fmt.Sprintf(
		"예약이 취소되었습니다. 미용사: %s, 강아지: %s, 취소 비용: %d원, 취소 사유: %s",
		ev.GroomerNickname, ev.DogName, ev.Cost, ev.CancelReason,
	)
	groomerMessage := fmt.Sprintf(
		"예약이 취소되었습니다. 고객: %s, 강아지: %s, 취소 비용: %d원, 취소 사유: %s",
		ev.CustomerName, ev.DogName, ev.Cost, ev.CancelReason,
	)

	d.deliver(ctx, ev.CustomerUserID, domain.RoleCustomer, domain.NotificationTypeCancellation, customerMessage, ev.CustomerChatID)
	d.deliver(ctx, ev.GroomerUserID, domain.RoleGroomer, domain.NotificationTypeCancellation, groomerMessage, ev.GroomerChatID)
}

// deliver persists one recipient's row; a failure is logged and does not
// stop the other recipient's delivery.
func (d *Dispatcher) deliver(ctx context.Context, userID string, role domain.RecipientRole, notifyType domain.NotificationType, message string, chatID *int64) {
	n := &domain.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Role:      role,
		Type:      notifyType,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	if err := d.repo.Save(ctx, n); err != nil {
		d.logger.Error("failed to save notification",
			logger.String("user_id", userID),
			logger.String("role", string(role)),
			logger.String("error", err.Error()),
		)
		return
	}

	if d.push != nil {
		d.push.Push(ctx, chatID, message)
	}
}
