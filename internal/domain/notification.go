package domain

import "time"

type RecipientRole string

const (
	RoleCustomer RecipientRole = "customer"
	RoleGroomer  RecipientRole = "groomer"
)

type NotificationType string

const (
	NotificationTypeReservation  NotificationType = "예약 알림"
	NotificationTypeCancellation NotificationType = "예약 취소 알림"
)

// Notification is an append-only log row; rows are never mutated.
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Role      RecipientRole    `json:"role"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	CreatedAt time.Time        `json:"created_at"`
}

// ReservationConfirmedEvent is published after the confirmation transaction
// commits and is the sole trigger for reservation notifications.
type ReservationConfirmedEvent struct {
	CustomerUserID  string
	CustomerName    string
	CustomerChatID  *int64
	GroomerUserID   string
	GroomerNickname string
	GroomerChatID   *int64
	DogName         string
	Amount          int64
	BeautyDate      string
}

type ReservationCancelledEvent struct {
	CustomerUserID  string
	CustomerName    string
	CustomerChatID  *int64
	GroomerUserID   string
	GroomerNickname string
	GroomerChatID   *int64
	DogName         string
	Cost            int64
	CancelReason    string
}
