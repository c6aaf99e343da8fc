package domain

import "time"

type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusAccepted QuoteStatus = "accepted"
)

type RequestType string

const (
	// RequestTypeAll is an open call answerable by any groomer.
	RequestTypeAll      RequestType = "all"
	RequestTypeTargeted RequestType = "targeted"
)

type RequestStatus string

const (
	RequestStatusOpen           RequestStatus = "open"
	RequestStatusDeadlineClosed RequestStatus = "deadline_closed"
)

type Quote struct {
	ID         string      `json:"id"`
	RequestID  string      `json:"request_id"`
	GroomerID  string      `json:"groomer_id"`
	DogID      string      `json:"dog_id"`
	Content    string      `json:"content"`
	Cost       int64       `json:"cost"`
	BeautyDate time.Time   `json:"beauty_date"`
	Status     QuoteStatus `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type QuoteRequest struct {
	ID         string        `json:"id"`
	DogID      string        `json:"dog_id"`
	Content    string        `json:"content"`
	BeautyDate time.Time     `json:"beauty_date"`
	Type       RequestType   `json:"request_type"`
	Status     RequestStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// QuotePaymentView is the flat projection the payment workflow runs on,
// resolved in one query instead of navigating entity chains.
type QuotePaymentView struct {
	QuoteID         string
	RequestID       string
	RequestType     RequestType
	QuoteStatus     QuoteStatus
	Cost            int64
	BeautyDate      time.Time
	DogName         string
	CustomerID      string
	CustomerUserID  string
	CustomerName    string
	CustomerChatID  *int64
	GroomerID       string
	GroomerUserID   string
	GroomerNickname string
	GroomerChatID   *int64
}
