package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/soyj0/GroomPay/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ReservationRepository) ExistsByQuote(ctx context.Context, quoteID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM selected_quotes WHERE quote_id = $1)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, quoteID)
	if err != nil {
		return false, fmt.Errorf("check reservation: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan reservation check: %w", err)
	}

	return exists, nil
}

// CreateReservation performs the whole confirmation state transition in one
// transaction: selected quote, quote status, request deadline (open calls
// only) and the payment row. Two concurrent confirmations cannot both
// succeed: the unique keys on selected_quotes.quote_id and
// payments.selected_quote_id decide the winner.
func (r *ReservationRepository) CreateReservation(ctx context.Context, p domain.CreateReservationParams) (string, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	selectedQuoteID := uuid.New().String()

	insertQuote := `INSERT INTO selected_quotes (id, quote_id, customer_id, status, created_at, updated_at)
                    VALUES ($1, $2, $3, $4, $5, $5)`
	if _, err = tx.ExecContext(
		ctx, insertQuote, selectedQuoteID, p.QuoteID,
		p.CustomerID, domain.ReservationStatusReserved, now,
	); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return "", domain.ErrAlreadyReserved
		}
		return "", fmt.Errorf("insert selected quote: %w", err)
	}

	acceptQuote := `UPDATE quotes SET status = $2, updated_at = $3 WHERE id = $1`
	if _, err = tx.ExecContext(ctx, acceptQuote, p.QuoteID, domain.QuoteStatusAccepted, now); err != nil {
		return "", fmt.Errorf("accept quote: %w", err)
	}

	if p.CloseRequest {
		closeRequest := `UPDATE quote_requests SET status = $2, updated_at = $3 WHERE id = $1`
		if _, err = tx.ExecContext(ctx, closeRequest, p.RequestID, domain.RequestStatusDeadlineClosed, now); err != nil {
			return "", fmt.Errorf("close quote request: %w", err)
		}
	}

	insertPayment := `INSERT INTO payments (id, payment_key, order_id, amount, method, status,
                                            approved_at, payment_title, selected_quote_id, created_at, updated_at)
                      VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)`
	if _, err = tx.ExecContext(
		ctx, insertPayment, uuid.New().String(), p.PaymentKey, p.OrderID, p.Amount,
		p.Method, domain.PaymentStatusCompleted, p.ApprovedAt, p.PaymentTitle, selectedQuoteID, now,
	); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return "", domain.ErrAlreadyPaid
		}
		return "", fmt.Errorf("insert payment: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("commit reservation: %w", err)
	}

	return selectedQuoteID, nil
}

// CancelReservation flips the payment and its reservation to cancelled
// atomically and returns the projection the cancel event is built from.
// A missing payment aborts before any write.
func (r *ReservationRepository) CancelReservation(ctx context.Context, paymentKey, cancelReason string) (*domain.CancelledReservation, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `SELECT id, method, selected_quote_id FROM payments
                  WHERE payment_key = $1 AND NOT is_deleted
                  FOR UPDATE`
	var paymentID, method, selectedQuoteID string
	if err = tx.QueryRowContext(ctx, lockQuery, paymentKey).Scan(&paymentID, &method, &selectedQuoteID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}

	now := time.Now().UTC()

	cancelPayment := `UPDATE payments SET status = $2, cancel_reason = $3, updated_at = $4 WHERE id = $1`
	if _, err = tx.ExecContext(ctx, cancelPayment, paymentID, domain.PaymentStatusCancelled, cancelReason, now); err != nil {
		return nil, fmt.Errorf("cancel payment: %w", err)
	}

	cancelQuote := `UPDATE selected_quotes SET status = $2, updated_at = $3 WHERE id = $1`
	if _, err = tx.ExecContext(ctx, cancelQuote, selectedQuoteID, domain.ReservationStatusCancelled, now); err != nil {
		return nil, fmt.Errorf("cancel selected quote: %w", err)
	}

	viewQuery := `SELECT q.cost, d.dog_name,
                         cu.id, cu.user_name, cu.telegram_chat_id,
                         gu.id, gu.nickname, gu.telegram_chat_id
                  FROM selected_quotes sq
                  JOIN quotes q    ON q.id = sq.quote_id
                  JOIN dogs d      ON d.id = q.dog_id
                  JOIN customers c ON c.id = sq.customer_id
                  JOIN users cu    ON cu.id = c.user_id
                  JOIN groomers g  ON g.id = q.groomer_id
                  JOIN users gu    ON gu.id = g.user_id
                  WHERE sq.id = $1`

	res := domain.CancelledReservation{
		PaymentKey:      paymentKey,
		Method:          method,
		SelectedQuoteID: selectedQuoteID,
	}
	if err = tx.QueryRowContext(ctx, viewQuery, selectedQuoteID).Scan(
		&res.Cost, &res.DogName,
		&res.CustomerUserID, &res.CustomerName, &res.CustomerChatID,
		&res.GroomerUserID, &res.GroomerNickname, &res.GroomerChatID,
	); err != nil {
		return nil, fmt.Errorf("get cancelled reservation view: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit cancellation: %w", err)
	}

	return &res, nil
}
