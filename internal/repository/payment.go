package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/soyj0/GroomPay/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type PaymentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPaymentRepo(db *dbpg.DB) *PaymentRepository {
	return &PaymentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *PaymentRepository) GetByPaymentKey(ctx context.Context, paymentKey string) (*domain.Payment, error) {
	query := `SELECT id, payment_key, order_id, amount, method, status, approved_at,
                     cancel_reason, payment_title, selected_quote_id, is_deleted, deleted_at,
                     created_at, updated_at
              FROM payments
              WHERE payment_key = $1 AND NOT is_deleted`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, paymentKey)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	var p domain.Payment
	if err = row.Scan(
		&p.ID, &p.PaymentKey, &p.OrderID, &p.Amount, &p.Method, &p.Status, &p.ApprovedAt,
		&p.CancelReason, &p.PaymentTitle, &p.SelectedQuoteID, &p.IsDeleted, &p.DeletedAt,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}

	return &p, nil
}

// MarkDeleted flags the row; the scheduler purges it after the retention
// window.
func (r *PaymentRepository) MarkDeleted(ctx context.Context, paymentKey string) error {
	query := `UPDATE payments
              SET is_deleted = TRUE, deleted_at = now(), updated_at = now()
              WHERE payment_key = $1 AND NOT is_deleted`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, paymentKey)
	if err != nil {
		return fmt.Errorf("mark payment deleted: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("payment rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrPaymentNotFound
	}

	return nil
}

// DeleteExpired physically removes rows that are both logically deleted and
// untouched since before the cutoff.
func (r *PaymentRepository) DeleteExpired(ctx context.Context, deletedBefore time.Time) (int64, error) {
	query := `DELETE FROM payments
              WHERE is_deleted AND updated_at < $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, deletedBefore)
	if err != nil {
		return 0, fmt.Errorf("delete expired payments: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("expired rows affected: %w", err)
	}

	return rows, nil
}
