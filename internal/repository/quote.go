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

type QuoteRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewQuoteRepo(db *dbpg.DB) *QuoteRepository {
	return &QuoteRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// GetPaymentView resolves everything the payment workflow needs about a
// quote in one query: counterparty identities, dog name, cost, request type.
func (r *QuoteRepository) GetPaymentView(ctx context.Context, quoteID string) (*domain.QuotePaymentView, error) {
	query := `SELECT q.id, q.request_id, qr.request_type, q.status, q.cost, q.beauty_date,
                     d.dog_name,
                     c.id, cu.id, cu.user_name, cu.telegram_chat_id,
                     g.id, gu.id, gu.nickname, gu.telegram_chat_id
              FROM quotes q
              JOIN quote_requests qr ON qr.id = q.request_id
              JOIN dogs d            ON d.id = q.dog_id
              JOIN customers c       ON c.id = d.customer_id
              JOIN users cu          ON cu.id = c.user_id
              JOIN groomers g        ON g.id = q.groomer_id
              JOIN users gu          ON gu.id = g.user_id
              WHERE q.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, quoteID)
	if err != nil {
		return nil, fmt.Errorf("get quote payment view: %w", err)
	}

	var v domain.QuotePaymentView
	if err = row.Scan(
		&v.QuoteID, &v.RequestID, &v.RequestType, &v.QuoteStatus, &v.Cost, &v.BeautyDate,
		&v.DogName,
		&v.CustomerID, &v.CustomerUserID, &v.CustomerName, &v.CustomerChatID,
		&v.GroomerID, &v.GroomerUserID, &v.GroomerNickname, &v.GroomerChatID,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrQuoteNotFound
		}
		return nil, fmt.Errorf("scan quote payment view: %w", err)
	}

	return &v, nil
}
