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

type ShopRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewShopRepo(db *dbpg.DB) *ShopRepository {
	return &ShopRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ShopRepository) GetShopName(ctx context.Context, groomerID string) (string, error) {
	query := `SELECT shop_name FROM shops WHERE groomer_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, groomerID)
	if err != nil {
		return "", fmt.Errorf("get shop: %w", err)
	}

	var name string
	if err = row.Scan(&name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrShopNotFound
		}
		return "", fmt.Errorf("scan shop: %w", err)
	}

	return name, nil
}
