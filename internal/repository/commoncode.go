package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type CommonCodeRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCommonCodeRepo(db *dbpg.DB) *CommonCodeRepository {
	return &CommonCodeRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// FindName resolves the display name for a status code within a group.
func (r *CommonCodeRepository) FindName(ctx context.Context, code, groupCode string) (string, error) {
	query := `SELECT common_name FROM common_codes WHERE code = $1 AND group_code = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, code, groupCode)
	if err != nil {
		return "", fmt.Errorf("get common code: %w", err)
	}

	var name string
	if err = row.Scan(&name); err != nil {
		return "", fmt.Errorf("scan common code: %w", err)
	}

	return name, nil
}
