package ports

import "context"

type ShopRepo interface {
	GetShopName(ctx context.Context, groomerID string) (string, error)
}
