package ports

import "context"

type CommonCodeRepo interface {
	FindName(ctx context.Context, code, groupCode string) (string, error)
}
