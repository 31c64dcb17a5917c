package member

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, m Member) (*Member, error)
	GetByID(ctx context.Context, id int) (*Member, error)
	GetAll(ctx context.Context) ([]Member, error)
	Search(ctx context.Context, query string) ([]Member, error)
	FilterByBatch(ctx context.Context, batch string) ([]Member, error)
	Update(ctx context.Context, m Member) error
	Delete(ctx context.Context, id int) error
	Exists(ctx context.Context, id int) (bool, error)
	Count(ctx context.Context) (int64, error)
	CountByActive(ctx context.Context, active bool) (int64, error)
	ListActiveExpired(ctx context.Context, today time.Time) ([]Member, error)
}
