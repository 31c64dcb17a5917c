package equipment

import "context"

type Repository interface {
	Create(ctx context.Context, e Equipment) (*Equipment, error)
	GetByID(ctx context.Context, id int) (*Equipment, error)
	GetAll(ctx context.Context) ([]Equipment, error)
	Update(ctx context.Context, e Equipment) error
	Delete(ctx context.Context, id int) error
	Exists(ctx context.Context, id int) (bool, error)
	Count(ctx context.Context) (int64, error)
	SumUnits(ctx context.Context) (int64, error)
}
