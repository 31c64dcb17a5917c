package equipment

import (
	"context"
	"database/sql"

	"gymadmin/internal/db"

	"github.com/jmoiron/sqlx"
)

const equipmentColumns = `id, name, category, quantity, status, description, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e Equipment) (*Equipment, error) {
	query := `
		INSERT INTO equipment (name, category, quantity, status, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + equipmentColumns

	var saved Equipment
	err := r.db.QueryRowxContext(ctx, query,
		e.Name, e.Category, e.Quantity, e.Status, e.Description,
	).StructScan(&saved)
	if err != nil {
		return nil, err
	}

	return &saved, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Equipment, error) {
	var e Equipment
	err := r.db.GetContext(ctx, &e, `SELECT `+equipmentColumns+` FROM equipment WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Equipment, error) {
	items := []Equipment{}
	err := r.db.SelectContext(ctx, &items, `SELECT `+equipmentColumns+` FROM equipment ORDER BY name`)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) Update(ctx context.Context, e Equipment) error {
	query := `
		UPDATE equipment
		SET name = $1, category = $2, quantity = $3, status = $4, description = $5
		WHERE id = $6`

	result, err := r.db.ExecContext(ctx, query,
		e.Name, e.Category, e.Quantity, e.Status, e.Description, e.ID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM equipment WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *repository) Exists(ctx context.Context, id int) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM equipment WHERE id = $1)`, id)
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM equipment`)
	return count, err
}

func (r *repository) SumUnits(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.GetContext(ctx, &total, `SELECT COALESCE(SUM(quantity), 0) FROM equipment`)
	return total, err
}
