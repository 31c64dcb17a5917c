package member

import (
	"context"
	"database/sql"
	"time"

	"gymadmin/internal/db"

	"github.com/jmoiron/sqlx"
)

const memberColumns = `id, name, phone, email, plan, batch, payment_status, active, join_date, expiry_date, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, m Member) (*Member, error) {
	query := `
		INSERT INTO members (name, phone, email, plan, batch, payment_status, active, join_date, expiry_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + memberColumns

	var saved Member
	err := r.db.QueryRowxContext(ctx, query,
		m.Name, m.Phone, m.Email, m.Plan, m.Batch,
		m.PaymentStatus, m.Active, m.JoinDate, m.ExpiryDate,
	).StructScan(&saved)
	if err != nil {
		return nil, err
	}

	return &saved, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE id = $1`

	var m Member
	if err := r.db.GetContext(ctx, &m, query, id); err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members ORDER BY created_at DESC`

	members := []Member{}
	if err := r.db.SelectContext(ctx, &members, query); err != nil {
		return nil, err
	}

	return members, nil
}

func (r *repository) Search(ctx context.Context, search string) ([]Member, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM members
		WHERE name ILIKE '%' || $1 || '%'
		   OR email ILIKE '%' || $1 || '%'
		   OR phone LIKE '%' || $1 || '%'
		   OR batch ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC`

	members := []Member{}
	if err := r.db.SelectContext(ctx, &members, query, search); err != nil {
		return nil, err
	}

	return members, nil
}

func (r *repository) FilterByBatch(ctx context.Context, batch string) ([]Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE batch = $1 ORDER BY created_at DESC`

	members := []Member{}
	if err := r.db.SelectContext(ctx, &members, query, batch); err != nil {
		return nil, err
	}

	return members, nil
}

func (r *repository) Update(ctx context.Context, m Member) error {
	query := `
		UPDATE members
		SET name = $1, phone = $2, email = $3, plan = $4, batch = $5,
		    payment_status = $6, active = $7, join_date = $8, expiry_date = $9
		WHERE id = $10`

	result, err := r.db.ExecContext(ctx, query,
		m.Name, m.Phone, m.Email, m.Plan, m.Batch,
		m.PaymentStatus, m.Active, m.JoinDate, m.ExpiryDate, m.ID,
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
	result, err := r.db.ExecContext(ctx, `DELETE FROM members WHERE id = $1`, id)
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
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM members WHERE id = $1)`, id)
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM members`)
	return count, err
}

func (r *repository) CountByActive(ctx context.Context, active bool) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM members WHERE active = $1`, active)
	return count, err
}

// ListActiveExpired returns the sweep candidates: active members whose expiry
// date is strictly before today. Null expiry dates never match.
func (r *repository) ListActiveExpired(ctx context.Context, today time.Time) ([]Member, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM members
		WHERE active = TRUE
		  AND expiry_date IS NOT NULL
		  AND expiry_date < $1
		ORDER BY id`

	members := []Member{}
	if err := r.db.SelectContext(ctx, &members, query, today); err != nil {
		return nil, err
	}

	return members, nil
}
