package dashboard

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// Repository exposes the read-only counts behind the admin dashboard. Nothing
// here is cached; every request recomputes against the store.
type Repository interface {
	CountMembers(ctx context.Context) (int64, error)
	CountMembersByActive(ctx context.Context, active bool) (int64, error)
	// CountExpiringBetween counts active members whose expiry is strictly
	// inside the (from, to) window.
	CountExpiringBetween(ctx context.Context, from, to time.Time) (int64, error)
	CountMembersByPaymentStatus(ctx context.Context, status string) (int64, error)
	CountEquipment(ctx context.Context) (int64, error)
	SumEquipmentUnits(ctx context.Context) (int64, error)
	CountPaymentsByStatus(ctx context.Context, status string) (int64, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountMembers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM members`)
	return count, err
}

func (r *repository) CountMembersByActive(ctx context.Context, active bool) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM members WHERE active = $1`, active)
	return count, err
}

func (r *repository) CountExpiringBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `
		SELECT COUNT(*)
		FROM members
		WHERE active = TRUE
		  AND expiry_date IS NOT NULL
		  AND expiry_date > $1
		  AND expiry_date < $2`,
		from, to,
	)
	return count, err
}

func (r *repository) CountMembersByPaymentStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM members WHERE payment_status = $1`, status)
	return count, err
}

func (r *repository) CountEquipment(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM equipment`)
	return count, err
}

func (r *repository) SumEquipmentUnits(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.GetContext(ctx, &total, `SELECT COALESCE(SUM(quantity), 0) FROM equipment`)
	return total, err
}

func (r *repository) CountPaymentsByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM payments WHERE status = $1`, status)
	return count, err
}
