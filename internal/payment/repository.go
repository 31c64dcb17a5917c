package payment

import (
	"context"

	"gymadmin/internal/member"

	"github.com/jmoiron/sqlx"
)

const paymentColumns = `id, member_id, amount, payment_date, payment_method, status, plan, transaction_id, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// RecordWithMemberUpdate writes the payment row and the member's new state in
// a single transaction. The original flow did these as two independent writes
// with no rollback path; wrapping them keeps the pair atomic.
func (r *repository) RecordWithMemberUpdate(ctx context.Context, p Payment, m member.Member) (*Payment, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var saved Payment
	err = tx.QueryRowxContext(ctx, `
		INSERT INTO payments (member_id, amount, payment_date, payment_method, status, plan, transaction_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+paymentColumns,
		p.MemberID, p.Amount, p.PaymentDate, p.PaymentMethod, p.Status, p.Plan, p.TransactionID,
	).StructScan(&saved)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE members
		SET payment_status = $1, active = $2
		WHERE id = $3`,
		m.PaymentStatus, m.Active, m.ID,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &saved, nil
}

func (r *repository) ListByMember(ctx context.Context, memberID int) ([]Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE member_id = $1
		ORDER BY payment_date DESC, id DESC`

	payments := []Payment{}
	if err := r.db.SelectContext(ctx, &payments, query, memberID); err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *repository) LatestByMember(ctx context.Context, memberID int) (*Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE member_id = $1
		ORDER BY payment_date DESC, id DESC
		LIMIT 1`

	var p Payment
	if err := r.db.GetContext(ctx, &p, query, memberID); err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM payments WHERE status = $1`, status)
	return count, err
}
