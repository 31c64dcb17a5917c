package payment

import (
	"context"

	"gymadmin/internal/member"
)

type Repository interface {
	// RecordWithMemberUpdate inserts the payment row and persists the
	// activated member state in one transaction.
	RecordWithMemberUpdate(ctx context.Context, p Payment, m member.Member) (*Payment, error)
	ListByMember(ctx context.Context, memberID int) ([]Payment, error)
	LatestByMember(ctx context.Context, memberID int) (*Payment, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}
