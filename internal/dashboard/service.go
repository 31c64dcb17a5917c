package dashboard

import (
	"context"
	"time"

	"gymadmin/internal/member"
	"gymadmin/internal/payment"
)

// ExpiringSoonDays is the dashboard's look-ahead window for the expiring
// membership count.
const ExpiringSoonDays = 7

type Stats struct {
	TotalMembers    int64
	ActiveMembers   int64
	ExpiredMembers  int64
	ExpiringSoon    int64
	EquipmentCount  int64
	TotalEquipment  int64
	PaidMembers     int64
	PendingPayments int64
	TotalPayments   int64
}

type Service interface {
	Stats(ctx context.Context) (*Stats, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{
		repo: repo,
		now:  now,
	}
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	today := member.DateOnly(s.now())
	stats := &Stats{}

	var err error
	if stats.TotalMembers, err = s.repo.CountMembers(ctx); err != nil {
		return nil, err
	}
	if stats.ActiveMembers, err = s.repo.CountMembersByActive(ctx, true); err != nil {
		return nil, err
	}
	if stats.ExpiredMembers, err = s.repo.CountMembersByActive(ctx, false); err != nil {
		return nil, err
	}
	if stats.ExpiringSoon, err = s.repo.CountExpiringBetween(ctx, today, today.AddDate(0, 0, ExpiringSoonDays)); err != nil {
		return nil, err
	}
	if stats.EquipmentCount, err = s.repo.CountEquipment(ctx); err != nil {
		return nil, err
	}
	if stats.TotalEquipment, err = s.repo.SumEquipmentUnits(ctx); err != nil {
		return nil, err
	}
	if stats.PaidMembers, err = s.repo.CountMembersByPaymentStatus(ctx, member.PaymentPaid); err != nil {
		return nil, err
	}
	if stats.PendingPayments, err = s.repo.CountMembersByPaymentStatus(ctx, member.PaymentPending); err != nil {
		return nil, err
	}
	if stats.TotalPayments, err = s.repo.CountPaymentsByStatus(ctx, payment.StatusPaid); err != nil {
		return nil, err
	}

	return stats, nil
}
