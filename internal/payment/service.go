package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"gymadmin/internal/member"
)

type Service interface {
	// Quote resolves the member and the plan-derived amount for the payment page.
	Quote(ctx context.Context, memberID int) (*member.Member, float64, error)
	// Process appends an immutable payment record and activates the member.
	Process(ctx context.Context, req ProcessRequest) (*Payment, *member.Member, error)
	HistoryForMember(ctx context.Context, memberID int) ([]Payment, error)
}

type service struct {
	repo    Repository
	members member.Repository
	now     func() time.Time
}

func NewService(repo Repository, members member.Repository, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{
		repo:    repo,
		members: members,
		now:     now,
	}
}

func (s *service) Quote(ctx context.Context, memberID int) (*member.Member, float64, error) {
	m, err := s.resolveMember(ctx, memberID)
	if err != nil {
		return nil, 0, err
	}
	return m, member.PlanPrice(m.Plan), nil
}

func (s *service) Process(ctx context.Context, req ProcessRequest) (*Payment, *member.Member, error) {
	m, err := s.resolveMember(ctx, req.MemberID)
	if err != nil {
		return nil, nil, err
	}

	now := s.now()
	txnID := strings.TrimSpace(req.TransactionID)
	if txnID == "" {
		txnID = fmt.Sprintf("TXN%d", now.UnixMilli())
	}

	p := Payment{
		MemberID:      m.ID,
		Amount:        req.Amount,
		PaymentDate:   member.DateOnly(now),
		PaymentMethod: req.PaymentMethod,
		Status:        StatusPaid,
		// Snapshot of the plan at payment time; later plan changes do not
		// rewrite history.
		Plan:          m.Plan,
		TransactionID: txnID,
	}

	activated := member.ApplyPayment(*m)

	saved, err := s.repo.RecordWithMemberUpdate(ctx, p, activated)
	if err != nil {
		return nil, nil, err
	}

	return saved, &activated, nil
}

func (s *service) HistoryForMember(ctx context.Context, memberID int) ([]Payment, error) {
	return s.repo.ListByMember(ctx, memberID)
}

func (s *service) resolveMember(ctx context.Context, memberID int) (*member.Member, error) {
	m, err := s.members.GetByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, member.ErrMemberNotFound
		}
		return nil, err
	}
	return m, nil
}
