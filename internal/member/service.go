package member

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"gymadmin/internal/logger"
)

var (
	ErrMemberNotFound = errors.New("member not found")
	ErrPlanRequired   = errors.New("plan selection is required")
)

type Service interface {
	Join(ctx context.Context, req JoinRequest) (*Member, error)
	List(ctx context.Context, search, batch string) ([]Member, error)
	GetByID(ctx context.Context, id int) (*Member, error)
	Update(ctx context.Context, req EditRequest) (*Member, error)
	Delete(ctx context.Context, id int) error
	ToggleStatus(ctx context.Context, id int) (*Member, error)
	Renew(ctx context.Context, id int, plan string) (*Member, error)
	SweepExpired(ctx context.Context) (int, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService wires the lifecycle transitions to the store. The clock is
// injectable so tests can run any calendar day they like.
func NewService(repo Repository, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{
		repo: repo,
		now:  now,
	}
}

func (s *service) Join(ctx context.Context, req JoinRequest) (*Member, error) {
	m := NewFromJoin(req, s.now())
	return s.repo.Create(ctx, m)
}

func (s *service) List(ctx context.Context, search, batch string) ([]Member, error) {
	switch {
	case strings.TrimSpace(search) != "":
		return s.repo.Search(ctx, strings.TrimSpace(search))
	case strings.TrimSpace(batch) != "":
		return s.repo.FilterByBatch(ctx, batch)
	default:
		return s.repo.GetAll(ctx)
	}
}

func (s *service) GetByID(ctx context.Context, id int) (*Member, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *service) Update(ctx context.Context, req EditRequest) (*Member, error) {
	existing, err := s.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	merged := ApplyEdit(*existing, req)
	if err := s.repo.Update(ctx, merged); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	return &merged, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrMemberNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) ToggleStatus(ctx context.Context, id int) (*Member, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	toggled := Toggle(*existing)
	if err := s.repo.Update(ctx, toggled); err != nil {
		return nil, err
	}

	return &toggled, nil
}

func (s *service) Renew(ctx context.Context, id int, plan string) (*Member, error) {
	if strings.TrimSpace(plan) == "" {
		return nil, ErrPlanRequired
	}

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	renewed := Renew(*existing, plan, s.now())
	if err := s.repo.Update(ctx, renewed); err != nil {
		return nil, err
	}

	return &renewed, nil
}

// SweepExpired deactivates every active member whose expiry date has passed.
// Running it twice the same day is a no-op the second time. A failed write is
// logged and skipped so one bad row cannot stall the whole sweep.
func (s *service) SweepExpired(ctx context.Context) (int, error) {
	today := DateOnly(s.now())

	expired, err := s.repo.ListActiveExpired(ctx, today)
	if err != nil {
		return 0, err
	}

	deactivated := 0
	for _, m := range expired {
		next, changed := ExpireIfPast(m, today)
		if !changed {
			continue
		}
		if err := s.repo.Update(ctx, next); err != nil {
			logger.Errorf("Sweep failed to deactivate member %d: %v", m.ID, err)
			continue
		}
		deactivated++
	}

	return deactivated, nil
}
