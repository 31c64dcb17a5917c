package equipment

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrNameRequired      = errors.New("equipment name is required")
	ErrEquipmentNotFound = errors.New("equipment not found")
)

type Service interface {
	List(ctx context.Context) ([]Equipment, int64, error)
	Create(ctx context.Context, f Form) (*Equipment, error)
	Update(ctx context.Context, id int, f Form) (*Equipment, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) Service {
	return &service{
		repo:     repo,
		validate: validator.New(),
	}
}

// normalize applies the form defaults: negative quantities collapse to zero
// and a missing status means Available.
func normalize(f Form) Form {
	if f.Quantity < 0 {
		f.Quantity = 0
	}
	if strings.TrimSpace(f.Status) == "" {
		f.Status = StatusAvailable
	}
	return f
}

func (s *service) List(ctx context.Context) ([]Equipment, int64, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	totalUnits, err := s.repo.SumUnits(ctx)
	if err != nil {
		return nil, 0, err
	}

	return items, totalUnits, nil
}

func (s *service) Create(ctx context.Context, f Form) (*Equipment, error) {
	f.Name = strings.TrimSpace(f.Name)
	if err := s.validate.Struct(f); err != nil {
		return nil, ErrNameRequired
	}

	f = normalize(f)
	return s.repo.Create(ctx, Equipment{
		Name:        f.Name,
		Category:    f.Category,
		Quantity:    f.Quantity,
		Status:      f.Status,
		Description: f.Description,
	})
}

func (s *service) Update(ctx context.Context, id int, f Form) (*Equipment, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEquipmentNotFound
		}
		return nil, err
	}

	f.Name = strings.TrimSpace(f.Name)
	if err := s.validate.Struct(f); err != nil {
		return nil, ErrNameRequired
	}

	f = normalize(f)
	updated := *existing
	updated.Name = f.Name
	updated.Category = f.Category
	updated.Quantity = f.Quantity
	updated.Status = f.Status
	updated.Description = f.Description

	if err := s.repo.Update(ctx, updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEquipmentNotFound
		}
		return nil, err
	}

	return &updated, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrEquipmentNotFound
	}
	return s.repo.Delete(ctx, id)
}
