package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubhub/internal/model"
	"clubhub/internal/repository"
)

// OfficerInput carries the admin officer form.
type OfficerInput struct {
	Name      string
	Position  string
	Course    string
	Section   string
	YearLevel string
	Term      string
	Image     string
	Order     int
}

// OfficerService handles officer-roster management.
type OfficerService interface {
	Create(ctx context.Context, in OfficerInput) (*model.Officer, error)
	Update(ctx context.Context, id uuid.UUID, in OfficerInput) (*model.Officer, error)
	List(ctx context.Context) ([]model.Officer, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Seed(ctx context.Context, officers []model.Officer) (int, error)
}

type officerService struct {
	repo repository.OfficerRepository
}

// NewOfficerService creates a new officer service.
func NewOfficerService(repo repository.OfficerRepository) OfficerService {
	return &officerService{repo: repo}
}

func (s *officerService) Create(ctx context.Context, in OfficerInput) (*model.Officer, error) {
	officer := &model.Officer{
		Name:         in.Name,
		Position:     in.Position,
		Course:       in.Course,
		Section:      in.Section,
		YearLevel:    in.YearLevel,
		Term:         in.Term,
		Image:        in.Image,
		DisplayOrder: in.Order,
	}
	if err := s.repo.Create(ctx, officer); err != nil {
		return nil, fmt.Errorf("create officer: %w", err)
	}
	return officer, nil
}

func (s *officerService) Update(ctx context.Context, id uuid.UUID, in OfficerInput) (*model.Officer, error) {
	officer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, fmt.Errorf("find officer: %w", err)
	}

	officer.Name = in.Name
	officer.Position = in.Position
	officer.Course = in.Course
	officer.Section = in.Section
	officer.YearLevel = in.YearLevel
	officer.Term = in.Term
	officer.Image = in.Image
	officer.DisplayOrder = in.Order
	if err := s.repo.Update(ctx, officer); err != nil {
		return nil, fmt.Errorf("update officer: %w", err)
	}
	return officer, nil
}

func (s *officerService) List(ctx context.Context) ([]model.Officer, error) {
	return s.repo.List(ctx)
}

func (s *officerService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Seed inserts officers that are not already present, keyed by name and
// term, and returns how many were created.
func (s *officerService) Seed(ctx context.Context, officers []model.Officer) (int, error) {
	existing, err := s.repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list officers: %w", err)
	}
	present := make(map[string]bool, len(existing))
	for _, o := range existing {
		present[o.Name+"|"+o.Term] = true
	}

	created := 0
	for i := range officers {
		if present[officers[i].Name+"|"+officers[i].Term] {
			continue
		}
		if err := s.repo.Create(ctx, &officers[i]); err != nil {
			return created, fmt.Errorf("seed officer %q: %w", officers[i].Name, err)
		}
		created++
	}
	return created, nil
}
