package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubhub/internal/model"
	"clubhub/internal/repository"
)

// AnnouncementInput carries the admin announcement form.
type AnnouncementInput struct {
	Title    string
	Content  string
	Category string
	Date     string
	Status   string
	ImageURL string
}

// AnnouncementService handles announcement content management. The public
// listing hides drafts; the admin listing returns everything.
type AnnouncementService interface {
	Create(ctx context.Context, in AnnouncementInput) (*model.Announcement, error)
	Update(ctx context.Context, id uuid.UUID, in AnnouncementInput) (*model.Announcement, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Announcement, error)
	ListPublished(ctx context.Context) ([]model.Announcement, error)
	ListAll(ctx context.Context) ([]model.Announcement, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type announcementService struct {
	repo repository.AnnouncementRepository
}

// NewAnnouncementService creates a new announcement service.
func NewAnnouncementService(repo repository.AnnouncementRepository) AnnouncementService {
	return &announcementService{repo: repo}
}

func (s *announcementService) Create(ctx context.Context, in AnnouncementInput) (*model.Announcement, error) {
	status := in.Status
	if status == "" {
		status = model.AnnouncementPublished
	}
	announcement := &model.Announcement{
		Title:    in.Title,
		Content:  in.Content,
		Category: in.Category,
		Date:     in.Date,
		Status:   status,
		ImageURL: in.ImageURL,
	}
	if err := s.repo.Create(ctx, announcement); err != nil {
		return nil, fmt.Errorf("create announcement: %w", err)
	}
	return announcement, nil
}

func (s *announcementService) Update(ctx context.Context, id uuid.UUID, in AnnouncementInput) (*model.Announcement, error) {
	announcement, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, fmt.Errorf("find announcement: %w", err)
	}

	announcement.Title = in.Title
	announcement.Content = in.Content
	announcement.Category = in.Category
	announcement.Date = in.Date
	if in.Status != "" {
		announcement.Status = in.Status
	}
	announcement.ImageURL = in.ImageURL
	if err := s.repo.Update(ctx, announcement); err != nil {
		return nil, fmt.Errorf("update announcement: %w", err)
	}
	return announcement, nil
}

func (s *announcementService) Get(ctx context.Context, id uuid.UUID) (*model.Announcement, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *announcementService) ListPublished(ctx context.Context) ([]model.Announcement, error) {
	return s.repo.ListByStatus(ctx, model.AnnouncementPublished)
}

func (s *announcementService) ListAll(ctx context.Context) ([]model.Announcement, error) {
	return s.repo.List(ctx)
}

func (s *announcementService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
