package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "clubhub/internal/errors"
	"clubhub/internal/model"
	"clubhub/internal/repository"
)

// MemberService handles the admin side of the membership roster: listing
// applicants and approving or removing them.
type MemberService interface {
	List(ctx context.Context) ([]model.Member, error)
	Approve(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type memberService struct {
	memberRepo repository.MemberRepository
	userRepo   repository.UserRepository
}

// NewMemberService creates a new member service.
func NewMemberService(memberRepo repository.MemberRepository, userRepo repository.UserRepository) MemberService {
	return &memberService{
		memberRepo: memberRepo,
		userRepo:   userRepo,
	}
}

func (s *memberService) List(ctx context.Context) ([]model.Member, error) {
	return s.memberRepo.List(ctx)
}

// Approve activates a pending member and the user profile behind it, so the
// applicant's next login reflects active status.
func (s *memberService) Approve(ctx context.Context, id uuid.UUID) error {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("find member: %w", err)
	}

	if err := s.memberRepo.UpdateStatus(ctx, id, model.StatusActive); err != nil {
		return fmt.Errorf("update member status: %w", err)
	}

	user, err := s.userRepo.FindByID(ctx, member.UserID)
	if err != nil {
		// Roster rows seeded without a login keep working; only the
		// roster status changes.
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		return fmt.Errorf("find user: %w", err)
	}
	user.Status = model.StatusActive
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("update user status: %w", err)
	}
	return nil
}

func (s *memberService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.memberRepo.Delete(ctx, id)
}
