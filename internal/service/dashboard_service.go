package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"clubhub/internal/repository"
)

// DashboardSummary holds the admin dashboard's headline counts.
type DashboardSummary struct {
	Announcements int64 `json:"announcements"`
	Events        int64 `json:"events"`
	Officers      int64 `json:"officers"`
	Polls         int64 `json:"polls"`
	Members       int64 `json:"members"`
}

// DashboardService aggregates collection counts for the admin dashboard.
type DashboardService interface {
	Summary(ctx context.Context) (*DashboardSummary, error)
}

type dashboardService struct {
	announcementRepo repository.AnnouncementRepository
	eventRepo        repository.EventRepository
	officerRepo      repository.OfficerRepository
	pollRepo         repository.PollRepository
	memberRepo       repository.MemberRepository
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(
	announcementRepo repository.AnnouncementRepository,
	eventRepo repository.EventRepository,
	officerRepo repository.OfficerRepository,
	pollRepo repository.PollRepository,
	memberRepo repository.MemberRepository,
) DashboardService {
	return &dashboardService{
		announcementRepo: announcementRepo,
		eventRepo:        eventRepo,
		officerRepo:      officerRepo,
		pollRepo:         pollRepo,
		memberRepo:       memberRepo,
	}
}

// Summary fetches all counts concurrently; any failing count fails the
// whole summary rather than returning partial numbers.
func (s *dashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	var summary DashboardSummary
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		summary.Announcements, err = s.announcementRepo.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		summary.Events, err = s.eventRepo.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		summary.Officers, err = s.officerRepo.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		summary.Polls, err = s.pollRepo.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		summary.Members, err = s.memberRepo.Count(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load dashboard counts: %w", err)
	}
	return &summary, nil
}
