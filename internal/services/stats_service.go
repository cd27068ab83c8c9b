package services

import (
	"time"

	"github.com/yukikurage/member-care-api/internal/dto"
	"github.com/yukikurage/member-care-api/internal/models"
	"github.com/yukikurage/member-care-api/internal/repository"
	"github.com/yukikurage/member-care-api/internal/timestamp"
)

// StatsService derives dashboard metrics from full entity collections. The
// reductions run in memory over already-fetched records, which is fine at
// congregation scale.
type StatsService struct {
	memberRepo   repository.MemberRepository
	taskRepo     repository.TaskRepository
	followUpRepo repository.FollowUpRepository
}

// NewStatsService creates a new StatsService.
func NewStatsService(memberRepo repository.MemberRepository, taskRepo repository.TaskRepository, followUpRepo repository.FollowUpRepository) *StatsService {
	return &StatsService{
		memberRepo:   memberRepo,
		taskRepo:     taskRepo,
		followUpRepo: followUpRepo,
	}
}

// GetStats loads the collections and reduces them into dashboard counts.
func (s *StatsService) GetStats() (*dto.Stats, error) {
	members, err := s.memberRepo.List()
	if err != nil {
		return nil, err
	}
	tasks, err := s.taskRepo.List()
	if err != nil {
		return nil, err
	}
	followUps, err := s.followUpRepo.List()
	if err != nil {
		return nil, err
	}

	stats := ComputeStats(members, tasks, followUps)
	return &stats, nil
}

// GetAnalytics reduces the collections into windowed growth metrics.
// Unknown range strings fall back to 30d, matching the dashboard default.
func (s *StatsService) GetAnalytics(timeRange string) (*dto.Analytics, error) {
	members, err := s.memberRepo.List()
	if err != nil {
		return nil, err
	}
	tasks, err := s.taskRepo.List()
	if err != nil {
		return nil, err
	}

	analytics := ComputeAnalytics(members, tasks, timeRange, time.Now())
	return &analytics, nil
}

// ComputeStats is a pure reduction from collections to dashboard counts.
func ComputeStats(members []models.Member, tasks []models.Task, followUps []models.FollowUp) dto.Stats {
	stats := dto.Stats{TotalMembers: len(members)}

	for _, m := range members {
		if m.Status == models.MemberStatusNew {
			stats.NewConverts++
		}
		if m.Baptized {
			stats.Baptized++
		}
		if m.InBibleStudy {
			stats.InBibleStudy++
		}
		if m.InSmallGroup {
			stats.InSmallGroup++
		}
		if m.MembershipStatus == models.MembershipActive {
			stats.ActiveMembers++
		}
	}

	for _, t := range tasks {
		switch t.Status {
		case models.TaskStatusPending:
			stats.PendingTasks++
		case models.TaskStatusCompleted:
			stats.CompletedTasks++
		}
	}

	for _, f := range followUps {
		if f.CompletedDate == nil {
			stats.PendingFollowups++
		}
	}

	return stats
}

// ComputeAnalytics is a pure reduction over a recent time window ending at
// now. A record created exactly at the window start counts as in range. The
// conversion funnel spans the full member set, not just the window.
func ComputeAnalytics(members []models.Member, tasks []models.Task, timeRange string, now time.Time) dto.Analytics {
	start := windowStart(timeRange, now)

	analytics := dto.Analytics{
		TimeRange: timeRange,
		StartDate: timestamp.New(start),
		EndDate:   timestamp.New(now),
	}

	for _, m := range members {
		if !m.CreatedAt.Before(start) {
			analytics.MemberGrowth++
		}
		switch m.Status {
		case models.MemberStatusNew:
			analytics.ConversionFunnel.NewConverts++
		case models.MemberStatusContacted:
			analytics.ConversionFunnel.Contacted++
		}
		if m.Baptized {
			analytics.ConversionFunnel.Baptized++
		}
		if m.InBibleStudy {
			analytics.ConversionFunnel.InBibleStudy++
		}
		if m.InSmallGroup {
			analytics.ConversionFunnel.InSmallGroup++
		}
	}

	for _, t := range tasks {
		if t.CreatedAt.Before(start) {
			continue
		}
		switch t.Status {
		case models.TaskStatusCompleted:
			analytics.TaskCompletion.Completed++
		case models.TaskStatusPending:
			analytics.TaskCompletion.Pending++
		case models.TaskStatusOverdue:
			analytics.TaskCompletion.Overdue++
		}
	}

	return analytics
}

func windowStart(timeRange string, now time.Time) time.Time {
	switch timeRange {
	case "7d":
		return now.AddDate(0, 0, -7)
	case "90d":
		return now.AddDate(0, 0, -90)
	case "1y":
		return now.AddDate(-1, 0, 0)
	default: // 30d
		return now.AddDate(0, 0, -30)
	}
}
