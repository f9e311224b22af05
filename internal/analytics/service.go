package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"skillsync-backend/internal/users"
)

// Service records usage events and builds the admin report.
type Service struct {
	store store
	users users.Repo
}

// NewService constructs a Service with an in-memory store sharing the given
// user repo.
func NewService(userRepo *users.MemoryRepo) *Service {
	return &Service{store: newMemoryStore(userRepo), users: userRepo}
}

// NewPostgresService constructs a Service backed by Postgres.
func NewPostgresService(pgStore store, userRepo users.Repo) *Service {
	return &Service{store: pgStore, users: userRepo}
}

// LogUsage records a processing batch for the user.
func (s *Service) LogUsage(ctx context.Context, userEmail string, processed int) error {
	if userEmail == "" || processed <= 0 {
		return nil
	}
	return s.store.Insert(ctx, UsageLog{
		UserEmail:        userEmail,
		ResumesProcessed: processed,
	})
}

// BuildReport joins accounts with their usage activity.
func (s *Service) BuildReport(ctx context.Context) (Report, error) {
	accounts, err := s.users.List(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("list users: %w", err)
	}
	logs, err := s.store.List(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("list usage logs: %w", err)
	}

	type agg struct {
		batches int
		resumes int
		last    time.Time
	}
	byEmail := make(map[string]*agg)
	for _, log := range logs {
		a := byEmail[log.UserEmail]
		if a == nil {
			a = &agg{}
			byEmail[log.UserEmail] = a
		}
		a.batches++
		a.resumes += log.ResumesProcessed
		if log.CreatedAt.After(a.last) {
			a.last = log.CreatedAt
		}
	}

	report := Report{GeneratedAt: time.Now().UTC()}
	for _, account := range accounts {
		row := ReportRow{
			Email:      account.Email,
			FullName:   account.FullName,
			Role:       account.Role,
			LoginCount: account.LoginCount,
		}
		if a, ok := byEmail[account.Email]; ok {
			row.BatchCount = a.batches
			row.ResumesProcessed = a.resumes
			last := a.last
			row.LastActivity = &last
		}
		report.Rows = append(report.Rows, row)
		report.TotalBatches += row.BatchCount
		report.TotalResumes += row.ResumesProcessed
	}
	report.TotalUsers = len(report.Rows)
	sort.SliceStable(report.Rows, func(i, j int) bool {
		return report.Rows[i].ResumesProcessed > report.Rows[j].ResumesProcessed
	})
	return report, nil
}
