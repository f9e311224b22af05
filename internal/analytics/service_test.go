package analytics

import (
	"context"
	"strings"
	"testing"

	"skillsync-backend/internal/users"
)

func seedUsers(t *testing.T, repo *users.MemoryRepo, emails ...string) {
	t.Helper()
	for _, email := range emails {
		if err := repo.Upsert(context.Background(), users.User{Email: email, Role: users.RoleUser}); err != nil {
			t.Fatalf("seed user %s: %v", email, err)
		}
	}
}

func TestLogUsageAggregatesIntoReport(t *testing.T) {
	repo := users.NewMemoryRepo()
	seedUsers(t, repo, "a@example.com", "b@example.com")
	svc := NewService(repo)
	ctx := context.Background()

	if err := svc.LogUsage(ctx, "a@example.com", 3); err != nil {
		t.Fatalf("LogUsage: %v", err)
	}
	if err := svc.LogUsage(ctx, "a@example.com", 2); err != nil {
		t.Fatalf("LogUsage: %v", err)
	}
	if err := svc.LogUsage(ctx, "b@example.com", 1); err != nil {
		t.Fatalf("LogUsage: %v", err)
	}

	report, err := svc.BuildReport(ctx)
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	if report.TotalUsers != 2 {
		t.Fatalf("expected 2 users, got %d", report.TotalUsers)
	}
	if report.TotalBatches != 3 || report.TotalResumes != 6 {
		t.Fatalf("unexpected totals: batches=%d resumes=%d", report.TotalBatches, report.TotalResumes)
	}

	// Rows ordered by resumes processed, heaviest user first.
	if report.Rows[0].Email != "a@example.com" {
		t.Fatalf("expected a@example.com first, got %q", report.Rows[0].Email)
	}
	if report.Rows[0].BatchCount != 2 || report.Rows[0].ResumesProcessed != 5 {
		t.Fatalf("unexpected aggregation: %+v", report.Rows[0])
	}
	if report.Rows[0].LastActivity == nil {
		t.Fatal("expected last activity set")
	}
}

func TestLogUsageIgnoresEmptyEvents(t *testing.T) {
	repo := users.NewMemoryRepo()
	seedUsers(t, repo, "a@example.com")
	svc := NewService(repo)
	ctx := context.Background()

	if err := svc.LogUsage(ctx, "", 3); err != nil {
		t.Fatalf("LogUsage: %v", err)
	}
	if err := svc.LogUsage(ctx, "a@example.com", 0); err != nil {
		t.Fatalf("LogUsage: %v", err)
	}

	report, err := svc.BuildReport(ctx)
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	if report.TotalBatches != 0 {
		t.Fatalf("expected no batches, got %d", report.TotalBatches)
	}
}

func TestReportCSV(t *testing.T) {
	repo := users.NewMemoryRepo()
	seedUsers(t, repo, "a@example.com")
	svc := NewService(repo)
	ctx := context.Background()

	if err := svc.LogUsage(ctx, "a@example.com", 4); err != nil {
		t.Fatalf("LogUsage: %v", err)
	}
	report, err := svc.BuildReport(ctx)
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}

	data, err := ReportCSV(report)
	if err != nil {
		t.Fatalf("ReportCSV: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "Email,Name,Role") {
		t.Fatalf("missing header: %s", out)
	}
	if !strings.Contains(out, "a@example.com") {
		t.Fatalf("missing row: %s", out)
	}
}
