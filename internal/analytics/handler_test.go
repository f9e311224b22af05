package analytics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"skillsync-backend/internal/shared/server/middleware"
	"skillsync-backend/internal/users"
)

func newAdminRouter(svc *Service, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userEmail", "admin@example.com")
		c.Set("userRole", role)
		c.Next()
	})
	admin := router.Group("/api/v1", middleware.RequireRole(users.RoleAdmin))
	NewHandler(svc).RegisterRoutes(admin)
	return router
}

func TestAnalyticsEndpointRequiresAdmin(t *testing.T) {
	svc := NewService(users.NewMemoryRepo())
	router := newAdminRouter(svc, users.RoleUser)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/analytics", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.Code)
	}
}

func TestAnalyticsEndpointReturnsReport(t *testing.T) {
	repo := users.NewMemoryRepo()
	seedUsers(t, repo, "a@example.com")
	svc := NewService(repo)
	if err := svc.LogUsage(context.Background(), "a@example.com", 2); err != nil {
		t.Fatalf("LogUsage: %v", err)
	}
	router := newAdminRouter(svc, users.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/analytics", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "a@example.com") {
		t.Fatalf("report missing user: %s", resp.Body.String())
	}
}

func TestAnalyticsExportEndpoint(t *testing.T) {
	repo := users.NewMemoryRepo()
	seedUsers(t, repo, "a@example.com")
	svc := NewService(repo)
	router := newAdminRouter(svc, users.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/analytics/export", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/csv") {
		t.Fatalf("unexpected content type: %q", got)
	}
	if !strings.Contains(resp.Header().Get("Content-Disposition"), "usage_report_") {
		t.Fatalf("unexpected disposition: %q", resp.Header().Get("Content-Disposition"))
	}
}
