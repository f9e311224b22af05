package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimitBurstThenRejects(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return now })

	groupFor := func(c *gin.Context) string {
		if c.Request.Method == http.MethodPost {
			return "AI"
		}
		return ""
	}

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userEmail", "hr@example.com")
		c.Next()
	})
	r.Use(RateLimit(RateLimitConfig{
		GroupFor: groupFor,
		Limiter:  limiter,
		Rules: map[string]RateLimitRule{
			"AI": {Rate: 1, Burst: 2},
		},
	}))
	r.POST("/api/v1/evaluations", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/api/v1/evaluations", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/evaluations", nil)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("request %d expected 200, got %d", i+1, resp.Code)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/evaluations", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", resp.Code)
	}
	if resp.Header().Get("Retry-After") == "" {
		t.Fatal("expected Retry-After header")
	}

	// Reads are not in a limited group.
	getReq := httptest.NewRequest(http.MethodGet, "/api/v1/evaluations", nil)
	getResp := httptest.NewRecorder()
	r.ServeHTTP(getResp, getReq)
	if getResp.Code != http.StatusOK {
		t.Fatalf("expected unlimited GET, got %d", getResp.Code)
	}
}

func TestRateLimitRecoversOverTime(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return now })
	rule := RateLimitRule{Rate: 1, Burst: 1}

	if ok, _ := limiter.Allow("k|AI", rule); !ok {
		t.Fatal("first request should pass")
	}
	if ok, _ := limiter.Allow("k|AI", rule); ok {
		t.Fatal("second immediate request should be rejected")
	}

	now = now.Add(2 * time.Second)
	if ok, _ := limiter.Allow("k|AI", rule); !ok {
		t.Fatal("request after refill should pass")
	}
}
