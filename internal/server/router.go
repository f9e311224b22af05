package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillsync-backend/internal/analytics"
	googleauth "skillsync-backend/internal/auth"
	"skillsync-backend/internal/session"
	"skillsync-backend/internal/shared/config"
	"skillsync-backend/internal/shared/metrics"
	"skillsync-backend/internal/shared/server/middleware"
	"skillsync-backend/internal/shared/server/respond"
	"skillsync-backend/internal/users"
)

// aiRateGroup throttles the endpoints that call the AI service.
const aiRateGroup = "AI"

// RouterDeps carries the handlers wired by bootstrap.
type RouterDeps struct {
	Config           config.Config
	SessionHandler   *session.Handler
	AnalyticsHandler *analytics.Handler
	GoogleAuth       *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				aiRateGroup: {Rate: 0.5, Burst: 5},
			},
			GroupFor: aiGroupFor,
		}),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	deps.GoogleAuth.RegisterRoutes(api)
	registerMeRoutes(api)
	deps.SessionHandler.RegisterRoutes(api)

	admin := api.Group("", middleware.RequireRole(users.RoleAdmin))
	deps.AnalyticsHandler.RegisterRoutes(admin)

	return r
}

func aiGroupFor(c *gin.Context) string {
	if c.Request.Method != http.MethodPost {
		return ""
	}
	switch c.Request.URL.Path {
	case "/api/v1/evaluations", "/api/v1/evaluations/interview-qa":
		return aiRateGroup
	}
	return ""
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
