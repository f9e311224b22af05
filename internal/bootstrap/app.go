package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"skillsync-backend/internal/analytics"
	googleauth "skillsync-backend/internal/auth"
	"skillsync-backend/internal/evaluation"
	"skillsync-backend/internal/interview"
	"skillsync-backend/internal/llm"
	"skillsync-backend/internal/llm/gemini"
	"skillsync-backend/internal/llm/openai"
	"skillsync-backend/internal/server"
	"skillsync-backend/internal/session"
	"skillsync-backend/internal/shared/config"
	"skillsync-backend/internal/shared/storage/db"
	"skillsync-backend/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	DB               *sql.DB
	UsersRepo        users.Repo
	UsersService     *users.Service
	AnalyticsService *analytics.Service
	SessionService   *session.Service
	SessionHandler   *session.Handler
	AnalyticsHandler *analytics.Handler
	GoogleAuth       *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
	}

	if err := buildServices(ctx, app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           app.Config,
		SessionHandler:   app.SessionHandler,
		AnalyticsHandler: app.AnalyticsHandler,
		GoogleAuth:       app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildServices(ctx context.Context, app *App) error {
	var (
		userRepo     users.Repo
		analyticsSvc *analytics.Service
	)
	if app.DB != nil {
		userRepo = users.NewPGRepo(app.DB)
		analyticsSvc = analytics.NewPostgresService(analytics.NewPGStore(app.DB), userRepo)
	} else {
		memRepo := users.NewMemoryRepo()
		userRepo = memRepo
		analyticsSvc = analytics.NewService(memRepo)
	}

	llmClient, err := buildLLM(ctx, app.Config)
	if err != nil {
		return err
	}

	userSvc := &users.Service{Repo: userRepo}
	sessionSvc := &session.Service{
		Engine:    &evaluation.Engine{LLM: llmClient},
		Generator: &interview.Generator{LLM: llmClient},
		Analytics: analyticsSvc,
		Store:     session.NewStore(),
	}

	app.UsersRepo = userRepo
	app.UsersService = userSvc
	app.AnalyticsService = analyticsSvc
	app.SessionService = sessionSvc
	app.SessionHandler = session.NewHandler(sessionSvc)
	app.AnalyticsHandler = analytics.NewHandler(analyticsSvc)
	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		app.Config.AllowedEmailDomain,
		userSvc,
	)

	return nil
}

func buildLLM(ctx context.Context, cfg config.Config) (llm.Client, error) {
	switch cfg.LLMProvider {
	case "gemini":
		client, err := gemini.NewClient(ctx, os.Getenv("GEMINI_API_KEY"), cfg.LLMModel)
		if err != nil {
			return nil, err
		}
		return client, nil
	case "openai":
		if os.Getenv("OPENAI_API_KEY") == "" {
			log.Printf("bootstrap: OPENAI_API_KEY empty; AI calls will fail until configured")
			return llm.PlaceholderClient{}, nil
		}
		client, err := openai.NewClient(os.Getenv("OPENAI_API_KEY"), cfg.LLMModel)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return llm.PlaceholderClient{}, nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
