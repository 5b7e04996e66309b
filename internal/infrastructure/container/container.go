package container

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/gdugdh24/matrimony-backend/internal/config"
	"github.com/gdugdh24/matrimony-backend/internal/delivery/http"
	"github.com/gdugdh24/matrimony-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/matrimony-backend/internal/delivery/http/middleware"
	"github.com/gdugdh24/matrimony-backend/internal/infrastructure/cache"
	"github.com/gdugdh24/matrimony-backend/internal/infrastructure/database"
	"github.com/gdugdh24/matrimony-backend/internal/infrastructure/gemini"
	"github.com/gdugdh24/matrimony-backend/internal/infrastructure/server"
	"github.com/gdugdh24/matrimony-backend/internal/matching"
	"github.com/gdugdh24/matrimony-backend/internal/repository/postgres"
	"github.com/gdugdh24/matrimony-backend/internal/usecase/auth"
	"github.com/gdugdh24/matrimony-backend/internal/usecase/interest"
	"github.com/gdugdh24/matrimony-backend/internal/usecase/match"
	"github.com/gdugdh24/matrimony-backend/internal/usecase/profile"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
	Gemini *gemini.GeminiClient
	log    *slog.Logger
}

// NewContainer creates a new dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Container, error) {
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	c := &Container{Config: cfg, DB: db, log: log}

	// Both the cache and the invalidator stay nil interfaces when Redis is off.
	var (
		recCache    match.RecommendationCache
		invalidator profile.CacheInvalidator
	)
	if cfg.Redis.Enabled {
		redisClient, err := database.NewRedisClient(ctx, &cfg.Redis)
		if err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		c.Redis = redisClient
		rc := cache.NewRecommendationCache(redisClient, cfg.Matching.CacheTTL)
		recCache, invalidator = rc, rc
	}

	var insights match.InsightGenerator
	geminiClient, err := gemini.NewGeminiClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		log.Warn("gemini client unavailable, match insights use templates", "error", err)
	} else {
		c.Gemini = geminiClient
		insights = geminiClient
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	prefRepo := postgres.NewPreferenceRepository(db)
	horoscopeRepo := postgres.NewHoroscopeRepository(db)
	interestRepo := postgres.NewInterestRepository(db)
	completeRepo := postgres.NewCompleteProfileRepository(db)

	// Scoring core
	matcher := matching.NewMatcher()
	ranker := matching.NewRanker(matcher,
		matching.WithThreshold(cfg.Matching.Threshold),
		matching.WithWorkers(cfg.Matching.Workers),
	)

	// Initialize use cases
	authUseCase := auth.NewAuthUseCase(
		userRepo,
		cfg.JWT.AccessSecret,
		time.Duration(cfg.JWT.AccessExpiryMin)*time.Minute,
	)

	profileUseCase := profile.NewProfileUseCase(
		profileRepo,
		prefRepo,
		horoscopeRepo,
		userRepo,
		completeRepo,
		invalidator,
		log,
	)

	matchUseCase := match.NewMatchUseCase(
		completeRepo,
		ranker,
		matcher,
		recCache,
		insights,
		log,
	)

	interestUseCase := interest.NewInterestUseCase(
		interestRepo,
		profileRepo,
		log,
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	profileHandler := handler.NewProfileHandler(profileUseCase)
	matchHandler := handler.NewMatchHandler(matchUseCase)
	interestHandler := handler.NewInterestHandler(interestUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	// Initialize router
	router := http.NewRouter(
		authHandler,
		profileHandler,
		matchHandler,
		interestHandler,
		authMiddleware,
	)

	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	ginRouter, err := router.Setup()
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("failed to set up router: %w", err)
	}

	c.Server = server.NewServer(&cfg.Server, ginRouter, log)
	return c, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Gemini != nil {
		if err := c.Gemini.Close(); err != nil {
			c.log.Error("failed to close gemini client", "error", err)
		}
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.log.Error("failed to close redis", "error", err)
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
