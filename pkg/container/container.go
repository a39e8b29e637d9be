package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"questions-backend/internal/config"
	infraCache "questions-backend/internal/infrastructure/cache"
	"questions-backend/internal/infrastructure/database"
	"questions-backend/pkg/cache"

	"questions-backend/internal/domains/question"
	questionHandler "questions-backend/internal/domains/question/handler"
	questionRepo "questions-backend/internal/domains/question/repository"
	questionService "questions-backend/internal/domains/question/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config *config.Config
	DB     *database.PostgresDB // nil with STORAGE_DRIVER=memory
	Cache  cache.Cache          // nil when REDIS_HOST is unset or unreachable

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	QuestionRepo question.Repository

	// ========================================
	// SERVICE LAYER
	// ========================================
	QuestionService question.Service

	// ========================================
	// HANDLER LAYER
	// ========================================
	QuestionHandler *questionHandler.QuestionHandler

	stopMonitor context.CancelFunc
}

// NewContainer loads the configuration from the environment and builds
// the graph.
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewContainerFromConfig(context.Background(), cfg)
}

// NewContainerFromConfig builds the graph in dependency order:
// infrastructure, repositories, services, handlers.
func NewContainerFromConfig(ctx context.Context, cfg *config.Config) (*Container, error) {
	log.Info().Msg("Initializing DI Container...")

	c := &Container{Config: cfg}

	// ========================================
	// STEP 1: DATABASE
	// ========================================
	if cfg.App.StorageDriver == config.StorageDriverPostgres {
		if err := c.initDatabase(ctx); err != nil {
			return nil, err
		}
	} else {
		log.Warn().Msg("STORAGE_DRIVER=memory, data is lost on restart")
	}

	// ========================================
	// STEP 2: CACHE
	// ========================================
	c.initCache(ctx)

	// ========================================
	// STEP 3..5: REPOSITORIES, SERVICES, HANDLERS
	// ========================================
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().
		Str("storage", cfg.App.StorageDriver).
		Bool("cache", c.Cache != nil).
		Msg("DI Container initialized successfully")
	return c, nil
}

func (c *Container) initDatabase(ctx context.Context) error {
	dbConfig, err := config.LoadDatabaseConfig(c.Config.Database)
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := db.Connect(connectCtx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.HealthCheck(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db

	if dbConfig.MonitorInterval > 0 {
		monitorCtx, stop := context.WithCancel(context.Background())
		c.stopMonitor = stop
		go db.MonitorPoolHealth(monitorCtx, dbConfig.MonitorInterval)
	}

	return nil
}

// initCache connects Redis when configured. Failure is not fatal,
// the service then runs without caching.
func (c *Container) initCache(ctx context.Context) {
	if c.Config.Redis.Host == "" {
		return
	}

	redisCache := infraCache.NewRedisCache(
		c.Config.Redis.Host,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
	)

	if err := redisCache.Connect(ctx); err != nil {
		log.Warn().Err(err).Msg("Redis connection failed (non-critical), caching disabled")
		_ = redisCache.Close()
		return
	}

	c.Cache = redisCache
}

func (c *Container) initRepositories() {
	var repo question.Repository
	if c.DB != nil {
		repo = questionRepo.NewPostgresRepository(c.DB.Pool)
	} else {
		repo = questionRepo.NewMemoryRepository()
	}

	if c.Cache != nil {
		repo = questionRepo.NewCachedRepository(repo, c.Cache, c.Config.Redis.CacheTTL)
	}

	c.QuestionRepo = repo
}

func (c *Container) initServices() {
	c.QuestionService = questionService.NewQuestionService(c.QuestionRepo)
}

func (c *Container) initHandlers() {
	c.QuestionHandler = questionHandler.NewQuestionHandler(c.QuestionService)
}

// Cleanup releases pool and Redis connections. Call it once on shutdown.
func (c *Container) Cleanup() {
	log.Info().Msg("Cleaning up container resources...")

	if c.stopMonitor != nil {
		c.stopMonitor()
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close database")
		}
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis")
		}
	}

	log.Info().Msg("Container cleanup completed")
}
