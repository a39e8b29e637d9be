package container

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"questions-backend/internal/config"
	questionRepo "questions-backend/internal/domains/question/repository"
)

func memoryConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Environment:   "test",
			Port:          "0",
			StorageDriver: config.StorageDriverMemory,
		},
		Redis: config.RedisConfig{CacheTTL: time.Minute},
	}
}

func TestNewContainerFromConfig_Memory(t *testing.T) {
	c, err := NewContainerFromConfig(context.Background(), memoryConfig())
	require.NoError(t, err)
	t.Cleanup(c.Cleanup)

	assert.Nil(t, c.DB)
	assert.Nil(t, c.Cache)
	assert.IsType(t, &questionRepo.MemoryRepository{}, c.QuestionRepo)
	assert.NotNil(t, c.QuestionService)
	assert.NotNil(t, c.QuestionHandler)
}

func TestNewContainerFromConfig_UnreachableRedisDisablesCache(t *testing.T) {
	cfg := memoryConfig()
	cfg.Redis.Host = "127.0.0.1:1"

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c, err := NewContainerFromConfig(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(c.Cleanup)

	assert.Nil(t, c.Cache)
	assert.IsType(t, &questionRepo.MemoryRepository{}, c.QuestionRepo)
}

func TestNewContainerFromConfig_BadDatabaseURL(t *testing.T) {
	cfg := memoryConfig()
	cfg.App.StorageDriver = config.StorageDriverPostgres
	cfg.Database.URL = "postgres://%zz"

	_, err := NewContainerFromConfig(context.Background(), cfg)
	assert.Error(t, err)
}
