package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.False(t, cfg.Debug)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "*", cfg.Server.Origin)
	assert.True(t, cfg.Server.LegacyRoutes)
	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, "data", cfg.Storage.DataDir)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr())
	assert.Equal(t, 5*time.Second, cfg.Redis.LockTTL)
	assert.Equal(t, 24*time.Hour, cfg.Admin.InitDataTTL)
	assert.True(t, cfg.Metrics.Enabled)
	assert.False(t, cfg.AdminAuthEnabled())
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("STORAGE_BACKEND", " Redis ")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("BOT_TOKEN", "bot-token")
	t.Setenv("ADMIN_IDS", "10, 20")
	t.Setenv("REDIS_LOCK_WAIT", "750ms")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, BackendRedis, cfg.Storage.Backend)
	assert.Equal(t, "cache:6380", cfg.RedisAddr())
	assert.Equal(t, []int64{10, 20}, cfg.Admin.AdminIDs)
	assert.Equal(t, 750*time.Millisecond, cfg.Redis.LockWait)
	assert.True(t, cfg.AdminAuthEnabled())
}

func TestParseRejectsUnknownBackend(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "etcd")

	_, err := Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "etcd")
}

func TestParseRequiresDatabaseURLForPostgres(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "postgres")

	_, err := Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestParseRequiresAdminIDsWithBotToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "bot-token")

	_, err := Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ADMIN_IDS")
}
