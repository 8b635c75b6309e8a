package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"PORT", "APP_ENV", "STORAGE_DRIVER", "STORAGE_REGION", "STORAGE_BUCKET",
		"STORAGE_ENDPOINT", "STORAGE_ACCESS_KEY", "STORAGE_SECRET_KEY",
		"STORAGE_USE_SSL", "STORAGE_USE_PATH_STYLE", "STORAGE_ENSURE_BUCKET",
		"SERVER_READ_HEADER_TIMEOUT", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT", "SERVER_IDLE_TIMEOUT",
	} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, 10*time.Second, cfg.ServerReadHeaderTimeout)
	assert.Zero(t, cfg.ServerReadTimeout)
	assert.Zero(t, cfg.ServerWriteTimeout)
	assert.Equal(t, 60*time.Second, cfg.ServerIdleTimeout)
	assert.Equal(t, DriverS3, cfg.StorageDriver)
	assert.Equal(t, "us-west-1", cfg.StorageRegion)
	assert.Equal(t, "your-flask-uploads", cfg.StorageBucket)
	assert.Empty(t, cfg.StorageEndpoint)
	assert.True(t, cfg.StorageUseSSL)
	assert.False(t, cfg.StorageUsePathStyle)
	assert.False(t, cfg.StorageEnsureBucket)
	assert.False(t, cfg.HasStaticCredentials())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("STORAGE_DRIVER", DriverMinio)
	t.Setenv("STORAGE_REGION", "eu-central-1")
	t.Setenv("STORAGE_BUCKET", "uploads")
	t.Setenv("STORAGE_ENDPOINT", "localhost:9000")
	t.Setenv("STORAGE_ACCESS_KEY", "minioadmin")
	t.Setenv("STORAGE_SECRET_KEY", "minioadmin")
	t.Setenv("STORAGE_USE_SSL", "false")
	t.Setenv("STORAGE_USE_PATH_STYLE", "true")
	t.Setenv("STORAGE_ENSURE_BUCKET", "true")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, DriverMinio, cfg.StorageDriver)
	assert.Equal(t, "eu-central-1", cfg.StorageRegion)
	assert.Equal(t, "uploads", cfg.StorageBucket)
	assert.Equal(t, "localhost:9000", cfg.StorageEndpoint)
	assert.True(t, cfg.HasStaticCredentials())
	assert.False(t, cfg.StorageUseSSL)
	assert.True(t, cfg.StorageUsePathStyle)
	assert.True(t, cfg.StorageEnsureBucket)
}

func TestHasStaticCredentials_NeedsBothHalves(t *testing.T) {
	cfg := &Config{StorageAccessKey: "key"}
	assert.False(t, cfg.HasStaticCredentials())

	cfg.StorageSecretKey = "secret"
	assert.True(t, cfg.HasStaticCredentials())
}

func TestLoad_ServerTimeouts(t *testing.T) {
	t.Setenv("SERVER_READ_HEADER_TIMEOUT", "5s")
	t.Setenv("SERVER_READ_TIMEOUT", "2m")
	t.Setenv("SERVER_WRITE_TIMEOUT", "not-a-duration")
	t.Setenv("SERVER_IDLE_TIMEOUT", "90s")

	cfg := Load()

	assert.Equal(t, 5*time.Second, cfg.ServerReadHeaderTimeout)
	assert.Equal(t, 2*time.Minute, cfg.ServerReadTimeout)
	assert.Zero(t, cfg.ServerWriteTimeout)
	assert.Equal(t, 90*time.Second, cfg.ServerIdleTimeout)
}
