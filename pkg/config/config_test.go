package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := Load()

	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "recipebook", cfg.DBName)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, "localhost", cfg.RedisHost)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, "recipebook-media", cfg.S3BucketName)
}

func TestLoad_FromEnvironment(t *testing.T) {
	os.Clearenv()
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("DB_HOST", "db.internal")
	os.Setenv("DB_NAME", "recipes_prod")
	os.Setenv("JWT_SECRET", "super-secret")
	os.Setenv("REDIS_DB", "3")
	defer os.Clearenv()

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "recipes_prod", cfg.DBName)
	assert.Equal(t, "super-secret", cfg.JWTSecret)
	assert.Equal(t, 3, cfg.RedisDB)
}

func TestLoad_InvalidRedisDB(t *testing.T) {
	os.Clearenv()
	os.Setenv("REDIS_DB", "not-a-number")
	defer os.Clearenv()

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, 0, cfg.RedisDB)
}
