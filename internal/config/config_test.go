package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("DB_QUERY_TIMEOUT", "")

	cfg := Load()

	assert.Equal(t, "8010", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, 10, cfg.Limits.SubmissionsPerMinute)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("DB_QUERY_TIMEOUT", "3s")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("AWS_USE_SSL", "true")
	t.Setenv("SUBMISSION_BURST", "not-a-number")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, 5, cfg.Limits.SubmissionBurst)
}

func TestValidate(t *testing.T) {
	cfg := Load()
	cfg.Admin.Password = ""
	assert.EqualError(t, cfg.Validate(), "ADMIN_PASSWORD is required to protect the admin API")

	cfg.Admin.Password = "secret"
	cfg.MinIO.AccessKeyID = "key"
	cfg.MinIO.SecretAccessKey = "secret"
	assert.NoError(t, cfg.Validate())
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: "5432", User: "u", Password: "p", DBName: "catalog", SSLMode: "disable",
	}}
	assert.Equal(t,
		"host=db port=5432 user=u password=p dbname=catalog sslmode=disable TimeZone=UTC connect_timeout=10",
		cfg.GetDSN())
}
