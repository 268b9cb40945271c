package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bqviet86/cmict-server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
server:
  addr: ":4000"
databaseConfig:
  dsn: "postgres://localhost/cmict"
redisConfig:
  addr: "localhost:6379"
  ttl: "10m"
jwt:
  access_secret: "access"
  refresh_secret: "refresh"
  access_token_ttl: "15m"
  refresh_token_ttl: "2400h"
password:
  secret: "pepper"
media:
  max_files: 5
  max_file_size_mb: 5
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Success(t *testing.T) {
	cfg, err := config.LoadConfig(writeConfig(t, validYAML))

	require.NoError(t, err)
	assert.Equal(t, ":4000", cfg.Server.Addr)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTTL())
	assert.Equal(t, 100*24*time.Hour, cfg.JWT.RefreshTTL())
	assert.Equal(t, 10*time.Minute, cfg.RedisConfig.CacheTTL())
	assert.Equal(t, int64(5*1024*1024), cfg.Media.MaxFileSize())
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeoutDuration())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "from-env")
	t.Setenv("DATABASE_DSN", "postgres://env/cmict")
	t.Setenv("S3_LOCAL", "true")

	cfg, err := config.LoadConfig(writeConfig(t, validYAML))

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.JWT.AccessSecret)
	assert.Equal(t, "postgres://env/cmict", cfg.DatabaseConfig.DSN)
	assert.True(t, cfg.S3Config.Local)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() config.AppConfig {
		return config.AppConfig{
			DatabaseConfig: config.DatabaseConfig{DSN: "postgres://localhost/cmict"},
			RedisConfig:    config.RedisConfig{TTL: "1m"},
			JWT: config.JWTConfig{
				AccessSecret:    "a",
				RefreshSecret:   "r",
				AccessTokenTTL:  "15m",
				RefreshTokenTTL: "24h",
			},
			Password: config.PasswordConfig{Secret: "p"},
			Media:    config.MediaConfig{MaxFiles: 5, MaxFileSizeMB: 5},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *config.AppConfig)
		wantErr string
	}{
		{"valid", func(c *config.AppConfig) {}, ""},
		{"same secrets", func(c *config.AppConfig) { c.JWT.RefreshSecret = "a" }, "должны отличаться"},
		{"missing secret", func(c *config.AppConfig) { c.JWT.AccessSecret = "" }, "обязательны"},
		{"bad ttl", func(c *config.AppConfig) { c.JWT.AccessTokenTTL = "soon" }, "jwt.access_token_ttl"},
		{"zero ttl", func(c *config.AppConfig) { c.JWT.RefreshTokenTTL = "0s" }, "jwt.refresh_token_ttl"},
		{"no password secret", func(c *config.AppConfig) { c.Password.Secret = "" }, "password.secret"},
		{"no dsn", func(c *config.AppConfig) { c.DatabaseConfig.DSN = "" }, "dsn"},
		{"no media limits", func(c *config.AppConfig) { c.Media.MaxFiles = 0 }, "media"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
