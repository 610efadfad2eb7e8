package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.Security.AuthEnabled)
	assert.Equal(t, 24*time.Hour, cfg.Security.JWTExpiration)
	assert.Equal(t, 7*24*time.Hour, cfg.Security.RefreshTokenExpiration)
	assert.True(t, cfg.Scheduler.Enabled)
	assert.Equal(t, time.Minute, cfg.Scheduler.Interval)
	assert.Equal(t, 30*time.Minute, cfg.Scheduler.BookingHoldWindow)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.PayFast.Sandbox)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `
server:
  port: 9090
database:
  driver: postgres
  dsn: postgres://localhost:5432/conectone?sslmode=disable
security:
  jwt_secret: test-secret
  rate_limit: 50
payfast:
  merchant_id: "10000100"
  merchant_key: 46f0cd694581a
scheduler:
  booking_hold_window: 15m
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "test-secret", cfg.Security.JWTSecret)
	assert.Equal(t, 50, cfg.Security.RateLimit)
	assert.Equal(t, "10000100", cfg.PayFast.MerchantID)
	assert.Equal(t, 15*time.Minute, cfg.Scheduler.BookingHoldWindow)
	// unset values keep defaults
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CO_SERVER_PORT", "7070")
	t.Setenv("CO_DATABASE_DRIVER", "mysql")
	t.Setenv("CO_DATABASE_DSN", "root@tcp(localhost:3306)/conectone")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "root@tcp(localhost:3306)/conectone", cfg.Database.DSN)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "bad port",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "invalid server port",
		},
		{
			name:    "bad driver",
			mutate:  func(c *Config) { c.Database.Driver = "oracle" },
			wantErr: "unsupported database driver",
		},
		{
			name:    "missing dsn",
			mutate:  func(c *Config) { c.Database.DSN = "" },
			wantErr: "database dsn is required",
		},
		{
			name: "missing jwt secret",
			mutate: func(c *Config) {
				c.Security.AuthEnabled = true
				c.Security.JWTSecret = ""
			},
			wantErr: "jwt secret is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Server:   ServerConfig{Port: 8080},
				Database: DatabaseConfig{Driver: "sqlite", DSN: "file:test.db"},
				Security: SecurityConfig{AuthEnabled: true, JWTSecret: "secret"},
			}
			tt.mutate(cfg)
			err := validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
