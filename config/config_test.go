package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, "http://localhost:5000/api", cfg.Upstream.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 30*time.Minute, cfg.Booking.SessionTTL)
	assert.Equal(t, 10*time.Second, cfg.Booking.FetchTimeout)
	assert.Equal(t, "https://viacep.com.br/ws", cfg.ViaCEP.BaseURL)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 120, cfg.RateLimit.RequestsPerMinute)
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("UPSTREAM_BASE_URL", "https://api.amado.com.br/api")
	t.Setenv("BOOKING_SESSION_TTL", "15m")
	t.Setenv("BOOKING_FETCH_TIMEOUT", "3s")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "60")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "9000", cfg.HTTP.Port)
	assert.Equal(t, "https://api.amado.com.br/api", cfg.Upstream.BaseURL)
	assert.Equal(t, 15*time.Minute, cfg.Booking.SessionTTL)
	assert.Equal(t, 3*time.Second, cfg.Booking.FetchTimeout)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 60, cfg.RateLimit.RequestsPerMinute)
}

func TestNewConfigInvalidDuration(t *testing.T) {
	t.Setenv("BOOKING_SESSION_TTL", "trinta minutos")

	_, err := NewConfig()
	assert.Error(t, err)
}
