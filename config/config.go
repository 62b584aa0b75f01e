package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Environment string
	Name        string
	Version     string
	HTTP        HTTPConfig
	Upstream    UpstreamConfig
	JWT         JWTConfig
	Booking     BookingConfig
	ViaCEP      ViaCEPConfig
	RateLimit   RateLimitConfig
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	MaxHeaderMB  int
}

// UpstreamConfig aponta para a API do marketplace que este gateway consome.
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

type JWTConfig struct {
	SigningKey string
}

type BookingConfig struct {
	// SessionTTL é o tempo de inatividade após o qual uma sessão de
	// agendamento (modal aberto) é descartada.
	SessionTTL time.Duration
	// FetchTimeout limita a consulta de horários disponíveis.
	FetchTimeout time.Duration
}

type ViaCEPConfig struct {
	BaseURL string
	Timeout time.Duration
}

type RateLimitConfig struct {
	Enabled           bool
	RequestsPerMinute int
	Burst             int
}

func NewConfig() (*Config, error) {
	httpReadTimeout, err := time.ParseDuration(getEnv("HTTP_READ_TIMEOUT", "10s"))
	if err != nil {
		return nil, err
	}

	httpWriteTimeout, err := time.ParseDuration(getEnv("HTTP_WRITE_TIMEOUT", "10s"))
	if err != nil {
		return nil, err
	}

	upstreamTimeout, err := time.ParseDuration(getEnv("UPSTREAM_TIMEOUT", "15s"))
	if err != nil {
		return nil, err
	}

	sessionTTL, err := time.ParseDuration(getEnv("BOOKING_SESSION_TTL", "30m"))
	if err != nil {
		return nil, err
	}

	fetchTimeout, err := time.ParseDuration(getEnv("BOOKING_FETCH_TIMEOUT", "10s"))
	if err != nil {
		return nil, err
	}

	viacepTimeout, err := time.ParseDuration(getEnv("VIACEP_TIMEOUT", "5s"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Environment: getEnv("APP_ENV", "development"),
		Name:        getEnv("APP_NAME", "amado"),
		Version:     getEnv("APP_VERSION", "1.0.0"),
		HTTP: HTTPConfig{
			Port:         getEnv("HTTP_PORT", "8080"),
			ReadTimeout:  httpReadTimeout,
			WriteTimeout: httpWriteTimeout,
			MaxHeaderMB:  getEnvAsInt("HTTP_MAX_HEADER_MB", 1),
		},
		Upstream: UpstreamConfig{
			BaseURL: getEnv("UPSTREAM_BASE_URL", "http://localhost:5000/api"),
			Timeout: upstreamTimeout,
		},
		JWT: JWTConfig{
			SigningKey: getEnv("JWT_SIGNING_KEY", "your_secret_key"),
		},
		Booking: BookingConfig{
			SessionTTL:   sessionTTL,
			FetchTimeout: fetchTimeout,
		},
		ViaCEP: ViaCEPConfig{
			BaseURL: getEnv("VIACEP_BASE_URL", "https://viacep.com.br/ws"),
			Timeout: viacepTimeout,
		},
		RateLimit: RateLimitConfig{
			Enabled:           getEnv("RATE_LIMIT_ENABLED", "true") == "true",
			RequestsPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 120),
			Burst:             getEnvAsInt("RATE_LIMIT_BURST", 30),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value := 0
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return defaultValue
	}

	return value
}
