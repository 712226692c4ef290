package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	DatabaseURL string
	RedisAddr   string

	PublicBaseURL string

	MercadoPagoBaseURL     string
	MercadoPagoAccessToken string
	MercadoPagoUserID      string
	MercadoPagoPosID       string

	NotificationMaxRetries int
	NotificationRetryDelay time.Duration
	NotificationTimeout    time.Duration
	QueuedMaxRetries       int

	CatalogHardDelete bool
}

// Load reads .env when present and falls back to process env variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, relying on system env variables")
	}

	return &Config{
		Port:        getEnv("APP_PORT", "5000"),
		Env:         getEnv("ENV", "development"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		RedisAddr:   getEnv("REDIS_ADDR", "127.0.0.1:6379"),

		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:5000"),

		MercadoPagoBaseURL:     getEnv("MERCADO_PAGO_BASE_URL", "https://api.mercadopago.com"),
		MercadoPagoAccessToken: getEnv("MERCADO_PAGO_ACCESS_TOKEN", ""),
		MercadoPagoUserID:      getEnv("MERCADO_PAGO_USER_ID", ""),
		MercadoPagoPosID:       getEnv("MERCADO_PAGO_POS_ID", ""),

		NotificationMaxRetries: getEnvInt("NOTIFICATION_MAX_RETRIES", 3),
		NotificationRetryDelay: time.Duration(getEnvInt("NOTIFICATION_RETRY_DELAY_SECONDS", 5)) * time.Second,
		NotificationTimeout:    time.Duration(getEnvInt("NOTIFICATION_TIMEOUT_SECONDS", 30)) * time.Second,
		QueuedMaxRetries:       getEnvInt("QUEUE_NOTIFICATION_MAX_RETRIES", 3),

		CatalogHardDelete: getEnvBool("CATALOG_HARD_DELETE", false),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("invalid integer env value, using fallback", "key", key, "value", value)
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		slog.Warn("invalid boolean env value, using fallback", "key", key, "value", value)
		return fallback
	}
	return b
}
