package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Port                 int
	JWTSecret            string
	DatabaseURL          string
	RedisURL             string
	EncryptionKey        string
	CORSOrigins          []string
	AdminEmail           string
	AdminPassword        string
	KafkaBrokers         []string
	KafkaTopic           string
	PaymentWebhookSecret string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	port, _ := strconv.Atoi(getEnv("PORT", "4001"))

	jwtSecret := getEnv("JWT_SECRET", "")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	dbURL := getEnv("DATABASE_URL", "")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	redisURL := getEnv("REDIS_URL", "")
	if redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}

	encKey := getEnv("ENCRYPTION_KEY", "")
	if encKey == "" {
		return nil, fmt.Errorf("ENCRYPTION_KEY is required (must be exactly 32 bytes)")
	}
	if len(encKey) != 32 {
		return nil, fmt.Errorf("ENCRYPTION_KEY must be exactly 32 bytes, got %d", len(encKey))
	}

	origins := strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:3010,https://adverra.id"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	// Kafka is optional; leave brokers empty to disable event publishing.
	var brokers []string
	if raw := getEnv("KAFKA_BROKERS", ""); raw != "" {
		brokers = strings.Split(raw, ",")
		for i := range brokers {
			brokers[i] = strings.TrimSpace(brokers[i])
		}
	}

	return &Config{
		Port:                 port,
		JWTSecret:            jwtSecret,
		DatabaseURL:          dbURL,
		RedisURL:             redisURL,
		EncryptionKey:        encKey,
		CORSOrigins:          origins,
		AdminEmail:           getEnv("ADMIN_EMAIL", "admin@adverra.id"),
		AdminPassword:        getEnv("ADMIN_PASSWORD", "admin123"),
		KafkaBrokers:         brokers,
		KafkaTopic:           getEnv("KAFKA_TOPIC", "transactions"),
		PaymentWebhookSecret: getEnv("PAYMENT_WEBHOOK_SECRET", "dev-webhook-secret"),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
