package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Geocoding Config (Nominatim-совместимый сервис)
	GeocodeBaseURL   string        `env:"GEOCODE_BASE_URL" envDefault:"https://nominatim.openstreetmap.org"`
	GeocodeUserAgent string        `env:"GEOCODE_USER_AGENT" envDefault:"story-map-api/1.0"`
	GeocodeLanguage  string        `env:"GEOCODE_LANGUAGE" envDefault:"zh,en"`
	GeocodeTimeout   time.Duration `env:"GEOCODE_TIMEOUT" envDefault:"5s"`

	// Nearby lookup: радиус в градусах (плоская метрика, не геодезическая)
	NearbyRadiusDegrees float64 `env:"NEARBY_RADIUS_DEGREES" envDefault:"0.5"`

	// TTL черновиков и одноразовых handoff-записей
	DraftTTL   time.Duration `env:"DRAFT_TTL" envDefault:"1h"`
	HandoffTTL time.Duration `env:"HANDOFF_TTL" envDefault:"10m"`

	// Alert Webhook Config
	AlertWebhookURL string        `env:"ALERT_WEBHOOK_URL"`
	AlertSecret     string        `env:"ALERT_WEBHOOK_SECRET"`
	AlertTimeout    time.Duration `env:"ALERT_WEBHOOK_TIMEOUT" envDefault:"5s"`
	AlertMaxRetries int           `env:"ALERT_WEBHOOK_MAX_RETRIES" envDefault:"3"`
	AlertBaseDelay  time.Duration `env:"ALERT_WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Archive of action articles
	ActionsDir        string `env:"ACTIONS_DIR" envDefault:"actions"`
	ActionsRescanCron string `env:"ACTIONS_RESCAN_CRON" envDefault:"@hourly"`

	// Stats Config
	StatsTimeWindowMinutes int `env:"STATS_TIME_WINDOW_MINUTES" envDefault:"1440"`

	// API Keys for moderation endpoints
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		GeocodeBaseURL:         getEnv("GEOCODE_BASE_URL", "https://nominatim.openstreetmap.org"),
		GeocodeUserAgent:       getEnv("GEOCODE_USER_AGENT", "story-map-api/1.0"),
		GeocodeLanguage:        getEnv("GEOCODE_LANGUAGE", "zh,en"),
		GeocodeTimeout:         getEnvAsDuration("GEOCODE_TIMEOUT", 5*time.Second),
		NearbyRadiusDegrees:    getEnvAsFloat("NEARBY_RADIUS_DEGREES", 0.5),
		DraftTTL:               getEnvAsDuration("DRAFT_TTL", time.Hour),
		HandoffTTL:             getEnvAsDuration("HANDOFF_TTL", 10*time.Minute),
		AlertWebhookURL:        os.Getenv("ALERT_WEBHOOK_URL"),
		AlertSecret:            os.Getenv("ALERT_WEBHOOK_SECRET"),
		AlertTimeout:           getEnvAsDuration("ALERT_WEBHOOK_TIMEOUT", 5*time.Second),
		AlertMaxRetries:        getEnvAsInt("ALERT_WEBHOOK_MAX_RETRIES", 3),
		AlertBaseDelay:         getEnvAsDuration("ALERT_WEBHOOK_BASE_DELAY", time.Second),
		ActionsDir:             getEnv("ACTIONS_DIR", "actions"),
		ActionsRescanCron:      getEnv("ACTIONS_RESCAN_CRON", "@hourly"),
		StatsTimeWindowMinutes: getEnvAsInt("STATS_TIME_WINDOW_MINUTES", 1440),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
