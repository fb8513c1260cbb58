package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	Environment string
	ServiceName string
	Version     string
	LogLevel    string
	LogFormat   string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	APIKey         string // service API key for the HTTP surface
	TrustedProxies []string

	// Football fixtures feed (api-football v3). Key may be empty: feed
	// operations then return a soft failure instead of crashing.
	FootballAPIKey  string
	FootballAPIHost string

	// Chat-completion model used by the prediction generator. Key may be
	// empty: generation then uses the odds-implied fallback.
	LLMAPIKey  string
	LLMBaseURL string
	LLMModel   string
	LLMTimeout time.Duration

	PresenceCleanupInterval time.Duration
	SettlementWorkers       int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "dev"),
		ServiceName: getEnv("SERVICE_NAME", "betpulse"),
		Version:     getEnv("VERSION", "dev"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBName:      getEnv("DB_NAME", "betpulse"),
		APIKey:      getEnv("API_KEY", ""),

		FootballAPIKey:  getEnv("FOOTBALL_API_KEY", ""),
		FootballAPIHost: getEnv("FOOTBALL_API_HOST", "v3.football.api-sports.io"),

		LLMAPIKey:  getEnv("LLM_API_KEY", ""),
		LLMBaseURL: getEnv("LLM_BASE_URL", "https://api.openai.com/v1"),
		LLMModel:   getEnv("LLM_MODEL", "gpt-4.1-nano"),
	}

	if proxies := getEnv("TRUSTED_PROXIES", ""); proxies != "" {
		for _, p := range strings.Split(proxies, ",") {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, trimmed)
			}
		}
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	timeoutStr := getEnv("LLM_TIMEOUT_SECONDS", "30")
	timeoutSecs, err := strconv.Atoi(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid LLM_TIMEOUT_SECONDS value: %w", err)
	}
	cfg.LLMTimeout = time.Duration(timeoutSecs) * time.Second

	cleanupStr := getEnv("PRESENCE_CLEANUP_MINUTES", "10")
	cleanupMins, err := strconv.Atoi(cleanupStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PRESENCE_CLEANUP_MINUTES value: %w", err)
	}
	cfg.PresenceCleanupInterval = time.Duration(cleanupMins) * time.Minute

	workersStr := getEnv("SETTLEMENT_WORKERS", "2")
	workers, err := strconv.Atoi(workersStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SETTLEMENT_WORKERS value: %w", err)
	}
	cfg.SettlementWorkers = workers

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
