package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// LoadConfig builds the configuration from defaults and overrides provided
// via environment variables.
func LoadConfig() (*Config, error) {
	config := defaultConfig()

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ShutdownTimeout: 10 * time.Second,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
		},
		HTTP: HTTPConfig{
			Timeout:             25 * time.Second,
			DialTimeout:         7 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConns:        100,
			MaxConnsPerHost:     8,
			UserAgent:           "news-ingestor/1.0 (+https://localhost)",
		},
		Database: DatabaseConfig{
			Port:     "5432",
			Name:     "news",
			SSLMode:  "disable",
			MaxConns: 20,
		},
		Ingestion: IngestionConfig{
			DailyRunUTCHour: defaultDailyRunUTCHour,
			WatchdogTimeout: 20 * time.Second,
		},
		Signals: SignalConfig{
			LookbackMinutes: 30,
			HorizonMinutes:  5,
		},
	}
}

func loadFromEnv(config *Config) error {
	if err := loadServerConfig(&config.Server); err != nil {
		return fmt.Errorf("failed to load server config: %w", err)
	}

	if err := loadHTTPConfig(&config.HTTP); err != nil {
		return fmt.Errorf("failed to load HTTP config: %w", err)
	}

	loadDatabaseConfig(&config.Database)

	if err := loadIngestionConfig(&config.Ingestion); err != nil {
		return fmt.Errorf("failed to load ingestion config: %w", err)
	}

	if err := loadSignalConfig(&config.Signals); err != nil {
		return fmt.Errorf("failed to load signal config: %w", err)
	}

	return nil
}

func loadServerConfig(cfg *ServerConfig) error {
	var err error

	if cfg.Port, err = parseIntEnv("SERVER_PORT", cfg.Port); err != nil {
		return err
	}

	if cfg.ShutdownTimeout, err = parseDurationEnv("SERVER_SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout); err != nil {
		return err
	}

	if cfg.ReadTimeout, err = parseDurationEnv("SERVER_READ_TIMEOUT", cfg.ReadTimeout); err != nil {
		return err
	}

	if cfg.WriteTimeout, err = parseDurationEnv("SERVER_WRITE_TIMEOUT", cfg.WriteTimeout); err != nil {
		return err
	}

	return nil
}

func loadHTTPConfig(cfg *HTTPConfig) error {
	var err error

	if cfg.Timeout, err = parseDurationEnv("HTTP_TIMEOUT", cfg.Timeout); err != nil {
		return err
	}

	if cfg.DialTimeout, err = parseDurationEnv("HTTP_DIAL_TIMEOUT", cfg.DialTimeout); err != nil {
		return err
	}

	if cfg.TLSHandshakeTimeout, err = parseDurationEnv("HTTP_TLS_HANDSHAKE_TIMEOUT", cfg.TLSHandshakeTimeout); err != nil {
		return err
	}

	if cfg.IdleConnTimeout, err = parseDurationEnv("HTTP_IDLE_CONN_TIMEOUT", cfg.IdleConnTimeout); err != nil {
		return err
	}

	if cfg.MaxIdleConns, err = parseIntEnv("HTTP_MAX_IDLE_CONNS", cfg.MaxIdleConns); err != nil {
		return err
	}

	if cfg.MaxConnsPerHost, err = parseIntEnv("HTTP_MAX_CONNS_PER_HOST", cfg.MaxConnsPerHost); err != nil {
		return err
	}

	cfg.UserAgent = getEnvOrDefault("HTTP_USER_AGENT", cfg.UserAgent)

	return nil
}

func loadDatabaseConfig(cfg *DatabaseConfig) {
	cfg.Host = getEnvOrDefault("DB_HOST", cfg.Host)
	cfg.Port = getEnvOrDefault("DB_PORT", cfg.Port)
	cfg.User = getEnvOrDefault("DB_USER", cfg.User)
	cfg.Password = getEnvOrDefault("DB_PASSWORD", cfg.Password)
	cfg.Name = getEnvOrDefault("DB_NAME", cfg.Name)
	cfg.SSLMode = getEnvOrDefault("DB_SSL_MODE", cfg.SSLMode)
}

func loadIngestionConfig(cfg *IngestionConfig) error {
	var err error

	if cfg.DailyRunUTCHour, err = parseIntEnv("INGESTION_DAILY_RUN_UTC_HOUR", cfg.DailyRunUTCHour); err != nil {
		return err
	}

	if cfg.WatchdogTimeout, err = parseDurationEnv("INGESTION_WATCHDOG_TIMEOUT", cfg.WatchdogTimeout); err != nil {
		return err
	}

	if cfg.HostRateInterval, err = parseDurationEnv("INGESTION_HOST_RATE_INTERVAL", cfg.HostRateInterval); err != nil {
		return err
	}

	if feeds := os.Getenv("INGESTION_FEEDS"); feeds != "" {
		cfg.Feeds = ParseFeedList(feeds)
	}

	return nil
}

func loadSignalConfig(cfg *SignalConfig) error {
	var err error

	if cfg.LookbackMinutes, err = parseIntEnv("SIGNAL_LOOKBACK_MINUTES", cfg.LookbackMinutes); err != nil {
		return err
	}

	if cfg.HorizonMinutes, err = parseIntEnv("SIGNAL_HORIZON_MINUTES", cfg.HorizonMinutes); err != nil {
		return err
	}

	return nil
}

// ParseFeedList splits a comma-separated feed list, trimming whitespace and
// dropping blank entries. Order is preserved; it defines fetch order.
func ParseFeedList(raw string) []string {
	parts := strings.Split(raw, ",")
	feeds := make([]string, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		feeds = append(feeds, p)
	}

	return feeds
}

func parseIntEnv(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", key, value)
	}

	return parsed, nil
}

func parseDurationEnv(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", key, value)
	}

	return parsed, nil
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}
