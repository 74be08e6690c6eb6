package config

import (
	"time"
)

// Config aggregates all service configuration blocks.
type Config struct {
	Server    ServerConfig    `json:"server"`
	HTTP      HTTPConfig      `json:"http"`
	Database  DatabaseConfig  `json:"database"`
	Ingestion IngestionConfig `json:"ingestion"`
	Signals   SignalConfig    `json:"signals"`
}

type ServerConfig struct {
	Port            int           `json:"port" env:"SERVER_PORT" default:"8080"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	ReadTimeout     time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"30s"`
}

type HTTPConfig struct {
	Timeout             time.Duration `json:"timeout" env:"HTTP_TIMEOUT" default:"25s"`
	DialTimeout         time.Duration `json:"dial_timeout" env:"HTTP_DIAL_TIMEOUT" default:"7s"`
	TLSHandshakeTimeout time.Duration `json:"tls_handshake_timeout" env:"HTTP_TLS_HANDSHAKE_TIMEOUT" default:"10s"`
	IdleConnTimeout     time.Duration `json:"idle_conn_timeout" env:"HTTP_IDLE_CONN_TIMEOUT" default:"90s"`
	MaxIdleConns        int           `json:"max_idle_conns" env:"HTTP_MAX_IDLE_CONNS" default:"100"`
	MaxConnsPerHost     int           `json:"max_conns_per_host" env:"HTTP_MAX_CONNS_PER_HOST" default:"8"`
	UserAgent           string        `json:"user_agent" env:"HTTP_USER_AGENT" default:"news-ingestor/1.0 (+https://localhost)"`
}

type DatabaseConfig struct {
	Host     string `json:"host" env:"DB_HOST"`
	Port     string `json:"port" env:"DB_PORT" default:"5432"`
	User     string `json:"user" env:"DB_USER"`
	Password string `json:"password" env:"DB_PASSWORD"`
	Name     string `json:"name" env:"DB_NAME" default:"news"`
	SSLMode  string `json:"ssl_mode" env:"DB_SSL_MODE" default:"disable"`
	MaxConns int    `json:"max_conns" env:"DB_MAX_CONNS" default:"20"`
}

// IngestionConfig drives the daily scheduler and the per-feed fetch
// protocol. Feed order defines fetch order within a run.
type IngestionConfig struct {
	DailyRunUTCHour  int           `json:"daily_run_utc_hour" env:"INGESTION_DAILY_RUN_UTC_HOUR" default:"4"`
	Feeds            []string      `json:"feeds" env:"INGESTION_FEEDS"`
	WatchdogTimeout  time.Duration `json:"watchdog_timeout" env:"INGESTION_WATCHDOG_TIMEOUT" default:"20s"`
	HostRateInterval time.Duration `json:"host_rate_interval" env:"INGESTION_HOST_RATE_INTERVAL" default:"0s"`
}

type SignalConfig struct {
	LookbackMinutes int `json:"lookback_minutes" env:"SIGNAL_LOOKBACK_MINUTES" default:"30"`
	HorizonMinutes  int `json:"horizon_minutes" env:"SIGNAL_HORIZON_MINUTES" default:"5"`
}
