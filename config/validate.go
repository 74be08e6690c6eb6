package config

import (
	"fmt"
	"log/slog"
	"time"
)

const defaultDailyRunUTCHour = 4

func validateConfig(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.HTTP.Timeout <= 0 {
		return fmt.Errorf("HTTP timeout must be positive: %v", config.HTTP.Timeout)
	}

	// An out-of-range hour falls back to the default rather than failing
	// startup; a misconfigured hour should not take the service down.
	if config.Ingestion.DailyRunUTCHour < 0 || config.Ingestion.DailyRunUTCHour > 23 {
		slog.Warn("daily run hour out of range, using default",
			"configured", config.Ingestion.DailyRunUTCHour,
			"default", defaultDailyRunUTCHour)
		config.Ingestion.DailyRunUTCHour = defaultDailyRunUTCHour
	}

	if config.Ingestion.WatchdogTimeout <= 0 {
		config.Ingestion.WatchdogTimeout = 20 * time.Second
	}

	if config.Signals.LookbackMinutes <= 0 {
		return fmt.Errorf("signal lookback must be positive: %d", config.Signals.LookbackMinutes)
	}

	if config.Signals.HorizonMinutes <= 0 {
		return fmt.Errorf("signal horizon must be positive: %d", config.Signals.HorizonMinutes)
	}

	return nil
}
