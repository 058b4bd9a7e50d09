package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress       string        `mapstructure:"SERVER_ADDRESS"`
	DBSource            string        `mapstructure:"DB_SOURCE"`
	TomTomAPIKey        string        `mapstructure:"TOMTOM_API_KEY"`
	TomTomBaseURL       string        `mapstructure:"TOMTOM_BASE_URL"`
	TomTomCountrySet    string        `mapstructure:"TOMTOM_COUNTRY_SET"`
	ProviderTimeout     time.Duration `mapstructure:"PROVIDER_TIMEOUT"`
	ProviderMinInterval time.Duration `mapstructure:"PROVIDER_MIN_INTERVAL"`
	RouteSamplePoints   int           `mapstructure:"ROUTE_SAMPLE_POINTS"`
	RoutePointDelay     time.Duration `mapstructure:"ROUTE_POINT_DELAY"`
	SignalCacheTTL      time.Duration `mapstructure:"SIGNAL_CACHE_TTL"`
	HeuristicsFile      string        `mapstructure:"HEURISTICS_FILE"`
	PeakTimezone        string        `mapstructure:"PEAK_TIMEZONE"`
	LogLevel            string        `mapstructure:"LOG_LEVEL"`
}

var defaults = map[string]interface{}{
	"SERVER_ADDRESS":        "0.0.0.0:8080",
	"DB_SOURCE":             "",
	"TOMTOM_API_KEY":        "",
	"TOMTOM_BASE_URL":       "https://api.tomtom.com",
	"TOMTOM_COUNTRY_SET":    "IN",
	"PROVIDER_TIMEOUT":      "5s",
	"PROVIDER_MIN_INTERVAL": "200ms",
	"ROUTE_SAMPLE_POINTS":   2,
	"ROUTE_POINT_DELAY":     "500ms",
	"SIGNAL_CACHE_TTL":      "24h",
	"HEURISTICS_FILE":       "",
	"PEAK_TIMEZONE":         "Asia/Kolkata",
	"LOG_LEVEL":             "info",
}

// LoadConfig reads app.env from path. A missing file is not an error;
// environment variables override both the file and the defaults.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: failed to read config: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: failed to decode config: %w", err)
	}
	return config, nil
}

// Validate checks the settings needed to talk to the provider.
func (c Config) Validate() error {
	if c.TomTomAPIKey == "" {
		return errors.New("config: TOMTOM_API_KEY is required")
	}
	if c.RouteSamplePoints < 1 {
		return fmt.Errorf("config: ROUTE_SAMPLE_POINTS must be at least 1, got %d", c.RouteSamplePoints)
	}
	if c.ProviderTimeout <= 0 {
		return fmt.Errorf("config: PROVIDER_TIMEOUT must be positive, got %s", c.ProviderTimeout)
	}
	return nil
}

// Location returns the time zone used for the peak-hour traffic heuristic.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.PeakTimezone)
	if err != nil {
		return nil, fmt.Errorf("config: invalid PEAK_TIMEZONE %q: %w", c.PeakTimezone, err)
	}
	return loc, nil
}

// PeakClock returns a wall clock reading in PEAK_TIMEZONE.
func (c Config) PeakClock() (func() time.Time, error) {
	loc, err := c.Location()
	if err != nil {
		return nil, err
	}
	return func() time.Time {
		return time.Now().In(loc)
	}, nil
}
