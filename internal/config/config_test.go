package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.ServerAddress)
	assert.Equal(t, "https://api.tomtom.com", cfg.TomTomBaseURL)
	assert.Equal(t, "IN", cfg.TomTomCountrySet)
	assert.Equal(t, 5*time.Second, cfg.ProviderTimeout)
	assert.Equal(t, 200*time.Millisecond, cfg.ProviderMinInterval)
	assert.Equal(t, 2, cfg.RouteSamplePoints)
	assert.Equal(t, 500*time.Millisecond, cfg.RoutePointDelay)
	assert.Equal(t, 24*time.Hour, cfg.SignalCacheTTL)
	assert.Equal(t, "Asia/Kolkata", cfg.PeakTimezone)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.DBSource)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	content := "TOMTOM_API_KEY=file-key\nROUTE_SAMPLE_POINTS=3\nROUTE_POINT_DELAY=1s\nLOG_LEVEL=debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o600))

	t.Setenv("TOMTOM_API_KEY", "env-key")
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:9090")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.TomTomAPIKey)
	assert.Equal(t, "127.0.0.1:9090", cfg.ServerAddress)
	assert.Equal(t, 3, cfg.RouteSamplePoints)
	assert.Equal(t, time.Second, cfg.RoutePointDelay)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{TomTomAPIKey: "key", RouteSamplePoints: 2, ProviderTimeout: time.Second}

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{name: "valid", modify: func(*Config) {}},
		{name: "missing key", modify: func(c *Config) { c.TomTomAPIKey = "" }, wantErr: true},
		{name: "no sample points", modify: func(c *Config) { c.RouteSamplePoints = 0 }, wantErr: true},
		{name: "no timeout", modify: func(c *Config) { c.ProviderTimeout = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_Location(t *testing.T) {
	loc, err := Config{PeakTimezone: "Asia/Kolkata"}.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Kolkata", loc.String())

	_, err = Config{PeakTimezone: "Mars/Olympus"}.Location()
	assert.Error(t, err)
}

func TestConfig_PeakClock(t *testing.T) {
	clock, err := Config{PeakTimezone: "Asia/Kolkata"}.PeakClock()
	require.NoError(t, err)

	now := clock()
	assert.Equal(t, "Asia/Kolkata", now.Location().String())
	assert.WithinDuration(t, time.Now(), now, time.Minute)

	_, err = Config{PeakTimezone: "Mars/Olympus"}.PeakClock()
	assert.Error(t, err)
}
