// Package config provides environment-driven configuration for routegrid.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration values.
type Config struct {
	Port        string
	ListenHost  string
	CORSOrigins []string
	LogLevel    string
	LogFormat   string

	// TickInterval drives the background traffic worker; zero disables it.
	TickInterval time.Duration
	TrafficSeed  int64

	// NetworkFile and OSMFile select the startup graph source. At most one
	// may be set; with neither, a synthetic network is generated.
	NetworkFile string
	OSMFile     string

	// Synthetic generation parameters, also the rebuild endpoint defaults.
	CenterLat float64
	CenterLng float64
	RadiusKm  float64
	NodeCount int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        envOrDefault("PORT", "8080"),
		ListenHost:  envOrDefault("LISTEN_HOST", "127.0.0.1"),
		LogLevel:    envOrDefault("LOG_LEVEL", "info"),
		LogFormat:   envOrDefault("LOG_FORMAT", "text"),
		NetworkFile: envOrDefault("NETWORK_FILE", ""),
		OSMFile:     envOrDefault("OSM_FILE", ""),
	}

	interval, err := time.ParseDuration(envOrDefault("TICK_INTERVAL", "30s"))
	if err != nil {
		return nil, fmt.Errorf("TICK_INTERVAL must be a duration like 30s or 0: %w", err)
	}
	cfg.TickInterval = interval

	seed, err := strconv.ParseInt(envOrDefault("TRAFFIC_SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("TRAFFIC_SEED must be an integer: %w", err)
	}
	cfg.TrafficSeed = seed

	if cfg.CenterLat, err = parseFloatEnv("CENTER_LAT", "52.5200"); err != nil {
		return nil, err
	}
	if cfg.CenterLng, err = parseFloatEnv("CENTER_LNG", "13.4050"); err != nil {
		return nil, err
	}
	if cfg.RadiusKm, err = parseFloatEnv("RADIUS_KM", "25"); err != nil {
		return nil, err
	}

	nodeCount, err := strconv.Atoi(envOrDefault("NODE_COUNT", "60"))
	if err != nil {
		return nil, fmt.Errorf("NODE_COUNT must be an integer: %w", err)
	}
	cfg.NodeCount = nodeCount

	origins := envOrDefault("CORS_ORIGINS", "http://localhost:5173")
	cfg.CORSOrigins = strings.Split(origins, ",")

	for i, o := range cfg.CORSOrigins {
		cfg.CORSOrigins[i] = strings.TrimSpace(o)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address in host:port format.
func (c *Config) Addr() string {
	return c.ListenHost + ":" + c.Port
}

func parseFloatEnv(key, fallback string) (float64, error) {
	v, err := strconv.ParseFloat(envOrDefault(key, fallback), 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}

	return v, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
