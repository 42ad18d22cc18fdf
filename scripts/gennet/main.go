// Package main provides a standalone generator that writes a synthetic road
// network as a YAML dataset file the routegrid server can load at startup
// via NETWORK_FILE.
//
// Usage:
//
//	OUT=network.yaml NODE_COUNT=80 SEED=7 go run ./scripts/gennet
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// config holds environment-driven generator settings.
type config struct {
	Out       string
	Name      string
	NodeCount int
	RadiusKm  float64
	CenterLat float64
	CenterLng float64
	Seed      uint64
}

// report holds the final generation summary.
type report struct {
	Out           string
	Name          string
	Nodes         int
	Edges         int
	Bidirectional int
	Seed          uint64
	Duration      time.Duration
	Err           error
}

func loadConfig() config {
	cfg := config{
		Out:       envOr("OUT", "network.yaml"),
		Name:      envOr("NAME", "generated"),
		NodeCount: envIntOr("NODE_COUNT", 60),
		RadiusKm:  envFloatOr("RADIUS_KM", 25),
		CenterLat: envFloatOr("CENTER_LAT", 52.5200),
		CenterLng: envFloatOr("CENTER_LNG", 13.4050),
		Seed:      uint64(envIntOr("SEED", 1)),
	}
	return cfg
}

func main() {
	cfg := loadConfig()

	if cfg.NodeCount < 2 {
		slog.Error("NODE_COUNT must be at least 2", "value", cfg.NodeCount)
		os.Exit(1)
	}
	if cfg.RadiusKm <= 0 {
		slog.Error("RADIUS_KM must be positive", "value", cfg.RadiusKm)
		os.Exit(1)
	}

	r := run(cfg)
	printReport(r)
	if r.Err != nil {
		os.Exit(1)
	}
}

func run(cfg config) *report {
	start := time.Now()
	r := &report{Out: cfg.Out, Name: cfg.Name, Seed: cfg.Seed}

	ds := generate(cfg)
	r.Nodes = len(ds.Nodes)
	r.Edges = len(ds.Edges)
	for _, e := range ds.Edges {
		if e.Bidirectional {
			r.Bidirectional++
		}
	}

	data, err := yaml.Marshal(ds)
	if err != nil {
		r.Err = fmt.Errorf("marshal dataset: %w", err)
		return r
	}

	if err := os.WriteFile(cfg.Out, data, 0o644); err != nil {
		r.Err = fmt.Errorf("write %s: %w", cfg.Out, err)
		return r
	}

	r.Duration = time.Since(start)
	return r
}

// printReport outputs the final generation summary.
func printReport(r *report) {
	fmt.Println()
	fmt.Println("=== Network Generation Report ===")
	fmt.Printf("Output: %s\n", r.Out)
	fmt.Printf("Dataset: %s (seed %d)\n", r.Name, r.Seed)
	fmt.Println()
	fmt.Printf("Nodes: %d\n", r.Nodes)
	fmt.Printf("Edges: %d (%d bidirectional)\n", r.Edges, r.Bidirectional)

	fmt.Printf("\nDuration: %.1fs\n", r.Duration.Seconds())
	if r.Err != nil {
		fmt.Printf("Status: FAILED — %v\n", r.Err)
	} else {
		fmt.Println("Status: SUCCESS")
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("unparseable integer, using default", "key", key, "value", v)
		return def
	}
	return n
}

func envFloatOr(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("unparseable float, using default", "key", key, "value", v)
		return def
	}
	return f
}
