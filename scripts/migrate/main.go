// Package main provides a standalone migration script that copies a road
// network from one routegrid server to another over the REST API. Typical
// use is seeding a staging environment from production.
//
// Usage:
//
//	SOURCE_URL=http://prod:8080 TARGET_URL=http://staging:8080 go run ./scripts/migrate
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"
)

const clientTimeout = 30 * time.Second

// config holds environment-driven copy settings.
type config struct {
	SourceURL string
	TargetURL string
	DryRun    bool
	api       *apiClient
}

// skippedEdge records an edge that was skipped during the copy.
type skippedEdge struct {
	ID     string
	From   string
	To     string
	Reason string
}

// report holds the final copy summary.
type report struct {
	Source        string
	Target        string
	NodesRead     int
	NodesApplied  int
	NodesVerified int
	EdgesRead     int
	EdgesApplied  int
	EdgesSkipped  int
	EdgesVerified int
	EdgesBlocked  int
	SkippedEdges  []skippedEdge
	SpotChecks    []string
	Duration      time.Duration
	DryRun        bool
	Err           error
}

func main() {
	cfg := loadConfig()
	if cfg.TargetURL == "" {
		slog.Error("TARGET_URL is required")
		os.Exit(1)
	}
	if cfg.SourceURL == cfg.TargetURL {
		slog.Error("SOURCE_URL and TARGET_URL must differ")
		os.Exit(1)
	}

	cfg.api = &apiClient{http: &http.Client{Timeout: clientTimeout}}

	slog.Info("starting network copy",
		"source", sanitizeURL(cfg.SourceURL),
		"target", sanitizeURL(cfg.TargetURL),
		"dry_run", cfg.DryRun,
	)

	start := time.Now()
	r, err := runCopy(context.Background(), cfg)
	r.Duration = time.Since(start)
	if err != nil {
		r.Err = err
		slog.Error("network copy failed", "error", err)
	}
	printReport(&r)
	if err != nil {
		os.Exit(1)
	}
}

// loadConfig reads configuration from environment variables.
func loadConfig() config {
	return config{
		SourceURL: envOr("SOURCE_URL", "http://localhost:8080"),
		TargetURL: envOr("TARGET_URL", ""),
		DryRun:    os.Getenv("DRY_RUN") == "true" || os.Getenv("DRY_RUN") == "1",
	}
}

// runCopy executes the full copy pipeline.
//
//nolint:funlen // Copy pipeline is sequential; splitting would hurt readability.
func runCopy(ctx context.Context, cfg config) (report, error) {
	r := report{
		Source: sanitizeURL(cfg.SourceURL),
		Target: sanitizeURL(cfg.TargetURL),
		DryRun: cfg.DryRun,
	}

	// Read nodes and edges from the source server.
	nodes, err := fetchNodes(ctx, cfg.api, cfg.SourceURL)
	if err != nil {
		return r, fmt.Errorf("fetch nodes: %w", err)
	}
	r.NodesRead = len(nodes)
	slog.Info("read nodes from source", "count", r.NodesRead)

	edges, err := fetchEdges(ctx, cfg.api, cfg.SourceURL)
	if err != nil {
		return r, fmt.Errorf("fetch edges: %w", err)
	}
	r.EdgesRead = len(edges)
	slog.Info("read edges from source", "count", r.EdgesRead)

	if cfg.DryRun {
		slog.Info("dry run — skipping target writes")
		r.NodesApplied = r.NodesRead
		r.EdgesApplied = r.EdgesRead
		return r, nil
	}

	// Confirm the target is reachable before writing anything.
	health, err := checkHealth(ctx, cfg.api, cfg.TargetURL)
	if err != nil {
		return r, fmt.Errorf("target health: %w", err)
	}
	slog.Info("target reachable", "version", health.Version, "nodes", health.Nodes, "edges", health.Edges)

	applied, err := createNodes(ctx, cfg.api, cfg.TargetURL, nodes)
	if err != nil {
		return r, fmt.Errorf("create nodes: %w", err)
	}
	r.NodesApplied = applied
	slog.Info("applied nodes", "count", r.NodesApplied)

	appliedEdges, blocked, skipped := createEdges(ctx, cfg.api, cfg.TargetURL, edges, buildNodeSet(nodes))
	r.EdgesApplied = appliedEdges
	r.EdgesBlocked = blocked
	r.EdgesSkipped = len(skipped)
	r.SkippedEdges = skipped
	slog.Info("applied edges", "count", r.EdgesApplied, "skipped", r.EdgesSkipped)

	// Verify counts against the target's stats endpoint.
	stats, err := fetchStats(ctx, cfg.api, cfg.TargetURL)
	if err != nil {
		return r, fmt.Errorf("verify counts: %w", err)
	}
	r.NodesVerified = stats.Nodes
	r.EdgesVerified = stats.Edges

	// Spot-check random nodes on the target.
	r.SpotChecks = spotCheck(ctx, cfg.api, cfg.TargetURL, nodes)

	return r, nil
}
