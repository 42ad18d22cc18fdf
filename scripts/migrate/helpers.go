package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/url"
	"os"
)

// apiClient wraps an http.Client with JSON helpers for the routegrid API.
type apiClient struct {
	http *http.Client
}

// getJSON performs a GET and decodes a 200 response into out.
func (c *apiClient) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return decodeError(resp.StatusCode, body)
	}
	return json.Unmarshal(body, out)
}

// postJSON performs a POST and returns the status code. For non-2xx
// responses the error carries the server's message.
func (c *apiClient) postJSON(ctx context.Context, rawURL string, in, out any) (int, error) {
	return c.send(ctx, http.MethodPost, rawURL, in, out)
}

// putJSON performs a PUT and returns the status code.
func (c *apiClient) putJSON(ctx context.Context, rawURL string, in any) (int, error) {
	return c.send(ctx, http.MethodPut, rawURL, in, nil)
}

func (c *apiClient) send(ctx context.Context, method, rawURL string, in, out any) (int, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return 0, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, decodeError(resp.StatusCode, body)
	}
	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

// decodeError extracts the API's {code, message} error envelope, falling back
// to the raw status when the body is not in that shape.
func decodeError(status int, body []byte) error {
	var e struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &e) == nil && e.Message != "" {
		return fmt.Errorf("%s: %s", e.Code, e.Message)
	}
	return fmt.Errorf("unexpected status %d", status)
}

// healthInfo is the subset of /api/v1/health used for the precheck.
type healthInfo struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Nodes   int    `json:"nodes"`
	Edges   int    `json:"edges"`
}

// checkHealth confirms a server answers its health endpoint.
func checkHealth(ctx context.Context, api *apiClient, base string) (healthInfo, error) {
	var h healthInfo
	err := api.getJSON(ctx, base+"/api/v1/health", &h)
	return h, err
}

// netStats is the subset of /api/v1/network/stats used for verification.
type netStats struct {
	Nodes int `json:"nodes"`
	Edges int `json:"edges"`
}

// fetchStats reads node and edge counts from a server.
func fetchStats(ctx context.Context, api *apiClient, base string) (netStats, error) {
	var s netStats
	err := api.getJSON(ctx, base+"/api/v1/network/stats", &s)
	return s, err
}

// spotCheck verifies 5 random nodes match between source and target.
func spotCheck(ctx context.Context, api *apiClient, base string, nodes []node) []string {
	if len(nodes) == 0 {
		return nil
	}
	count := min(5, len(nodes))
	indices := rand.Perm(len(nodes))[:count]
	var checks []string

	for _, idx := range indices {
		n := nodes[idx]
		var got node
		if err := api.getJSON(ctx, base+"/api/v1/nodes/"+url.PathEscape(n.ID), &got); err != nil {
			checks = append(checks, fmt.Sprintf("❌ %s — not found on target: %v", n.ID, err))
			continue
		}
		if got.Name == n.Name && got.Kind == n.Kind &&
			got.Location.Lat == n.Location.Lat && got.Location.Lng == n.Location.Lng {
			checks = append(checks, fmt.Sprintf("✅ %s — name=%s, kind=%s", n.ID, got.Name, got.Kind))
		} else {
			checks = append(checks, fmt.Sprintf("❌ %s — mismatch: target(%s/%s %.5f,%.5f) vs source(%s/%s %.5f,%.5f)",
				n.ID, got.Name, got.Kind, got.Location.Lat, got.Location.Lng,
				n.Name, n.Kind, n.Location.Lat, n.Location.Lng))
		}
	}
	return checks
}

// sanitizeURL removes credentials from a URL for display.
func sanitizeURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "[unparseable URL]"
	}
	u.User = nil
	return u.String()
}

// envOr returns the environment variable value or a default.
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// printReport outputs the final copy summary.
func printReport(r *report) {
	nodeStatus := statusIcon(r.NodesRead, r.NodesApplied, r.NodesVerified)
	edgeStatus := statusIcon(r.EdgesApplied, r.EdgesApplied, r.EdgesVerified)

	fmt.Println()
	fmt.Println("=== Network Copy Report ===")
	if r.DryRun {
		fmt.Println("MODE: DRY RUN (no changes made)")
	}
	fmt.Printf("Source: %s\n", r.Source)
	fmt.Printf("Target: %s\n", r.Target)
	fmt.Println()
	fmt.Printf("Nodes: %d read → %d applied → %d verified %s\n",
		r.NodesRead, r.NodesApplied, r.NodesVerified, nodeStatus)
	if r.EdgesSkipped > 0 {
		fmt.Printf("Edges: %d read → %d applied (%d skipped) → %d verified %s\n",
			r.EdgesRead, r.EdgesApplied, r.EdgesSkipped, r.EdgesVerified, edgeStatus)
	} else {
		fmt.Printf("Edges: %d read → %d applied → %d verified %s\n",
			r.EdgesRead, r.EdgesApplied, r.EdgesVerified, edgeStatus)
	}
	if r.EdgesBlocked > 0 {
		fmt.Printf("Blocked edges restored: %d\n", r.EdgesBlocked)
	}

	if len(r.SkippedEdges) > 0 {
		fmt.Println("\nSkipped edges:")
		for _, s := range r.SkippedEdges {
			fmt.Printf("  - %s (%s → %s): %s\n", s.ID, s.From, s.To, s.Reason)
		}
	}

	if len(r.SpotChecks) > 0 {
		fmt.Println("\nSpot checks:")
		for _, c := range r.SpotChecks {
			fmt.Printf("  %s\n", c)
		}
	}

	fmt.Printf("\nDuration: %.1fs\n", r.Duration.Seconds())
	if r.Err != nil {
		fmt.Printf("Status: FAILED — %v\n", r.Err)
	} else {
		fmt.Println("Status: SUCCESS")
	}
}

// statusIcon returns a check or X based on count match.
func statusIcon(expected, applied, verified int) string {
	if verified == 0 && applied > 0 {
		return "⏳"
	}
	if expected == applied && applied == verified {
		return "✅"
	}
	if applied == verified {
		return "✅"
	}
	return "❌"
}
