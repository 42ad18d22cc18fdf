package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/routegrid/routegrid/internal/api"
	"github.com/routegrid/routegrid/internal/models"
)

func TestLiveness_ReturnsOK(t *testing.T) {
	t.Parallel()

	repo := &mockNetworkRepo{
		statsFn: func(_ context.Context) (*models.NetworkStats, error) {
			return &models.NetworkStats{Nodes: 40, Edges: 96}, nil
		},
	}

	h := api.NewHealthHandler(repo, nil, testLogger(), "test-v1")

	r := gin.New()
	r.GET("/health", h.Liveness)

	w := doRequest(r, http.MethodGet, "/health", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %v", body["status"])
	}

	if body["version"] != "test-v1" {
		t.Errorf("expected version 'test-v1', got %v", body["version"])
	}

	if body["nodes"] != float64(40) {
		t.Errorf("expected 40 nodes, got %v", body["nodes"])
	}
}

func TestReadiness_EmptyGraphNotReady(t *testing.T) {
	t.Parallel()

	repo := &mockNetworkRepo{
		statsFn: func(_ context.Context) (*models.NetworkStats, error) {
			return &models.NetworkStats{}, nil
		},
	}

	h := api.NewHealthHandler(repo, nil, testLogger(), "test-v1")

	r := gin.New()
	r.GET("/ready", h.Readiness)

	w := doRequest(r, http.MethodGet, "/ready", "")

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if body.Status != "not_ready" || body.Checks["graph"] != "empty" {
		t.Errorf("unexpected readiness body: %+v", body)
	}
}

func TestReadiness_PopulatedGraphReady(t *testing.T) {
	t.Parallel()

	repo := &mockNetworkRepo{
		statsFn: func(_ context.Context) (*models.NetworkStats, error) {
			return &models.NetworkStats{Nodes: 2, Edges: 1}, nil
		},
	}

	h := api.NewHealthHandler(repo, nil, testLogger(), "test-v1")

	r := gin.New()
	r.GET("/ready", h.Readiness)

	w := doRequest(r, http.MethodGet, "/ready", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}
