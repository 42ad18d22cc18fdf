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

func TestNetworkRebuild_EmptyBodyUsesDefaults(t *testing.T) {
	t.Parallel()

	repo := &mockNetworkRepo{
		rebuildFn: func(_ context.Context, req models.RebuildRequest) (*models.NetworkStats, error) {
			if req.Center != nil || req.NodeCount != 0 || req.Seed != nil {
				t.Errorf("expected zero request, got %+v", req)
			}
			return &models.NetworkStats{
				Nodes:  60,
				Edges:  150,
				Levels: map[models.TrafficLevel]int{models.TrafficLow: 150},
			}, nil
		},
	}

	r := gin.New()
	h := api.NewNetworkHandler(repo, testLogger())
	r.POST("/network/rebuild", h.Rebuild)

	w := doRequest(r, http.MethodPost, "/network/rebuild", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var stats models.NetworkStats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if stats.Nodes != 60 || stats.Edges != 150 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestNetworkRebuild_PassesAllFields(t *testing.T) {
	t.Parallel()

	repo := &mockNetworkRepo{
		rebuildFn: func(_ context.Context, req models.RebuildRequest) (*models.NetworkStats, error) {
			if req.Center == nil || req.Center.Lat != 48.8566 || req.Center.Lng != 2.3522 {
				t.Errorf("unexpected center: %+v", req.Center)
			}
			if req.RadiusKm != 15 || req.NodeCount != 120 {
				t.Errorf("unexpected radius/count: %+v", req)
			}
			if req.Seed == nil || *req.Seed != 42 {
				t.Errorf("unexpected seed: %v", req.Seed)
			}
			return &models.NetworkStats{Nodes: 120, Edges: 310}, nil
		},
	}

	r := gin.New()
	h := api.NewNetworkHandler(repo, testLogger())
	r.POST("/network/rebuild", h.Rebuild)

	body := `{"center":{"lat":48.8566,"lng":2.3522},"radius_km":15,"node_count":120,"seed":42}`
	w := doRequest(r, http.MethodPost, "/network/rebuild", body)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestNetworkRebuild_InvalidCenter(t *testing.T) {
	t.Parallel()

	r := gin.New()
	h := api.NewNetworkHandler(&mockNetworkRepo{}, testLogger())
	r.POST("/network/rebuild", h.Rebuild)

	w := doRequest(r, http.MethodPost, "/network/rebuild", `{"center":{"lat":91,"lng":0}}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestNetworkRebuild_NodeCountTooLarge(t *testing.T) {
	t.Parallel()

	r := gin.New()
	h := api.NewNetworkHandler(&mockNetworkRepo{}, testLogger())
	r.POST("/network/rebuild", h.Rebuild)

	w := doRequest(r, http.MethodPost, "/network/rebuild", `{"node_count":20000}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestNetworkStats(t *testing.T) {
	t.Parallel()

	repo := &mockNetworkRepo{
		statsFn: func(_ context.Context) (*models.NetworkStats, error) {
			return &models.NetworkStats{
				Nodes:        10,
				Edges:        24,
				BlockedEdges: 3,
				Levels:       map[models.TrafficLevel]int{models.TrafficLow: 20, models.TrafficHigh: 4},
			}, nil
		},
	}

	r := gin.New()
	h := api.NewNetworkHandler(repo, testLogger())
	r.GET("/network/stats", h.Stats)

	w := doRequest(r, http.MethodGet, "/network/stats", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var stats models.NetworkStats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if stats.BlockedEdges != 3 || stats.Levels[models.TrafficHigh] != 4 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}
