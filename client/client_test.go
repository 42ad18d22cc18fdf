package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// newTestServer creates a test server that routes to the given handler map.
// Keys are "METHOD /path", values are handler funcs.
func newTestServer(t *testing.T, routes map[string]http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	mux := http.NewServeMux()
	for pattern, handler := range routes {
		mux.HandleFunc(pattern, handler)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	c := New(srv.URL)
	return srv, c
}

func jsonResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func TestHealth(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/health": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, HealthResponse{Status: "ok", Version: "0.3.0", Nodes: 60, Edges: 144})
		},
	})
	resp, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("Health() error: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("got status %q, want ok", resp.Status)
	}
	if resp.Nodes != 60 {
		t.Errorf("got nodes %d, want 60", resp.Nodes)
	}
}

func TestResolve(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/resolve": func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("lat") == "" || r.URL.Query().Get("lng") == "" {
				jsonResponse(w, 400, map[string]string{"code": "invalid_request", "message": "lat is required"})
				return
			}
			jsonResponse(w, 200, NearestResult{Node: Node{ID: "n7", Name: "Oldgate"}, DistanceKm: 0.42})
		},
	})

	res, err := c.Resolve(context.Background(), 52.52, 13.405)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if res.Node.ID != "n7" {
		t.Errorf("got node %q, want n7", res.Node.ID)
	}
	if res.DistanceKm != 0.42 {
		t.Errorf("got distance %f, want 0.42", res.DistanceKm)
	}
}

func TestNodesCRUD(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/nodes": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, map[string]any{"nodes": []Node{{ID: "n1", Name: "Northgate"}}, "count": 1})
		},
		"POST /api/v1/nodes": func(w http.ResponseWriter, r *http.Request) {
			var req CreateNodeRequest
			json.NewDecoder(r.Body).Decode(&req) //nolint:errcheck
			jsonResponse(w, 201, Node{ID: req.ID, Name: req.Name, Kind: req.Kind, Location: Coordinate{Lat: req.Lat, Lng: req.Lng}})
		},
		"GET /api/v1/nodes/n1": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, Node{ID: "n1", Name: "Northgate"})
		},
		"DELETE /api/v1/nodes/n1": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, map[string]any{"deleted": true, "removed_edges": 3})
		},
	})

	ctx := context.Background()

	nodes, err := c.Nodes.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(nodes) != 1 {
		t.Errorf("List: got %d nodes", len(nodes))
	}

	node, err := c.Nodes.Create(ctx, &CreateNodeRequest{ID: "n2", Name: "Southbridge", Lat: 52.5, Lng: 13.4, Kind: "landmark"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if node.Name != "Southbridge" {
		t.Errorf("Create: got name %q", node.Name)
	}
	if node.Location.Lat != 52.5 {
		t.Errorf("Create: got lat %f", node.Location.Lat)
	}

	node, err = c.Nodes.Get(ctx, "n1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if node.ID != "n1" {
		t.Errorf("Get: got id %q", node.ID)
	}

	removed, err := c.Nodes.Delete(ctx, "n1")
	if err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if removed != 3 {
		t.Errorf("Delete: got %d removed edges, want 3", removed)
	}
}

func TestEdgesCRUD(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/edges": func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("blocked") == "true" {
				jsonResponse(w, 200, map[string]any{"edges": []Edge{{ID: "e2", Blocked: true}}, "count": 1})
				return
			}
			jsonResponse(w, 200, map[string]any{"edges": []Edge{{ID: "e1", From: "a", To: "b"}, {ID: "e2", Blocked: true}}, "count": 2})
		},
		"POST /api/v1/edges": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 201, Edge{ID: "e3", From: "a", To: "c", DistanceKm: 2.5})
		},
		"GET /api/v1/edges/e1": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, Edge{ID: "e1", From: "a", To: "b"})
		},
		"PUT /api/v1/edges/e1/weight": func(w http.ResponseWriter, r *http.Request) {
			var req setWeightRequest
			json.NewDecoder(r.Body).Decode(&req) //nolint:errcheck
			jsonResponse(w, 200, Edge{ID: "e1", CurrentWeight: req.Weight})
		},
		"PUT /api/v1/edges/e1/blocked": func(w http.ResponseWriter, r *http.Request) {
			var req setBlockedRequest
			json.NewDecoder(r.Body).Decode(&req) //nolint:errcheck
			jsonResponse(w, 200, Edge{ID: "e1", Blocked: req.Blocked})
		},
		"DELETE /api/v1/edges/e1": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, map[string]bool{"deleted": true})
		},
	})

	ctx := context.Background()

	edges, err := c.Edges.List(ctx, nil)
	if err != nil || len(edges) != 2 {
		t.Fatalf("List error: %v, len=%d", err, len(edges))
	}

	blocked := true
	edges, err = c.Edges.List(ctx, &EdgeListOptions{Blocked: &blocked})
	if err != nil || len(edges) != 1 {
		t.Fatalf("List blocked: err=%v, len=%d", err, len(edges))
	}
	if edges[0].ID != "e2" {
		t.Errorf("List blocked: got %q, want e2", edges[0].ID)
	}

	edge, err := c.Edges.Create(ctx, &CreateEdgeRequest{From: "a", To: "c", DistanceKm: 2.5})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if edge.To != "c" {
		t.Errorf("Create: got to %q", edge.To)
	}

	edge, err = c.Edges.Get(ctx, "e1")
	if err != nil || edge.ID != "e1" {
		t.Fatalf("Get: err=%v", err)
	}

	edge, err = c.Edges.SetWeight(ctx, "e1", 9.5)
	if err != nil {
		t.Fatalf("SetWeight error: %v", err)
	}
	if edge.CurrentWeight != 9.5 {
		t.Errorf("SetWeight: got weight %f", edge.CurrentWeight)
	}

	edge, err = c.Edges.SetBlocked(ctx, "e1", true)
	if err != nil {
		t.Fatalf("SetBlocked error: %v", err)
	}
	if !edge.Blocked {
		t.Error("SetBlocked: edge not blocked")
	}

	if err := c.Edges.Delete(ctx, "e1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestRouteFind(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"POST /api/v1/routes": func(w http.ResponseWriter, r *http.Request) {
			var req RouteRequest
			json.NewDecoder(r.Body).Decode(&req) //nolint:errcheck
			if req.To == "island" {
				jsonResponse(w, 200, map[string]any{
					"path": []string{}, "total_cost": nil, "estimated_time_minutes": nil,
					"visited_nodes": []string{"a"}, "algorithm": "dijkstra", "found": false,
				})
				return
			}
			cost := 3.5
			eta := 4.2
			jsonResponse(w, 200, PathResult{
				Path: []string{"a", "b", "c"}, TotalCost: &cost, EstimatedTimeMinutes: &eta,
				Algorithm: "dijkstra", Found: true,
			})
		},
	})

	ctx := context.Background()

	result, err := c.Routes.Find(ctx, &RouteRequest{From: "a", To: "c"})
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if !result.Found || len(result.Path) != 3 {
		t.Errorf("Find: found=%v, path=%v", result.Found, result.Path)
	}
	if result.TotalCost == nil || *result.TotalCost != 3.5 {
		t.Errorf("Find: got cost %v", result.TotalCost)
	}

	result, err = c.Routes.Find(ctx, &RouteRequest{From: "a", To: "island"})
	if err != nil {
		t.Fatalf("Find unreachable error: %v", err)
	}
	if result.Found {
		t.Error("Find unreachable: found should be false")
	}
	if result.TotalCost != nil {
		t.Errorf("Find unreachable: cost should be nil, got %v", *result.TotalCost)
	}
}

func TestRouteCompare(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"POST /api/v1/routes/compare": func(w http.ResponseWriter, _ *http.Request) {
			cost := 3.5
			jsonResponse(w, 200, map[string]any{"results": []PathResult{
				{Algorithm: "dijkstra", Found: true, TotalCost: &cost},
				{Algorithm: "astar", Found: true, TotalCost: &cost},
				{Algorithm: "bellman-ford", Found: true, TotalCost: &cost},
			}})
		},
	})

	results, err := c.Routes.Compare(context.Background(), &RouteRequest{From: "a", To: "c"})
	if err != nil {
		t.Fatalf("Compare error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Compare: got %d results, want 3", len(results))
	}
	if results[1].Algorithm != "astar" {
		t.Errorf("Compare: got algorithm %q", results[1].Algorithm)
	}
}

func TestTraffic(t *testing.T) {
	var gotBody []byte
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"POST /api/v1/traffic/tick": func(w http.ResponseWriter, r *http.Request) {
			gotBody, _ = io.ReadAll(r.Body)
			jsonResponse(w, 200, TickResult{UpdatedEdges: 144, Levels: map[string]int{"low": 100, "medium": 30, "high": 14}})
		},
		"GET /api/v1/traffic": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, CongestionSummary{Levels: map[string]int{"low": 100}, BlockedEdges: 2})
		},
	})

	ctx := context.Background()

	result, err := c.Traffic.Tick(ctx)
	if err != nil {
		t.Fatalf("Tick error: %v", err)
	}
	if result.UpdatedEdges != 144 {
		t.Errorf("Tick: got %d updated edges", result.UpdatedEdges)
	}
	if len(gotBody) != 0 {
		t.Errorf("Tick: expected empty body, got %q", gotBody)
	}

	pinned := time.Date(2025, 3, 3, 8, 30, 0, 0, time.UTC)
	if _, err := c.Traffic.TickAt(ctx, pinned); err != nil {
		t.Fatalf("TickAt error: %v", err)
	}
	var req tickRequest
	if err := json.Unmarshal(gotBody, &req); err != nil {
		t.Fatalf("TickAt body: %v", err)
	}
	if req.Now != "2025-03-03T08:30:00Z" {
		t.Errorf("TickAt: got now %q", req.Now)
	}

	summary, err := c.Traffic.Congestion(ctx)
	if err != nil {
		t.Fatalf("Congestion error: %v", err)
	}
	if summary.BlockedEdges != 2 {
		t.Errorf("Congestion: got %d blocked edges", summary.BlockedEdges)
	}
}

func TestNetwork(t *testing.T) {
	var gotBody []byte
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"POST /api/v1/network/rebuild": func(w http.ResponseWriter, r *http.Request) {
			gotBody, _ = io.ReadAll(r.Body)
			jsonResponse(w, 200, NetworkStats{Nodes: 100, Edges: 240})
		},
		"GET /api/v1/network/stats": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, NetworkStats{Nodes: 60, Edges: 144, BlockedEdges: 1})
		},
	})

	ctx := context.Background()

	stats, err := c.Network.Rebuild(ctx, nil)
	if err != nil {
		t.Fatalf("Rebuild error: %v", err)
	}
	if stats.Nodes != 100 {
		t.Errorf("Rebuild: got %d nodes", stats.Nodes)
	}
	if len(gotBody) != 0 {
		t.Errorf("Rebuild: expected empty body for nil request, got %q", gotBody)
	}

	seed := int64(42)
	if _, err := c.Network.Rebuild(ctx, &RebuildRequest{NodeCount: 100, Seed: &seed}); err != nil {
		t.Fatalf("Rebuild with request error: %v", err)
	}
	var req RebuildRequest
	if err := json.Unmarshal(gotBody, &req); err != nil {
		t.Fatalf("Rebuild body: %v", err)
	}
	if req.NodeCount != 100 || req.Seed == nil || *req.Seed != 42 {
		t.Errorf("Rebuild: got body %+v", req)
	}

	stats, err = c.Network.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats error: %v", err)
	}
	if stats.Edges != 144 {
		t.Errorf("Stats: got %d edges", stats.Edges)
	}
}

func TestAPIError(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/nodes/missing": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 404, map[string]string{"code": "not_found", "message": "node not found"})
		},
		"POST /api/v1/nodes": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 409, map[string]string{"code": "conflict", "message": "duplicate"})
		},
		"POST /api/v1/edges": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 422, map[string]string{"code": "invalid_reference", "message": "from node does not exist"})
		},
	})

	ctx := context.Background()

	_, err := c.Nodes.Get(ctx, "missing")
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsNotFound(err) {
		t.Errorf("expected not found, got: %v", err)
	}

	_, err = c.Nodes.Create(ctx, &CreateNodeRequest{ID: "dup", Name: "x", Lat: 1, Lng: 1})
	if !IsConflict(err) {
		t.Errorf("expected conflict, got: %v", err)
	}

	_, err = c.Edges.Create(ctx, &CreateEdgeRequest{From: "ghost", To: "b"})
	if !IsInvalidReference(err) {
		t.Errorf("expected invalid reference, got: %v", err)
	}
}
