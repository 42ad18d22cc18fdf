package client

import (
	"time"
)

// Coordinate is a WGS84 position.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Node represents a junction or point of interest in the road network.
type Node struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Location  Coordinate `json:"location"`
	Kind      string     `json:"kind"`
	CreatedAt time.Time  `json:"created_at"`
}

// Edge represents a directed road segment between two nodes.
type Edge struct {
	ID              string    `json:"id"`
	From            string    `json:"from"`
	To              string    `json:"to"`
	DistanceKm      float64   `json:"distance_km"`
	DurationMinutes float64   `json:"duration_minutes"`
	RoadKind        string    `json:"road_kind"`
	BaseWeight      float64   `json:"base_weight"`
	CurrentWeight   float64   `json:"current_weight"`
	Blocked         bool      `json:"is_blocked"`
	TrafficLevel    string    `json:"traffic_level"`
	CreatedAt       time.Time `json:"created_at"`
}

// CreateNodeRequest is the payload for creating a node.
type CreateNodeRequest struct {
	ID   string  `json:"id,omitempty"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Kind string  `json:"kind,omitempty"`
}

// CreateEdgeRequest is the payload for creating an edge. Distance and
// duration default server-side from the endpoint geometry when omitted.
type CreateEdgeRequest struct {
	ID              string  `json:"id,omitempty"`
	From            string  `json:"from"`
	To              string  `json:"to"`
	DistanceKm      float64 `json:"distance_km,omitempty"`
	DurationMinutes float64 `json:"duration_minutes,omitempty"`
	RoadKind        string  `json:"road_kind,omitempty"`
}

// RouteRequest selects the endpoints and algorithm for a path search.
// Endpoints are given either as node IDs or as coordinates to resolve.
type RouteRequest struct {
	From      string      `json:"from,omitempty"`
	To        string      `json:"to,omitempty"`
	FromCoord *Coordinate `json:"from_coord,omitempty"`
	ToCoord   *Coordinate `json:"to_coord,omitempty"`
	Algorithm string      `json:"algorithm,omitempty"`
}

// PathResult is the outcome of one path search. TotalCost and
// EstimatedTimeMinutes are nil when the destination is unreachable.
type PathResult struct {
	Path                 []string `json:"path"`
	TotalCost            *float64 `json:"total_cost"`
	EstimatedTimeMinutes *float64 `json:"estimated_time_minutes"`
	VisitedNodes         []string `json:"visited_nodes"`
	Algorithm            string   `json:"algorithm"`
	Found                bool     `json:"found"`
}

// NearestResult pairs a node with its great-circle distance from the
// queried coordinate.
type NearestResult struct {
	Node       Node    `json:"node"`
	DistanceKm float64 `json:"distance_km"`
}

// TickResult summarizes one traffic simulation pass.
type TickResult struct {
	AppliedAt    time.Time      `json:"applied_at"`
	UpdatedEdges int            `json:"updated_edges"`
	Levels       map[string]int `json:"levels"`
}

// CongestionSummary is the current traffic state across the network.
type CongestionSummary struct {
	Levels       map[string]int `json:"levels"`
	BlockedEdges int            `json:"blocked_edges"`
	LastTick     *time.Time     `json:"last_tick,omitempty"`
}

// RebuildRequest overrides the synthetic generator defaults. Omitted
// fields fall back to the server's configured values.
type RebuildRequest struct {
	Center    *Coordinate `json:"center,omitempty"`
	RadiusKm  float64     `json:"radius_km,omitempty"`
	NodeCount int         `json:"node_count,omitempty"`
	Seed      *int64      `json:"seed,omitempty"`
}

// NetworkStats is returned by the stats and rebuild endpoints.
type NetworkStats struct {
	Nodes        int            `json:"nodes"`
	Edges        int            `json:"edges"`
	BlockedEdges int            `json:"blocked_edges"`
	Levels       map[string]int `json:"levels"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Nodes         int     `json:"nodes"`
	Edges         int     `json:"edges"`
	WSClients     int     `json:"ws_clients"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// EdgeListOptions holds parameters for listing edges.
type EdgeListOptions struct {
	// Blocked filters by blocked state when non-nil.
	Blocked *bool
	// Level filters by traffic level (low, medium, high).
	Level string
}
