package models

import "fmt"

// RebuildRequest is the payload for regenerating the synthetic network.
// Zero values fall back to the server's configured defaults.
type RebuildRequest struct {
	Center    *Coordinate `json:"center,omitempty"`
	RadiusKm  float64     `json:"radius_km,omitempty"`
	NodeCount int         `json:"node_count,omitempty"`
	Seed      *int64      `json:"seed,omitempty"`
}

// Validate checks RebuildRequest fields.
func (r *RebuildRequest) Validate() error {
	if r.Center != nil && !r.Center.Valid() {
		return ErrInvalidCoordinate
	}

	if r.RadiusKm < 0 || r.RadiusKm > 500 {
		return fmt.Errorf("radius_km must be between 0 and 500")
	}

	if r.NodeCount < 0 || r.NodeCount > 10000 {
		return fmt.Errorf("node_count must be between 0 and 10000")
	}

	return nil
}

// NetworkStats summarizes the store contents.
type NetworkStats struct {
	Nodes        int                  `json:"nodes"`
	Edges        int                  `json:"edges"`
	BlockedEdges int                  `json:"blocked_edges"`
	Levels       map[TrafficLevel]int `json:"levels"`
}

// NearestResult pairs a node with its great-circle distance from a query point.
type NearestResult struct {
	Node       Node    `json:"node"`
	DistanceKm float64 `json:"distance_km"`
}
