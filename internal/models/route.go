package models

import (
	"encoding/json"
	"fmt"
	"math"
)

// Algorithm selects a path search strategy.
type Algorithm string

// Supported algorithms.
const (
	AlgorithmDijkstra    Algorithm = "dijkstra"
	AlgorithmAStar       Algorithm = "astar"
	AlgorithmBellmanFord Algorithm = "bellman-ford"
)

// ParseAlgorithm maps a request string to an Algorithm. The empty string
// selects Dijkstra.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case "":
		return AlgorithmDijkstra, nil
	case AlgorithmDijkstra, AlgorithmAStar, AlgorithmBellmanFord:
		return Algorithm(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// PathResult is the outcome of one search. An unreachable destination is a
// normal outcome: Found is false, Path is empty and TotalCost is +Inf.
type PathResult struct {
	Path                 []string  `json:"path"`
	TotalCost            float64   `json:"total_cost"`
	EstimatedTimeMinutes float64   `json:"estimated_time_minutes"`
	VisitedNodes         []string  `json:"visited_nodes"`
	Algorithm            Algorithm `json:"algorithm"`
	Found                bool      `json:"found"`
}

// pathResultJSON carries the wire shape: cost fields are nullable because
// IEEE infinity has no JSON representation.
type pathResultJSON struct {
	Path                 []string  `json:"path"`
	TotalCost            *float64  `json:"total_cost"`
	EstimatedTimeMinutes *float64  `json:"estimated_time_minutes"`
	VisitedNodes         []string  `json:"visited_nodes"`
	Algorithm            Algorithm `json:"algorithm"`
	Found                bool      `json:"found"`
}

// MarshalJSON encodes an unreachable result with null costs.
func (r PathResult) MarshalJSON() ([]byte, error) {
	out := pathResultJSON{
		Path:         r.Path,
		VisitedNodes: r.VisitedNodes,
		Algorithm:    r.Algorithm,
		Found:        r.Found,
	}
	if out.Path == nil {
		out.Path = []string{}
	}
	if out.VisitedNodes == nil {
		out.VisitedNodes = []string{}
	}
	if !math.IsInf(r.TotalCost, 1) {
		cost, est := r.TotalCost, r.EstimatedTimeMinutes
		out.TotalCost = &cost
		out.EstimatedTimeMinutes = &est
	}
	return json.Marshal(out)
}

// UnmarshalJSON restores null costs to +Inf.
func (r *PathResult) UnmarshalJSON(data []byte) error {
	var in pathResultJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	r.Path = in.Path
	r.VisitedNodes = in.VisitedNodes
	r.Algorithm = in.Algorithm
	r.Found = in.Found
	r.TotalCost = math.Inf(1)
	r.EstimatedTimeMinutes = 0
	if in.TotalCost != nil {
		r.TotalCost = *in.TotalCost
	}
	if in.EstimatedTimeMinutes != nil {
		r.EstimatedTimeMinutes = *in.EstimatedTimeMinutes
	}
	return nil
}

// RouteRequest is the payload for a path query. Endpoints may be given as
// node ids or as coordinates; coordinates resolve to the nearest node first.
type RouteRequest struct {
	From      string      `json:"from,omitempty"`
	To        string      `json:"to,omitempty"`
	FromCoord *Coordinate `json:"from_coord,omitempty"`
	ToCoord   *Coordinate `json:"to_coord,omitempty"`
	Algorithm string      `json:"algorithm,omitempty"`
}

// Validate checks RouteRequest fields.
func (r *RouteRequest) Validate() error {
	if r.From == "" && r.FromCoord == nil {
		return ErrMissingFrom
	}

	if r.To == "" && r.ToCoord == nil {
		return ErrMissingTo
	}

	if r.FromCoord != nil && !r.FromCoord.Valid() {
		return ErrInvalidCoordinate
	}

	if r.ToCoord != nil && !r.ToCoord.Valid() {
		return ErrInvalidCoordinate
	}

	if _, err := ParseAlgorithm(r.Algorithm); err != nil {
		return err
	}

	return nil
}

// CompareResult holds one result per algorithm over the same snapshot.
type CompareResult struct {
	Results []PathResult `json:"results"`
}
