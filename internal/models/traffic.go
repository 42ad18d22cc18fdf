package models

import (
	"fmt"
	"time"
)

// EdgeTraffic is one edge's recomputed congestion state, produced by a
// traffic tick and written back to the store.
type EdgeTraffic struct {
	EdgeID        string       `json:"edge_id"`
	CurrentWeight float64      `json:"current_weight"`
	TrafficLevel  TrafficLevel `json:"traffic_level"`
}

// TickRequest is the payload for a manual traffic tick. Now is optional;
// when set it pins the simulated clock for reproducible runs.
type TickRequest struct {
	Now string `json:"now,omitempty"`
}

// Validate checks TickRequest fields.
func (r *TickRequest) Validate() error {
	if r.Now == "" {
		return nil
	}
	if _, err := time.Parse(time.RFC3339, r.Now); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimestamp, err)
	}
	return nil
}

// Time returns the requested tick time, falling back to now when unset.
func (r *TickRequest) Time(now time.Time) time.Time {
	if r.Now == "" {
		return now
	}
	t, err := time.Parse(time.RFC3339, r.Now)
	if err != nil {
		return now
	}
	return t
}

// TickResult summarizes one applied traffic tick.
type TickResult struct {
	AppliedAt    time.Time            `json:"applied_at"`
	UpdatedEdges int                  `json:"updated_edges"`
	Levels       map[TrafficLevel]int `json:"levels"`
}

// CongestionSummary reports the live congestion state of the network.
type CongestionSummary struct {
	Levels       map[TrafficLevel]int `json:"levels"`
	BlockedEdges int                  `json:"blocked_edges"`
	LastTick     *time.Time           `json:"last_tick,omitempty"`
}
