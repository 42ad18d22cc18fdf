package models

import (
	"time"

	"github.com/google/uuid"
)

// RoadKind classifies the road an edge represents. Traffic multipliers
// differ per kind.
type RoadKind string

// Road kinds.
const (
	RoadHighway RoadKind = "highway"
	RoadStreet  RoadKind = "street"
	RoadAlley   RoadKind = "alley"
)

// Valid reports whether k is a known road kind.
func (k RoadKind) Valid() bool {
	switch k {
	case RoadHighway, RoadStreet, RoadAlley:
		return true
	}
	return false
}

// SpeedKmh is the free-flow speed assumed for the road kind, used to
// derive durations when a dataset or request does not carry one.
func (k RoadKind) SpeedKmh() float64 {
	switch k {
	case RoadHighway:
		return 90
	case RoadAlley:
		return 20
	default:
		return 50
	}
}

// TrafficLevel is the congestion label derived for an edge.
type TrafficLevel string

// Traffic levels.
const (
	TrafficLow    TrafficLevel = "low"
	TrafficMedium TrafficLevel = "medium"
	TrafficHigh   TrafficLevel = "high"
)

// Edge represents a directed road segment between two nodes. A two-way road
// is two edges with independent traffic state.
type Edge struct {
	ID              string       `json:"id"`
	From            string       `json:"from"`
	To              string       `json:"to"`
	DistanceKm      float64      `json:"distance_km"`
	DurationMinutes float64      `json:"duration_minutes"`
	RoadKind        RoadKind     `json:"road_kind"`
	BaseWeight      float64      `json:"base_weight"`
	CurrentWeight   float64      `json:"current_weight"`
	Blocked         bool         `json:"is_blocked"`
	TrafficLevel    TrafficLevel `json:"traffic_level"`
	CreatedAt       time.Time    `json:"created_at"`
}

// CreateEdgeRequest is the payload for creating a new edge.
// DistanceKm and DurationMinutes are optional; when zero the service derives
// them from the endpoint geometry and road kind.
type CreateEdgeRequest struct {
	ID              string   `json:"id,omitempty"`
	From            string   `json:"from"`
	To              string   `json:"to"`
	DistanceKm      float64  `json:"distance_km,omitempty"`
	DurationMinutes float64  `json:"duration_minutes,omitempty"`
	RoadKind        RoadKind `json:"road_kind,omitempty"`
}

// Validate checks that required fields are present and within limits on CreateEdgeRequest.
// If ID is empty, a UUID is auto-generated. If RoadKind is empty, it defaults to street.
func (r *CreateEdgeRequest) Validate() error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}

	if len(r.ID) > 255 {
		return ErrFieldTooLong("id", 255)
	}

	if r.From == "" {
		return ErrMissingFrom
	}

	if len(r.From) > 255 {
		return ErrFieldTooLong("from", 255)
	}

	if r.To == "" {
		return ErrMissingTo
	}

	if len(r.To) > 255 {
		return ErrFieldTooLong("to", 255)
	}

	if r.RoadKind == "" {
		r.RoadKind = RoadStreet
	}

	if !r.RoadKind.Valid() {
		return ErrInvalidKind("road_kind", string(r.RoadKind))
	}

	if r.DistanceKm < 0 {
		return ErrNegativeDistance
	}

	if r.DurationMinutes < 0 {
		return ErrNegativeDuration
	}

	return nil
}

// SetWeightRequest is the payload for overriding an edge's current weight.
type SetWeightRequest struct {
	Weight *float64 `json:"weight"`
}

// Validate checks SetWeightRequest fields.
func (r *SetWeightRequest) Validate() error {
	if r.Weight == nil {
		return ErrMissingWeight
	}

	if *r.Weight < 0 {
		return ErrNegativeWeight
	}

	return nil
}

// SetBlockedRequest is the payload for blocking or unblocking an edge.
type SetBlockedRequest struct {
	Blocked *bool `json:"is_blocked"`
}

// Validate checks SetBlockedRequest fields.
func (r *SetBlockedRequest) Validate() error {
	if r.Blocked == nil {
		return ErrMissingBlocked
	}
	return nil
}
