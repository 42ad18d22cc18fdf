// Package models defines data types for the road network.
package models

import (
	"time"

	"github.com/google/uuid"
)

// NodeKind classifies a location on the network.
type NodeKind string

// Node kinds.
const (
	NodeCity     NodeKind = "city"
	NodeLandmark NodeKind = "landmark"
	NodeJunction NodeKind = "junction"
)

// Valid reports whether k is a known node kind.
func (k NodeKind) Valid() bool {
	switch k {
	case NodeCity, NodeLandmark, NodeJunction:
		return true
	}
	return false
}

// Coordinate is a WGS84 position in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the coordinate is inside the WGS84 range.
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// Node represents a routable location: a city, a landmark, or a plain junction.
// Nodes are immutable once created; the only mutation is removal.
type Node struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Location  Coordinate `json:"location"`
	Kind      NodeKind   `json:"kind"`
	CreatedAt time.Time  `json:"created_at"`
}

// CreateNodeRequest is the payload for creating a new node.
type CreateNodeRequest struct {
	ID   string   `json:"id,omitempty"`
	Name string   `json:"name"`
	Lat  float64  `json:"lat"`
	Lng  float64  `json:"lng"`
	Kind NodeKind `json:"kind,omitempty"`
}

// Validate checks that required fields are present and within limits on CreateNodeRequest.
// If ID is empty, a UUID is auto-generated. If Kind is empty, it defaults to junction.
func (r *CreateNodeRequest) Validate() error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}

	if len(r.ID) > 255 {
		return ErrFieldTooLong("id", 255)
	}

	if r.Name == "" {
		return ErrMissingName
	}

	if len(r.Name) > 255 {
		return ErrFieldTooLong("name", 255)
	}

	if r.Kind == "" {
		r.Kind = NodeJunction
	}

	if !r.Kind.Valid() {
		return ErrInvalidKind("kind", string(r.Kind))
	}

	if !(Coordinate{Lat: r.Lat, Lng: r.Lng}).Valid() {
		return ErrInvalidCoordinate
	}

	return nil
}

// Node builds the Node described by a validated request.
func (r *CreateNodeRequest) Node(now time.Time) Node {
	return Node{
		ID:        r.ID,
		Name:      r.Name,
		Location:  Coordinate{Lat: r.Lat, Lng: r.Lng},
		Kind:      r.Kind,
		CreatedAt: now,
	}
}
