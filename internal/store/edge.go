package store

import (
	"slices"

	"github.com/routegrid/routegrid/internal/models"
)

// AddEdge inserts an edge. Returns models.ErrDuplicateID when the id is
// taken and models.ErrInvalidReference when either endpoint is missing.
func (s *Store) AddEdge(e models.Edge) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.edges[e.ID]; ok {
		return models.ErrDuplicateID
	}
	if _, ok := s.nodes[e.From]; !ok {
		return models.ErrInvalidReference
	}
	if _, ok := s.nodes[e.To]; !ok {
		return models.ErrInvalidReference
	}

	s.edges[e.ID] = e
	s.edgeOrder = append(s.edgeOrder, e.ID)
	s.rebuildAdjacency()

	return nil
}

// RemoveEdge deletes an edge. Removing an absent edge is a no-op; the
// return value reports whether it existed.
func (s *Store) RemoveEdge(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.edges[id]; !ok {
		return false
	}

	delete(s.edges, id)
	s.edgeOrder = slices.DeleteFunc(s.edgeOrder, func(eid string) bool {
		return eid == id
	})
	s.rebuildAdjacency()

	return true
}

// Edge returns the edge with the given id, or models.ErrEdgeNotFound.
func (s *Store) Edge(id string) (models.Edge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.edges[id]
	if !ok {
		return models.Edge{}, models.ErrEdgeNotFound
	}
	return e, nil
}

// Edges lists all edges in insertion order.
func (s *Store) Edges() []models.Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Edge, 0, len(s.edgeOrder))
	for _, id := range s.edgeOrder {
		out = append(out, s.edges[id])
	}
	return out
}

// SetEdgeWeight overrides an edge's current weight, leaving its base
// weight alone. Returns the updated edge or models.ErrEdgeNotFound.
func (s *Store) SetEdgeWeight(id string, weight float64) (models.Edge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.edges[id]
	if !ok {
		return models.Edge{}, models.ErrEdgeNotFound
	}

	e.CurrentWeight = weight
	s.edges[id] = e

	return e, nil
}

// SetBlocked toggles an edge's blocked flag. Returns the updated edge or
// models.ErrEdgeNotFound.
func (s *Store) SetBlocked(id string, blocked bool) (models.Edge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.edges[id]
	if !ok {
		return models.Edge{}, models.ErrEdgeNotFound
	}

	e.Blocked = blocked
	s.edges[id] = e

	return e, nil
}
