package store

import (
	"slices"

	"github.com/routegrid/routegrid/internal/models"
)

// AddNode inserts a node. Returns models.ErrDuplicateID when the id is
// already taken.
func (s *Store) AddNode(n models.Node) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.nodes[n.ID]; ok {
		return models.ErrDuplicateID
	}

	s.nodes[n.ID] = n
	s.nodeOrder = append(s.nodeOrder, n.ID)
	s.rebuildAdjacency()

	return nil
}

// RemoveNode deletes a node and every edge referencing it in either
// direction. Removing an absent node is a no-op. Returns the number of
// edges dropped and whether the node existed.
func (s *Store) RemoveNode(id string) (removedEdges int, existed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.nodes[id]; !ok {
		return 0, false
	}

	delete(s.nodes, id)
	s.nodeOrder = slices.DeleteFunc(s.nodeOrder, func(nid string) bool {
		return nid == id
	})

	kept := s.edgeOrder[:0]
	for _, eid := range s.edgeOrder {
		e := s.edges[eid]
		if e.From == id || e.To == id {
			delete(s.edges, eid)
			removedEdges++
			continue
		}
		kept = append(kept, eid)
	}
	s.edgeOrder = kept
	s.rebuildAdjacency()

	return removedEdges, true
}

// Node returns the node with the given id, or models.ErrNodeNotFound.
func (s *Store) Node(id string) (models.Node, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.nodes[id]
	if !ok {
		return models.Node{}, models.ErrNodeNotFound
	}
	return n, nil
}

// Nodes lists all nodes in insertion order.
func (s *Store) Nodes() []models.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Node, 0, len(s.nodeOrder))
	for _, id := range s.nodeOrder {
		out = append(out, s.nodes[id])
	}
	return out
}
