// Package store provides the in-memory graph store for the road network.
//
// One Store owns the canonical node and edge sets plus a derived adjacency
// index. Every mutation takes the write lock and rebuilds the index in a
// single O(V+E) pass; at the scale this engine targets the rebuild is
// cheaper than keeping incremental bookkeeping correct. Searches never
// touch the live maps: they run against immutable snapshots taken under
// the read lock, so a long search cannot observe a half-applied mutation.
//
// Iteration order is deterministic everywhere. Nodes and edges keep their
// insertion order in dedicated slices; the maps are lookup indexes only.
package store

import (
	"sync"
	"time"

	"github.com/routegrid/routegrid/internal/models"
)

// Store is the authoritative in-memory road network.
type Store struct {
	mu        sync.RWMutex
	nodes     map[string]models.Node
	edges     map[string]models.Edge
	nodeOrder []string
	edgeOrder []string
	adjacency map[string][]string
	lastTick  *time.Time
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		nodes:     make(map[string]models.Node),
		edges:     make(map[string]models.Edge),
		adjacency: make(map[string][]string),
	}
}

// rebuildAdjacency recomputes the outgoing-edge index in one O(V+E) pass.
// Must be called under the write lock after every structural mutation; the
// index is a cache, the node and edge maps stay the source of truth.
func (s *Store) rebuildAdjacency() {
	adj := make(map[string][]string, len(s.nodes))
	for _, id := range s.edgeOrder {
		e := s.edges[id]
		adj[e.From] = append(adj[e.From], id)
	}
	s.adjacency = adj
}

// ReplaceNetwork swaps the whole graph for the given nodes and edges.
// Input is validated the same way incremental inserts are: duplicate ids
// return models.ErrDuplicateID, edges naming missing endpoints return
// models.ErrInvalidReference, and the store is left untouched on error.
func (s *Store) ReplaceNetwork(nodes []models.Node, edges []models.Edge) error {
	nodeMap := make(map[string]models.Node, len(nodes))
	nodeOrder := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if _, ok := nodeMap[n.ID]; ok {
			return models.ErrDuplicateID
		}
		nodeMap[n.ID] = n
		nodeOrder = append(nodeOrder, n.ID)
	}

	edgeMap := make(map[string]models.Edge, len(edges))
	edgeOrder := make([]string, 0, len(edges))
	for _, e := range edges {
		if _, ok := edgeMap[e.ID]; ok {
			return models.ErrDuplicateID
		}
		if _, ok := nodeMap[e.From]; !ok {
			return models.ErrInvalidReference
		}
		if _, ok := nodeMap[e.To]; !ok {
			return models.ErrInvalidReference
		}
		edgeMap[e.ID] = e
		edgeOrder = append(edgeOrder, e.ID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nodes = nodeMap
	s.edges = edgeMap
	s.nodeOrder = nodeOrder
	s.edgeOrder = edgeOrder
	s.lastTick = nil
	s.rebuildAdjacency()

	return nil
}
