package store

import "github.com/routegrid/routegrid/internal/models"

// Snapshot is an immutable copy of the graph taken at one instant. Path
// searches and nearest-node resolution run against snapshots so the live
// store can keep mutating underneath them. Slices hold insertion order;
// the maps are lookup indexes over the same data.
type Snapshot struct {
	Nodes     []models.Node
	Edges     []models.Edge
	NodeIndex map[string]models.Node
	Adjacency map[string][]models.Edge
}

// HasNode reports whether id exists in the snapshot.
func (s *Snapshot) HasNode(id string) bool {
	_, ok := s.NodeIndex[id]
	return ok
}

// Outgoing returns a node's outgoing edges in edge insertion order,
// blocked edges included.
func (s *Snapshot) Outgoing(id string) []models.Edge {
	return s.Adjacency[id]
}

// Snapshot copies the graph under the read lock.
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := &Snapshot{
		Nodes:     make([]models.Node, 0, len(s.nodeOrder)),
		Edges:     make([]models.Edge, 0, len(s.edgeOrder)),
		NodeIndex: make(map[string]models.Node, len(s.nodes)),
		Adjacency: make(map[string][]models.Edge, len(s.adjacency)),
	}

	for _, id := range s.nodeOrder {
		n := s.nodes[id]
		snap.Nodes = append(snap.Nodes, n)
		snap.NodeIndex[id] = n
	}

	for _, id := range s.edgeOrder {
		snap.Edges = append(snap.Edges, s.edges[id])
	}

	for nodeID, edgeIDs := range s.adjacency {
		out := make([]models.Edge, 0, len(edgeIDs))
		for _, eid := range edgeIDs {
			out = append(out, s.edges[eid])
		}
		snap.Adjacency[nodeID] = out
	}

	return snap
}
