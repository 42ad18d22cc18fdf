package store

import (
	"time"

	"github.com/routegrid/routegrid/internal/models"
)

// ApplyTraffic writes simulator output back to the live edges: current
// weight and traffic level only, base weight is never touched. Updates
// for edges removed since the tick's snapshot are silently skipped.
// Returns the number of edges updated.
func (s *Store) ApplyTraffic(updates []models.EdgeTraffic, at time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	applied := 0
	for _, u := range updates {
		e, ok := s.edges[u.EdgeID]
		if !ok {
			continue
		}
		e.CurrentWeight = u.CurrentWeight
		e.TrafficLevel = u.TrafficLevel
		s.edges[u.EdgeID] = e
		applied++
	}

	tick := at
	s.lastTick = &tick

	return applied
}

// LastTick returns when traffic was last applied, or nil before the first
// tick.
func (s *Store) LastTick() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.lastTick == nil {
		return nil
	}
	t := *s.lastTick
	return &t
}

// Stats counts the store contents.
func (s *Store) Stats() models.NetworkStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := models.NetworkStats{
		Nodes: len(s.nodes),
		Edges: len(s.edges),
		Levels: map[models.TrafficLevel]int{
			models.TrafficLow:    0,
			models.TrafficMedium: 0,
			models.TrafficHigh:   0,
		},
	}

	for _, id := range s.edgeOrder {
		e := s.edges[id]
		if e.Blocked {
			stats.BlockedEdges++
		}
		if _, ok := stats.Levels[e.TrafficLevel]; ok {
			stats.Levels[e.TrafficLevel]++
		}
	}

	return stats
}
