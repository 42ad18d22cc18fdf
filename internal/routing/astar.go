package routing

import (
	"context"

	"github.com/routegrid/routegrid/internal/geo"
	"github.com/routegrid/routegrid/internal/models"
	"github.com/routegrid/routegrid/internal/store"
)

// heuristicFunc estimates the remaining cost from a node to the goal.
type heuristicFunc func(id string) float64

// geoHeuristic estimates cost to go as great-circle kilometers to the
// goal. Admissible as long as every current weight stays at or above the
// edge's geometric length; manual weight overrides below that void the
// optimality guarantee.
func geoHeuristic(snap *store.Snapshot, end string) heuristicFunc {
	goal := snap.NodeIndex[end].Location
	return func(id string) float64 {
		return geo.DistanceKm(snap.NodeIndex[id].Location, goal)
	}
}

// astar is dijkstra with the frontier ordered by cost so far plus the
// heuristic's estimate of cost to go. With a zero heuristic it degenerates
// to dijkstra exactly, same visited order included.
func astar(ctx context.Context, snap *store.Snapshot, start, end string, h heuristicFunc) (models.PathResult, error) {
	gScore := map[string]float64{start: 0}
	cameFrom := make(map[string]string)
	closed := make(map[string]bool, len(snap.Nodes))
	visited := make([]string, 0, len(snap.Nodes))

	f := newFrontier()
	f.push(start, h(start))

	for f.Len() > 0 {
		if ctx.Err() != nil {
			return models.PathResult{}, cancelled(ctx)
		}

		item := f.pop()
		if closed[item.node] {
			continue
		}
		closed[item.node] = true
		visited = append(visited, item.node)

		if item.node == end {
			return found(reconstruct(cameFrom, start, end), gScore[end], visited), nil
		}

		for _, e := range snap.Outgoing(item.node) {
			if e.Blocked {
				continue
			}

			tentative := gScore[item.node] + e.CurrentWeight
			if old, ok := gScore[e.To]; !ok || tentative < old {
				gScore[e.To] = tentative
				cameFrom[e.To] = item.node
				f.push(e.To, tentative+h(e.To))
			}
		}
	}

	return unreachable(visited), nil
}
