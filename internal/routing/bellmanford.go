package routing

import (
	"context"

	"github.com/routegrid/routegrid/internal/models"
	"github.com/routegrid/routegrid/internal/store"
)

// bellmanFord relaxes every non-blocked edge in insertion order for up to
// |V|-1 passes, stopping early once a pass improves nothing. The visited
// list holds nodes in first-improvement order, start included, each node
// once. Weights are validated non-negative at the boundary, so negative
// cycles cannot form and no detection pass is needed.
func bellmanFord(ctx context.Context, snap *store.Snapshot, start, end string) (models.PathResult, error) {
	dist := map[string]float64{start: 0}
	prev := make(map[string]string)
	improved := map[string]bool{start: true}
	visited := []string{start}

	for pass := 1; pass < len(snap.Nodes); pass++ {
		if ctx.Err() != nil {
			return models.PathResult{}, cancelled(ctx)
		}

		changed := false
		for _, e := range snap.Edges {
			if e.Blocked {
				continue
			}

			du, ok := dist[e.From]
			if !ok {
				continue
			}

			tentative := du + e.CurrentWeight
			if dv, ok := dist[e.To]; !ok || tentative < dv {
				dist[e.To] = tentative
				prev[e.To] = e.From
				changed = true

				if !improved[e.To] {
					improved[e.To] = true
					visited = append(visited, e.To)
				}
			}
		}

		if !changed {
			break
		}
	}

	cost, ok := dist[end]
	if !ok {
		return unreachable(visited), nil
	}
	return found(reconstruct(prev, start, end), cost, visited), nil
}
