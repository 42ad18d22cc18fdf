package routing

import (
	"context"

	"github.com/routegrid/routegrid/internal/models"
	"github.com/routegrid/routegrid/internal/store"
)

// dijkstra settles nodes in order of increasing tentative cost using lazy
// decrease-key: improvements push duplicate heap entries and stale ones
// are skipped on pop. The visited list is the settlement order. Exits as
// soon as end settles; every settled cost is already final.
func dijkstra(ctx context.Context, snap *store.Snapshot, start, end string) (models.PathResult, error) {
	dist := map[string]float64{start: 0}
	prev := make(map[string]string)
	settled := make(map[string]bool, len(snap.Nodes))
	visited := make([]string, 0, len(snap.Nodes))

	f := newFrontier()
	f.push(start, 0)

	for f.Len() > 0 {
		if ctx.Err() != nil {
			return models.PathResult{}, cancelled(ctx)
		}

		item := f.pop()
		if settled[item.node] {
			continue
		}
		settled[item.node] = true
		visited = append(visited, item.node)

		if item.node == end {
			return found(reconstruct(prev, start, end), dist[end], visited), nil
		}

		for _, e := range snap.Outgoing(item.node) {
			if e.Blocked {
				continue
			}

			tentative := dist[item.node] + e.CurrentWeight
			if old, ok := dist[e.To]; !ok || tentative < old {
				dist[e.To] = tentative
				prev[e.To] = item.node
				f.push(e.To, tentative)
			}
		}
	}

	return unreachable(visited), nil
}
