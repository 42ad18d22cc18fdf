package routing

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/routegrid/routegrid/internal/models"
	"github.com/routegrid/routegrid/internal/store"
)

// Compare runs all three algorithms concurrently over the same snapshot.
// Results come back in a fixed order: dijkstra, astar, bellman-ford. One
// failing search fails the whole comparison.
func Compare(ctx context.Context, snap *store.Snapshot, start, end string) ([]models.PathResult, error) {
	algorithms := []models.Algorithm{
		models.AlgorithmDijkstra,
		models.AlgorithmAStar,
		models.AlgorithmBellmanFord,
	}
	results := make([]models.PathResult, len(algorithms))

	g, ctx := errgroup.WithContext(ctx)
	for i, alg := range algorithms {
		g.Go(func() error {
			res, err := Find(ctx, snap, start, end, alg)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
