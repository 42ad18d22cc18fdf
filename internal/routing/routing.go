// Package routing implements the path search engine: three interchangeable
// shortest-path strategies over one immutable graph snapshot.
//
// All algorithms honor the same contract:
//
//   - blocked edges are never expanded or relaxed
//   - unknown endpoints return models.ErrUnknownNode
//   - start == end short-circuits to a zero-cost single-node path
//   - an unreachable destination is a normal result (empty path, +Inf
//     cost, Found false), not an error
//   - the caller's context is checked between iterations; cancellation
//     returns models.ErrSearchCancelled and no partial path
//   - frontier ties break by insertion order, so a given snapshot always
//     produces the same path and the same visited sequence
package routing

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/routegrid/routegrid/internal/models"
	"github.com/routegrid/routegrid/internal/store"
)

// timeFactor converts path cost into the coarse minute estimate the API
// reports.
const timeFactor = 1.2

// Find runs the requested algorithm over snap and returns its result.
func Find(ctx context.Context, snap *store.Snapshot, start, end string, alg models.Algorithm) (models.PathResult, error) {
	if err := checkEndpoints(snap, start, end); err != nil {
		return models.PathResult{}, err
	}

	if start == end {
		res := found([]string{start}, 0, []string{start})
		res.Algorithm = alg
		return res, nil
	}

	var (
		res models.PathResult
		err error
	)

	switch alg {
	case models.AlgorithmDijkstra:
		res, err = dijkstra(ctx, snap, start, end)
	case models.AlgorithmAStar:
		res, err = astar(ctx, snap, start, end, geoHeuristic(snap, end))
	case models.AlgorithmBellmanFord:
		res, err = bellmanFord(ctx, snap, start, end)
	default:
		return models.PathResult{}, fmt.Errorf("%w: %q", models.ErrUnknownAlgorithm, alg)
	}
	if err != nil {
		return models.PathResult{}, err
	}

	res.Algorithm = alg
	return res, nil
}

func checkEndpoints(snap *store.Snapshot, start, end string) error {
	if !snap.HasNode(start) {
		return fmt.Errorf("%w: %q", models.ErrUnknownNode, start)
	}
	if !snap.HasNode(end) {
		return fmt.Errorf("%w: %q", models.ErrUnknownNode, end)
	}
	return nil
}

func cancelled(ctx context.Context) error {
	return fmt.Errorf("%w: %v", models.ErrSearchCancelled, ctx.Err())
}

func found(path []string, cost float64, visited []string) models.PathResult {
	return models.PathResult{
		Path:                 path,
		TotalCost:            cost,
		EstimatedTimeMinutes: math.Round(cost * timeFactor),
		VisitedNodes:         visited,
		Found:                true,
	}
}

func unreachable(visited []string) models.PathResult {
	return models.PathResult{
		Path:         []string{},
		TotalCost:    math.Inf(1),
		VisitedNodes: visited,
	}
}

// reconstruct walks the predecessor map back from end to start.
func reconstruct(prev map[string]string, start, end string) []string {
	path := []string{end}
	for cur := end; cur != start; {
		p, ok := prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	slices.Reverse(path)
	return path
}
