// Package netbuild constructs road networks: synthetic generation around
// a center point, YAML dataset files, and OpenStreetMap extracts. All
// builders return plain node and edge slices ready for the store.
package netbuild

import (
	"cmp"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/routegrid/routegrid/internal/geo"
	"github.com/routegrid/routegrid/internal/models"
)

// SyntheticConfig controls generated networks.
type SyntheticConfig struct {
	Center    models.Coordinate
	RadiusKm  float64
	NodeCount int
	Seed      int64
}

// Name pools for generated nodes.
var (
	namePrefixes = []string{"North", "South", "East", "West", "Old", "New", "Upper", "Lower", "Mid", "Outer"}
	nameSuffixes = []string{"gate", "bridge", "market", "field", "cross", "haven", "port", "wick", "stead", "holm"}
)

// Synthetic generates a connected network of NodeCount nodes scattered
// uniformly over the disk around Center. Everything (placement, names,
// kinds, wiring) comes from the seeded stream, so the same config always
// produces the same network.
func Synthetic(cfg SyntheticConfig) ([]models.Node, []models.Edge) {
	if cfg.NodeCount < 2 {
		cfg.NodeCount = 2
	}

	rng := rand.New(rand.NewPCG(uint64(cfg.Seed), uint64(cfg.NodeCount)))

	nodes := make([]models.Node, 0, cfg.NodeCount)
	for i := 0; i < cfg.NodeCount; i++ {
		loc := cfg.Center
		if i > 0 {
			bearing := rng.Float64() * 360
			// sqrt keeps the density uniform over the disk instead of
			// clustering at the center.
			dist := math.Sqrt(rng.Float64()) * cfg.RadiusKm
			loc = geo.Destination(cfg.Center, bearing, dist)
		}

		nodes = append(nodes, models.Node{
			ID:       fmt.Sprintf("n%03d", i+1),
			Name:     nodeName(rng, i),
			Location: loc,
			Kind:     nodeKind(rng, i),
		})
	}

	return nodes, wire(rng, nodes, cfg.RadiusKm)
}

func nodeKind(rng *rand.Rand, i int) models.NodeKind {
	if i == 0 {
		return models.NodeCity
	}
	switch r := rng.Float64(); {
	case r < 0.08:
		return models.NodeCity
	case r < 0.25:
		return models.NodeLandmark
	default:
		return models.NodeJunction
	}
}

func nodeName(rng *rand.Rand, i int) string {
	name := namePrefixes[rng.IntN(len(namePrefixes))] + nameSuffixes[rng.IntN(len(nameSuffixes))]
	return fmt.Sprintf("%s %d", name, i+1)
}

// wire links every node to its nearest predecessor, which keeps the
// network connected by construction, then adds up to two extra
// nearest-neighbor links per node. Each link is a pair of directed edges.
func wire(rng *rand.Rand, nodes []models.Node, radiusKm float64) []models.Edge {
	edges := make([]models.Edge, 0, len(nodes)*4)
	linked := make(map[string]bool, len(nodes)*4)

	addLink := func(a, b models.Node) {
		if a.ID == b.ID || linked[a.ID+":"+b.ID] {
			return
		}
		linked[a.ID+":"+b.ID] = true
		linked[b.ID+":"+a.ID] = true

		d := geo.DistanceKm(a.Location, b.Location)
		kind := spanKind(d, radiusKm)
		edges = append(edges, link(a, b, d, kind), link(b, a, d, kind))
	}

	for i := 1; i < len(nodes); i++ {
		addLink(nodes[i], nearest(nodes[i], nodes[:i]))
	}

	for i := range nodes {
		for _, other := range neighbors(nodes[i], nodes, rng.IntN(3)) {
			addLink(nodes[i], other)
		}
	}

	return edges
}

func link(a, b models.Node, d float64, kind models.RoadKind) models.Edge {
	return models.Edge{
		ID:              a.ID + ":" + b.ID,
		From:            a.ID,
		To:              b.ID,
		DistanceKm:      d,
		DurationMinutes: d / kind.SpeedKmh() * 60,
		RoadKind:        kind,
		BaseWeight:      d,
		CurrentWeight:   d,
		TrafficLevel:    models.TrafficLow,
	}
}

// spanKind picks a road class from the link length: the long spokes of a
// network read as highways, the short hops as alleys.
func spanKind(d, radiusKm float64) models.RoadKind {
	switch {
	case radiusKm > 0 && d > radiusKm*0.6:
		return models.RoadHighway
	case radiusKm > 0 && d < radiusKm*0.08:
		return models.RoadAlley
	default:
		return models.RoadStreet
	}
}

func nearest(n models.Node, candidates []models.Node) models.Node {
	best := candidates[0]
	bestDist := geo.DistanceKm(n.Location, best.Location)
	for _, c := range candidates[1:] {
		if d := geo.DistanceKm(n.Location, c.Location); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// neighbors returns the k nodes closest to n, sorted stably so equal
// distances keep insertion order.
func neighbors(n models.Node, nodes []models.Node, k int) []models.Node {
	if k <= 0 {
		return nil
	}

	others := make([]models.Node, 0, len(nodes)-1)
	for _, c := range nodes {
		if c.ID != n.ID {
			others = append(others, c)
		}
	}

	slices.SortStableFunc(others, func(a, b models.Node) int {
		return cmp.Compare(geo.DistanceKm(n.Location, a.Location), geo.DistanceKm(n.Location, b.Location))
	})

	if k > len(others) {
		k = len(others)
	}
	return others[:k]
}
