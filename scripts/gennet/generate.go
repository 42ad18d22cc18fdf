package main

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// dataset mirrors the YAML network definition the server loads. Distance,
// duration, and weight are left at zero so the loader derives them from
// the endpoint geometry.
type dataset struct {
	Name   string        `yaml:"name"`
	Active bool          `yaml:"active"`
	Nodes  []datasetNode `yaml:"nodes"`
	Edges  []datasetEdge `yaml:"edges"`
}

type datasetNode struct {
	ID   string  `yaml:"id"`
	Name string  `yaml:"name"`
	Lat  float64 `yaml:"lat"`
	Lng  float64 `yaml:"lng"`
	Kind string  `yaml:"kind,omitempty"`
}

type datasetEdge struct {
	ID            string `yaml:"id"`
	From          string `yaml:"from"`
	To            string `yaml:"to"`
	RoadKind      string `yaml:"road_kind,omitempty"`
	Bidirectional bool   `yaml:"bidirectional,omitempty"`
}

// Name pools for generated nodes.
var (
	namePrefixes = []string{"North", "South", "East", "West", "Old", "New", "Upper", "Lower", "Mid", "Outer"}
	nameSuffixes = []string{"gate", "bridge", "market", "field", "cross", "haven", "port", "wick", "stead", "holm"}
)

// generate builds a connected network of NodeCount nodes scattered over
// the disk around the configured center. Everything comes from the seeded
// stream, so the same config always produces the same file.
func generate(cfg config) *dataset {
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))

	ds := &dataset{Name: cfg.Name, Active: true}
	ds.Nodes = placeNodes(rng, cfg)
	ds.Edges = wireEdges(rng, ds.Nodes, cfg.RadiusKm)
	return ds
}

// placeNodes scatters nodes uniformly over the disk. sqrt on the radial
// draw keeps density uniform instead of clumping at the center.
func placeNodes(rng *rand.Rand, cfg config) []datasetNode {
	nodes := make([]datasetNode, 0, cfg.NodeCount)
	for i := 0; i < cfg.NodeCount; i++ {
		dist := cfg.RadiusKm * math.Sqrt(rng.Float64())
		bearing := rng.Float64() * 2 * math.Pi

		lat := cfg.CenterLat + dist*math.Cos(bearing)/kmPerDegreeLat
		lng := cfg.CenterLng + dist*math.Sin(bearing)/kmPerDegreeLng(cfg.CenterLat)

		nodes = append(nodes, datasetNode{
			ID:   fmt.Sprintf("n%d", i+1),
			Name: nodeName(rng, i),
			Lat:  lat,
			Lng:  lng,
			Kind: nodeKind(rng),
		})
	}
	return nodes
}

func nodeKind(rng *rand.Rand) string {
	switch r := rng.Float64(); {
	case r < 0.08:
		return "landmark"
	case r < 0.25:
		return "city"
	default:
		return "" // junction, the loader default
	}
}

func nodeName(rng *rand.Rand, i int) string {
	prefix := namePrefixes[rng.IntN(len(namePrefixes))]
	suffix := nameSuffixes[rng.IntN(len(nameSuffixes))]
	return fmt.Sprintf("%s%s %d", prefix, suffix, i+1)
}

// wireEdges links every node to its nearest predecessor, which keeps the
// network connected, then adds nearest-neighbor links for redundancy.
func wireEdges(rng *rand.Rand, nodes []datasetNode, radiusKm float64) []datasetEdge {
	edges := make([]datasetEdge, 0, len(nodes)*3)
	seen := make(map[string]bool)
	seq := 0

	link := func(a, b datasetNode, bidi bool) {
		key := a.ID + ">" + b.ID
		if seen[key] || a.ID == b.ID {
			return
		}
		seen[key] = true
		if bidi {
			seen[b.ID+">"+a.ID] = true
		}
		seq++
		edges = append(edges, datasetEdge{
			ID:            fmt.Sprintf("e%d", seq),
			From:          a.ID,
			To:            b.ID,
			RoadKind:      spanKind(distanceKm(a, b), radiusKm),
			Bidirectional: bidi,
		})
	}

	for i := 1; i < len(nodes); i++ {
		link(nodes[i], nearest(nodes[i], nodes[:i]), true)
	}

	for i := range nodes {
		for _, nb := range neighbors(nodes[i], nodes, 2) {
			// A small share of extra links stays one-way.
			link(nodes[i], nb, rng.Float64() >= 0.1)
		}
	}

	return edges
}

// spanKind picks a road class from the span length relative to the disk.
func spanKind(d, radiusKm float64) string {
	switch {
	case d > radiusKm/2:
		return "highway"
	case d < radiusKm/20:
		return "alley"
	default:
		return "" // street, the loader default
	}
}

func nearest(n datasetNode, candidates []datasetNode) datasetNode {
	best := candidates[0]
	bestD := distanceKm(n, best)
	for _, c := range candidates[1:] {
		if d := distanceKm(n, c); d < bestD {
			best, bestD = c, d
		}
	}
	return best
}

// neighbors returns the k nodes closest to n, excluding n itself.
func neighbors(n datasetNode, nodes []datasetNode, k int) []datasetNode {
	type scored struct {
		node datasetNode
		d    float64
	}
	candidates := make([]scored, 0, len(nodes)-1)
	for _, c := range nodes {
		if c.ID == n.ID {
			continue
		}
		candidates = append(candidates, scored{c, distanceKm(n, c)})
	}
	for i := 0; i < k && i < len(candidates); i++ {
		min := i
		for j := i + 1; j < len(candidates); j++ {
			if candidates[j].d < candidates[min].d {
				min = j
			}
		}
		candidates[i], candidates[min] = candidates[min], candidates[i]
	}
	if k > len(candidates) {
		k = len(candidates)
	}
	out := make([]datasetNode, k)
	for i := 0; i < k; i++ {
		out[i] = candidates[i].node
	}
	return out
}
