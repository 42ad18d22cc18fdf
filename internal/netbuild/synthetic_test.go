package netbuild

import (
	"reflect"
	"testing"

	"github.com/routegrid/routegrid/internal/geo"
	"github.com/routegrid/routegrid/internal/models"
)

var testConfig = SyntheticConfig{
	Center:    models.Coordinate{Lat: 52.52, Lng: 13.405},
	RadiusKm:  25,
	NodeCount: 40,
	Seed:      7,
}

func TestSynthetic_Deterministic(t *testing.T) {
	t.Parallel()

	nodes1, edges1 := Synthetic(testConfig)
	nodes2, edges2 := Synthetic(testConfig)

	if !reflect.DeepEqual(nodes1, nodes2) {
		t.Error("same config produced different nodes")
	}
	if !reflect.DeepEqual(edges1, edges2) {
		t.Error("same config produced different edges")
	}
}

func TestSynthetic_SeedMatters(t *testing.T) {
	t.Parallel()

	_, edges1 := Synthetic(testConfig)

	other := testConfig
	other.Seed = 8
	_, edges2 := Synthetic(other)

	if reflect.DeepEqual(edges1, edges2) {
		t.Error("different seeds produced identical edges")
	}
}

func TestSynthetic_StaysInsideRadius(t *testing.T) {
	t.Parallel()

	nodes, _ := Synthetic(testConfig)

	if len(nodes) != testConfig.NodeCount {
		t.Fatalf("len(nodes) = %d, want %d", len(nodes), testConfig.NodeCount)
	}
	for _, n := range nodes {
		if d := geo.DistanceKm(testConfig.Center, n.Location); d > testConfig.RadiusKm+0.1 {
			t.Errorf("node %s is %.2f km from center, radius is %.0f", n.ID, d, testConfig.RadiusKm)
		}
	}
}

func TestSynthetic_Connected(t *testing.T) {
	t.Parallel()

	nodes, edges := Synthetic(testConfig)

	adjacency := make(map[string][]string)
	for _, e := range edges {
		adjacency[e.From] = append(adjacency[e.From], e.To)
	}

	seen := map[string]bool{nodes[0].ID: true}
	queue := []string{nodes[0].ID}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range adjacency[cur] {
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}

	for _, n := range nodes {
		if !seen[n.ID] {
			t.Errorf("node %s is unreachable from %s", n.ID, nodes[0].ID)
		}
	}
}

func TestSynthetic_EdgesAreValid(t *testing.T) {
	t.Parallel()

	nodes, edges := Synthetic(testConfig)

	ids := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		if ids[n.ID] {
			t.Fatalf("duplicate node id %s", n.ID)
		}
		ids[n.ID] = true
	}

	edgeIDs := make(map[string]bool, len(edges))
	for _, e := range edges {
		if edgeIDs[e.ID] {
			t.Errorf("duplicate edge id %s", e.ID)
		}
		edgeIDs[e.ID] = true

		if !ids[e.From] || !ids[e.To] {
			t.Errorf("edge %s references unknown nodes %s -> %s", e.ID, e.From, e.To)
		}
		if !e.RoadKind.Valid() {
			t.Errorf("edge %s has road kind %q", e.ID, e.RoadKind)
		}
		if e.BaseWeight != e.DistanceKm || e.CurrentWeight != e.BaseWeight {
			t.Errorf("edge %s weights not seeded from distance", e.ID)
		}
		if e.DistanceKm > 0 && e.DurationMinutes <= 0 {
			t.Errorf("edge %s has no duration", e.ID)
		}
	}
}

func TestSynthetic_PairedEdges(t *testing.T) {
	t.Parallel()

	_, edges := Synthetic(testConfig)

	byPair := make(map[string]bool, len(edges))
	for _, e := range edges {
		byPair[e.From+":"+e.To] = true
	}
	for _, e := range edges {
		if !byPair[e.To+":"+e.From] {
			t.Errorf("edge %s -> %s has no reverse", e.From, e.To)
		}
	}
}
