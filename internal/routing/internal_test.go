package routing

import (
	"context"
	"testing"

	"github.com/routegrid/routegrid/internal/models"
	"github.com/routegrid/routegrid/internal/store"
)

// diamondSnap has two equal-cost routes a-b-d and a-c-d plus a tail, so
// tie-breaking is exercised. Locations are irrelevant here.
func diamondSnap(t *testing.T) *store.Snapshot {
	t.Helper()

	s := store.New()
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		n := models.Node{ID: id, Name: id, Kind: models.NodeJunction}
		if err := s.AddNode(n); err != nil {
			t.Fatalf("AddNode(%s): %v", id, err)
		}
	}
	for _, def := range []struct {
		id, from, to string
		w            float64
	}{
		{"ab", "a", "b", 1},
		{"ac", "a", "c", 1},
		{"bd", "b", "d", 1},
		{"cd", "c", "d", 1},
		{"de", "d", "e", 1},
	} {
		e := models.Edge{
			ID:            def.id,
			From:          def.from,
			To:            def.to,
			RoadKind:      models.RoadStreet,
			BaseWeight:    def.w,
			CurrentWeight: def.w,
			TrafficLevel:  models.TrafficLow,
		}
		if err := s.AddEdge(e); err != nil {
			t.Fatalf("AddEdge(%s): %v", def.id, err)
		}
	}
	return s.Snapshot()
}

func TestAStar_ZeroHeuristic_MatchesDijkstra(t *testing.T) {
	t.Parallel()

	snap := diamondSnap(t)
	ctx := context.Background()
	zero := func(string) float64 { return 0 }

	want, err := dijkstra(ctx, snap, "a", "e")
	if err != nil {
		t.Fatalf("dijkstra: %v", err)
	}

	got, err := astar(ctx, snap, "a", "e", zero)
	if err != nil {
		t.Fatalf("astar: %v", err)
	}

	if got.TotalCost != want.TotalCost {
		t.Errorf("cost = %v, dijkstra found %v", got.TotalCost, want.TotalCost)
	}

	if len(got.Path) != len(want.Path) {
		t.Fatalf("path = %v, dijkstra found %v", got.Path, want.Path)
	}
	for i := range want.Path {
		if got.Path[i] != want.Path[i] {
			t.Errorf("path[%d] = %q, dijkstra found %q", i, got.Path[i], want.Path[i])
		}
	}

	if len(got.VisitedNodes) != len(want.VisitedNodes) {
		t.Fatalf("visited = %v, dijkstra saw %v", got.VisitedNodes, want.VisitedNodes)
	}
	for i := range want.VisitedNodes {
		if got.VisitedNodes[i] != want.VisitedNodes[i] {
			t.Errorf("visited[%d] = %q, dijkstra saw %q", i, got.VisitedNodes[i], want.VisitedNodes[i])
		}
	}
}

func TestDijkstra_TieBreakIsStable(t *testing.T) {
	t.Parallel()

	snap := diamondSnap(t)

	// b was pushed before c at equal cost, so b settles first and the
	// winning route through the diamond goes via b every run.
	res, err := dijkstra(context.Background(), snap, "a", "e")
	if err != nil {
		t.Fatalf("dijkstra: %v", err)
	}

	want := []string{"a", "b", "d", "e"}
	if len(res.Path) != len(want) {
		t.Fatalf("path = %v, want %v", res.Path, want)
	}
	for i := range want {
		if res.Path[i] != want[i] {
			t.Fatalf("path = %v, want %v", res.Path, want)
		}
	}

	for run := 0; run < 10; run++ {
		again, err := dijkstra(context.Background(), snap, "a", "e")
		if err != nil {
			t.Fatalf("dijkstra run %d: %v", run, err)
		}
		for i := range res.VisitedNodes {
			if again.VisitedNodes[i] != res.VisitedNodes[i] {
				t.Fatalf("run %d visited %v, first run saw %v", run, again.VisitedNodes, res.VisitedNodes)
			}
		}
	}
}

func TestFrontier_FIFOTieBreak(t *testing.T) {
	t.Parallel()

	f := newFrontier()
	f.push("x", 1)
	f.push("y", 1)
	f.push("z", 0.5)
	f.push("w", 1)

	want := []string{"z", "x", "y", "w"}
	for _, id := range want {
		if got := f.pop().node; got != id {
			t.Errorf("pop = %q, want %q", got, id)
		}
	}
	if f.Len() != 0 {
		t.Errorf("frontier not drained, %d left", f.Len())
	}
}
