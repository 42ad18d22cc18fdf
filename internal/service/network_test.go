package service

import (
	"context"
	"testing"

	"github.com/routegrid/routegrid/internal/models"
	"github.com/routegrid/routegrid/internal/netbuild"
	"github.com/routegrid/routegrid/internal/store"
)

var rebuildDefaults = netbuild.SyntheticConfig{
	Center:    models.Coordinate{Lat: 52.52, Lng: 13.405},
	RadiusKm:  20,
	NodeCount: 30,
	Seed:      1,
}

func TestNetworkService_Rebuild(t *testing.T) {
	t.Parallel()

	st := store.New()
	events := &mockPublisher{}
	svc := NewNetworkService(st, rebuildDefaults, events, testLogger())

	stats, err := svc.Rebuild(context.Background(), models.RebuildRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Nodes != rebuildDefaults.NodeCount {
		t.Errorf("stats.Nodes = %d, want %d", stats.Nodes, rebuildDefaults.NodeCount)
	}
	if stats.Edges == 0 {
		t.Error("expected a wired network")
	}
	if len(st.Nodes()) != rebuildDefaults.NodeCount {
		t.Errorf("store nodes = %d, want %d", len(st.Nodes()), rebuildDefaults.NodeCount)
	}

	types := events.types()
	if len(types) != 1 || types[0] != EventNetworkRebuilt {
		t.Errorf("events = %v, want [%s]", types, EventNetworkRebuilt)
	}
}

func TestNetworkService_Rebuild_Overrides(t *testing.T) {
	t.Parallel()

	st := store.New()
	svc := NewNetworkService(st, rebuildDefaults, nil, testLogger())

	stats, err := svc.Rebuild(context.Background(), models.RebuildRequest{NodeCount: 12})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Nodes != 12 {
		t.Errorf("stats.Nodes = %d, want 12", stats.Nodes)
	}
}

func TestNetworkService_Rebuild_SameSeedSameNetwork(t *testing.T) {
	t.Parallel()

	build := func() []models.Node {
		st := store.New()
		svc := NewNetworkService(st, rebuildDefaults, nil, testLogger())
		if _, err := svc.Rebuild(context.Background(), models.RebuildRequest{Seed: ptr(int64(99))}); err != nil {
			t.Fatalf("rebuild: %v", err)
		}
		return st.Nodes()
	}

	first, second := build(), build()
	if len(first) != len(second) {
		t.Fatalf("node counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID || first[i].Location != second[i].Location {
			t.Fatalf("node %d differs between identical rebuilds", i)
		}
	}
}

func TestNetworkService_Rebuild_Invalid(t *testing.T) {
	t.Parallel()

	svc := NewNetworkService(store.New(), rebuildDefaults, nil, testLogger())

	if _, err := svc.Rebuild(context.Background(), models.RebuildRequest{RadiusKm: 900}); err == nil {
		t.Error("expected error for oversized radius")
	}
}

func TestNetworkService_Stats(t *testing.T) {
	t.Parallel()

	svc := NewNetworkService(seededStore(t), rebuildDefaults, nil, testLogger())

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Nodes != 3 || stats.Edges != 3 {
		t.Errorf("stats = %d nodes / %d edges, want 3 / 3", stats.Nodes, stats.Edges)
	}
}
