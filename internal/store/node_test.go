package store_test

import (
	"errors"
	"testing"

	"github.com/routegrid/routegrid/internal/models"
	"github.com/routegrid/routegrid/internal/store"
)

func TestAddNode(t *testing.T) {
	t.Parallel()

	s := store.New()
	if err := s.AddNode(node("a", 10, 20)); err != nil {
		t.Fatalf("AddNode: %v", err)
	}

	got, err := s.Node("a")
	if err != nil {
		t.Fatalf("Node: %v", err)
	}
	if got.Location.Lat != 10 || got.Location.Lng != 20 {
		t.Errorf("location = %+v, want 10,20", got.Location)
	}
}

func TestAddNode_Duplicate(t *testing.T) {
	t.Parallel()

	s := store.New()
	if err := s.AddNode(node("a", 0, 0)); err != nil {
		t.Fatalf("AddNode: %v", err)
	}

	err := s.AddNode(node("a", 1, 1))
	if !errors.Is(err, models.ErrDuplicateID) {
		t.Errorf("err = %v, want ErrDuplicateID", err)
	}
}

func TestNode_NotFound(t *testing.T) {
	t.Parallel()

	s := store.New()
	_, err := s.Node("ghost")
	if !errors.Is(err, models.ErrNodeNotFound) {
		t.Errorf("err = %v, want ErrNodeNotFound", err)
	}
}

func TestRemoveNode_CascadesEdges(t *testing.T) {
	t.Parallel()

	s := seeded(t)

	removed, existed := s.RemoveNode("b")
	if !existed {
		t.Fatal("node b should exist")
	}
	if removed != 2 {
		t.Errorf("removed edges = %d, want 2 (ab and bc)", removed)
	}

	if _, err := s.Edge("ab"); !errors.Is(err, models.ErrEdgeNotFound) {
		t.Errorf("edge ab should be gone, got %v", err)
	}
	if _, err := s.Edge("ac"); err != nil {
		t.Errorf("edge ac should survive: %v", err)
	}

	snap := s.Snapshot()
	if out := snap.Outgoing("a"); len(out) != 1 || out[0].ID != "ac" {
		t.Errorf("outgoing(a) = %v, want [ac]", out)
	}
}

func TestRemoveNode_Absent(t *testing.T) {
	t.Parallel()

	s := store.New()
	removed, existed := s.RemoveNode("ghost")
	if existed || removed != 0 {
		t.Errorf("removing absent node = (%d, %v), want (0, false)", removed, existed)
	}
}

func TestNodes_Order(t *testing.T) {
	t.Parallel()

	s := store.New()
	for _, id := range []string{"z", "m", "a"} {
		if err := s.AddNode(node(id, 0, 0)); err != nil {
			t.Fatalf("AddNode(%s): %v", id, err)
		}
	}

	got := s.Nodes()
	want := []string{"z", "m", "a"}
	for i := range want {
		if got[i].ID != want[i] {
			t.Errorf("nodes[%d] = %q, want %q (insertion order)", i, got[i].ID, want[i])
		}
	}
}
