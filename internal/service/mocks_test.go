package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/routegrid/routegrid/internal/geo"
	"github.com/routegrid/routegrid/internal/models"
	"github.com/routegrid/routegrid/internal/store"
)

// capturedEvent is one event recorded by mockPublisher.
type capturedEvent struct {
	Type string
	Data any
}

// mockPublisher records published events.
type mockPublisher struct {
	mu     sync.Mutex
	events []capturedEvent
}

func (m *mockPublisher) PublishEvent(eventType string, data any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, capturedEvent{Type: eventType, Data: data})
}

func (m *mockPublisher) types() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.events))
	for i, e := range m.events {
		out[i] = e.Type
	}
	return out
}

// mockWeigher doubles every base weight and marks it high, recording the
// tick times it was asked for.
type mockWeigher struct {
	mu    sync.Mutex
	times []time.Time
}

func (m *mockWeigher) ComputeWeights(edges []models.Edge, now time.Time) []models.EdgeTraffic {
	m.mu.Lock()
	m.times = append(m.times, now)
	m.mu.Unlock()

	out := make([]models.EdgeTraffic, 0, len(edges))
	for _, e := range edges {
		out = append(out, models.EdgeTraffic{
			EdgeID:        e.ID,
			CurrentWeight: e.BaseWeight * 2,
			TrafficLevel:  models.TrafficHigh,
		})
	}
	return out
}

func (m *mockWeigher) tickTimes() []time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]time.Time, len(m.times))
	copy(cp, m.times)
	return cp
}

// mockTicker counts scheduled tick invocations.
type mockTicker struct {
	mu    sync.Mutex
	count int
	err   error
}

func (m *mockTicker) Tick(ctx context.Context, req models.TickRequest) (*models.TickResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count++
	if m.err != nil {
		return nil, m.err
	}
	return &models.TickResult{}, nil
}

func (m *mockTicker) ticks() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.count
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)
	return log
}

// Test network coordinates: three points northeast of Berlin center, nearly
// collinear so the two-hop path barely exceeds the direct line.
var (
	locA = models.Coordinate{Lat: 52.52, Lng: 13.405}
	locB = models.Coordinate{Lat: 52.53, Lng: 13.42}
	locC = models.Coordinate{Lat: 52.54, Lng: 13.44}
)

// seededStore builds a triangle where every edge weight equals its geometric
// length except a->c, which costs double. The cheapest route a to c runs
// through b.
func seededStore(t *testing.T) *store.Store {
	t.Helper()

	st := store.New()
	nodes := []models.Node{
		{ID: "a", Name: "Alexanderplatz", Location: locA, Kind: models.NodeCity},
		{ID: "b", Name: "Greifswalder", Location: locB, Kind: models.NodeJunction},
		{ID: "c", Name: "Weissensee", Location: locC, Kind: models.NodeJunction},
	}
	for _, n := range nodes {
		if err := st.AddNode(n); err != nil {
			t.Fatalf("seeding node %s: %v", n.ID, err)
		}
	}

	edges := []models.Edge{
		seedEdge("ab", "a", "b", locA, locB, 1),
		seedEdge("bc", "b", "c", locB, locC, 1),
		seedEdge("ac", "a", "c", locA, locC, 2),
	}
	for _, e := range edges {
		if err := st.AddEdge(e); err != nil {
			t.Fatalf("seeding edge %s: %v", e.ID, err)
		}
	}
	return st
}

func seedEdge(id, from, to string, fromLoc, toLoc models.Coordinate, factor float64) models.Edge {
	d := geo.DistanceKm(fromLoc, toLoc)
	return models.Edge{
		ID:            id,
		From:          from,
		To:            to,
		DistanceKm:    d,
		RoadKind:      models.RoadStreet,
		BaseWeight:    d * factor,
		CurrentWeight: d * factor,
		TrafficLevel:  models.TrafficLow,
	}
}
