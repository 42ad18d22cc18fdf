package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/routegrid/routegrid/internal/domain"
	"github.com/routegrid/routegrid/internal/metrics"
	"github.com/routegrid/routegrid/internal/models"
)

// TrafficStore is the surface simulator output is written through.
type TrafficStore interface {
	Edges() []models.Edge
	ApplyTraffic(updates []models.EdgeTraffic, at time.Time) int
	LastTick() *time.Time
	Stats() models.NetworkStats
}

// Weigher computes traffic-adjusted weights for an edge set at a point in
// time.
type Weigher interface {
	ComputeWeights(edges []models.Edge, now time.Time) []models.EdgeTraffic
}

// Compile-time check: *TrafficService must satisfy domain.TrafficService.
var _ domain.TrafficService = (*TrafficService)(nil)

// TrafficService applies simulator output to the store.
type TrafficService struct {
	store  TrafficStore
	sim    Weigher
	events EventPublisher
	log    *logrus.Logger
}

// NewTrafficService creates a TrafficService.
func NewTrafficService(store TrafficStore, sim Weigher, events EventPublisher, log *logrus.Logger) *TrafficService {
	return &TrafficService{store: store, sim: sim, events: events, log: log}
}

// Tick recomputes every edge weight for the requested (or current) time and
// writes the results back. Edges removed between compute and apply are
// skipped silently, so the updated count can be lower than the edge count.
func (s *TrafficService) Tick(ctx context.Context, req models.TickRequest) (*models.TickResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	started := time.Now()
	now := req.Time(time.Now().UTC())

	updates := s.sim.ComputeWeights(s.store.Edges(), now)
	applied := s.store.ApplyTraffic(updates, now)

	levels := make(map[models.TrafficLevel]int, 3)
	for _, u := range updates {
		levels[u.TrafficLevel]++
	}

	metrics.TicksTotal.Inc()
	metrics.TickDuration.Observe(time.Since(started).Seconds())
	observeNetwork(s.store.Stats())

	result := &models.TickResult{AppliedAt: now, UpdatedEdges: applied, Levels: levels}
	publish(s.events, EventTrafficTick, result)
	s.log.WithFields(logrus.Fields{
		"applied_at": now.Format(time.RFC3339), "updated_edges": applied,
	}).Info("traffic tick applied")

	return result, nil
}

// Congestion reports the live congestion state of the network.
func (s *TrafficService) Congestion(ctx context.Context) (*models.CongestionSummary, error) {
	stats := s.store.Stats()
	return &models.CongestionSummary{
		Levels:       stats.Levels,
		BlockedEdges: stats.BlockedEdges,
		LastTick:     s.store.LastTick(),
	}, nil
}
