package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/routegrid/routegrid/internal/domain"
	"github.com/routegrid/routegrid/internal/geo"
	"github.com/routegrid/routegrid/internal/models"
)

// EdgeStore is the data-access surface EdgeService depends on.
type EdgeStore interface {
	AddEdge(e models.Edge) error
	Edge(id string) (models.Edge, error)
	Edges() []models.Edge
	RemoveEdge(id string) bool
	SetEdgeWeight(id string, weight float64) (models.Edge, error)
	SetBlocked(id string, blocked bool) (models.Edge, error)
	Node(id string) (models.Node, error)
	Stats() models.NetworkStats
}

// Compile-time check: *EdgeService must satisfy domain.EdgeService.
var _ domain.EdgeService = (*EdgeService)(nil)

// EdgeService wraps EdgeStore with validation, derived geometry and event
// emission.
type EdgeService struct {
	store  EdgeStore
	events EventPublisher
	log    *logrus.Logger
}

// NewEdgeService creates an EdgeService.
func NewEdgeService(store EdgeStore, events EventPublisher, log *logrus.Logger) *EdgeService {
	return &EdgeService{store: store, events: events, log: log}
}

// ListEdges returns all edges in insertion order (pass-through).
func (s *EdgeService) ListEdges(ctx context.Context) ([]models.Edge, error) {
	return s.store.Edges(), nil
}

// GetEdge returns a single edge by ID (pass-through).
func (s *EdgeService) GetEdge(ctx context.Context, edgeID string) (*models.Edge, error) {
	edge, err := s.store.Edge(edgeID)
	if err != nil {
		return nil, err
	}
	return &edge, nil
}

// CreateEdge validates the request, fills distance and duration from the
// endpoint geometry when absent, and inserts the edge. The base weight
// starts equal to the distance, the free-flow cost.
func (s *EdgeService) CreateEdge(ctx context.Context, req models.CreateEdgeRequest) (*models.Edge, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	from, err := s.store.Node(req.From)
	if err != nil {
		return nil, fmt.Errorf("%w: from node %q", models.ErrInvalidReference, req.From)
	}
	to, err := s.store.Node(req.To)
	if err != nil {
		return nil, fmt.Errorf("%w: to node %q", models.ErrInvalidReference, req.To)
	}

	distance := req.DistanceKm
	if distance == 0 {
		distance = geo.DistanceKm(from.Location, to.Location)
	}
	duration := req.DurationMinutes
	if duration == 0 {
		duration = distance / req.RoadKind.SpeedKmh() * 60
	}

	edge := models.Edge{
		ID:              req.ID,
		From:            req.From,
		To:              req.To,
		DistanceKm:      distance,
		DurationMinutes: duration,
		RoadKind:        req.RoadKind,
		BaseWeight:      distance,
		CurrentWeight:   distance,
		TrafficLevel:    models.TrafficLow,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.store.AddEdge(edge); err != nil {
		return nil, err
	}

	observeNetwork(s.store.Stats())
	publish(s.events, EventEdgeCreated, edge)
	s.log.WithFields(logrus.Fields{
		"edge_id": edge.ID, "from": edge.From, "to": edge.To, "road_kind": edge.RoadKind,
	}).Info("edge created")

	return &edge, nil
}

// DeleteEdge removes an edge by ID.
func (s *EdgeService) DeleteEdge(ctx context.Context, edgeID string) error {
	if !s.store.RemoveEdge(edgeID) {
		return models.ErrEdgeNotFound
	}

	observeNetwork(s.store.Stats())
	publish(s.events, EventEdgeDeleted, map[string]any{"edge_id": edgeID})
	s.log.WithField("edge_id", edgeID).Info("edge deleted")

	return nil
}

// SetEdgeWeight overrides an edge's current weight. The base weight is left
// alone so the next traffic tick recomputes from the same free-flow cost.
func (s *EdgeService) SetEdgeWeight(ctx context.Context, edgeID string, req models.SetWeightRequest) (*models.Edge, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	edge, err := s.store.SetEdgeWeight(edgeID, *req.Weight)
	if err != nil {
		return nil, err
	}

	publish(s.events, EventEdgeWeight, map[string]any{"edge_id": edgeID, "current_weight": edge.CurrentWeight})
	s.log.WithFields(logrus.Fields{"edge_id": edgeID, "weight": edge.CurrentWeight}).Info("edge weight overridden")

	return &edge, nil
}

// SetEdgeBlocked toggles whether an edge participates in search.
func (s *EdgeService) SetEdgeBlocked(ctx context.Context, edgeID string, req models.SetBlockedRequest) (*models.Edge, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	edge, err := s.store.SetBlocked(edgeID, *req.Blocked)
	if err != nil {
		return nil, err
	}

	observeNetwork(s.store.Stats())
	publish(s.events, EventEdgeBlocked, map[string]any{"edge_id": edgeID, "is_blocked": edge.Blocked})
	s.log.WithFields(logrus.Fields{"edge_id": edgeID, "is_blocked": edge.Blocked}).Info("edge blocked state changed")

	return &edge, nil
}
