// Package service provides business logic between API handlers and the
// in-memory graph store.
package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/routegrid/routegrid/internal/domain"
	"github.com/routegrid/routegrid/internal/geo"
	"github.com/routegrid/routegrid/internal/models"
)

// NodeStore is the data-access surface NodeService depends on.
type NodeStore interface {
	AddNode(n models.Node) error
	Node(id string) (models.Node, error)
	Nodes() []models.Node
	RemoveNode(id string) (removedEdges int, existed bool)
	Stats() models.NetworkStats
}

// Compile-time check: *NodeService must satisfy domain.NodeService.
var _ domain.NodeService = (*NodeService)(nil)

// NodeService wraps NodeStore with validation and event emission.
type NodeService struct {
	store  NodeStore
	events EventPublisher
	log    *logrus.Logger
}

// NewNodeService creates a NodeService.
func NewNodeService(store NodeStore, events EventPublisher, log *logrus.Logger) *NodeService {
	return &NodeService{store: store, events: events, log: log}
}

// ListNodes returns all nodes in insertion order (pass-through).
func (s *NodeService) ListNodes(ctx context.Context) ([]models.Node, error) {
	return s.store.Nodes(), nil
}

// GetNode returns a single node by ID (pass-through).
func (s *NodeService) GetNode(ctx context.Context, nodeID string) (*models.Node, error) {
	node, err := s.store.Node(nodeID)
	if err != nil {
		return nil, err
	}
	return &node, nil
}

// CreateNode validates the request and inserts the node.
func (s *NodeService) CreateNode(ctx context.Context, req models.CreateNodeRequest) (*models.Node, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	node := req.Node(time.Now().UTC())
	if err := s.store.AddNode(node); err != nil {
		return nil, err
	}

	observeNetwork(s.store.Stats())
	publish(s.events, EventNodeCreated, node)
	s.log.WithFields(logrus.Fields{"node_id": node.ID, "kind": node.Kind}).Info("node created")

	return &node, nil
}

// DeleteNode removes a node and every edge touching it, returning how many
// edges went with it.
func (s *NodeService) DeleteNode(ctx context.Context, nodeID string) (int, error) {
	removed, existed := s.store.RemoveNode(nodeID)
	if !existed {
		return 0, models.ErrNodeNotFound
	}

	observeNetwork(s.store.Stats())
	publish(s.events, EventNodeDeleted, map[string]any{"node_id": nodeID, "removed_edges": removed})
	s.log.WithFields(logrus.Fields{"node_id": nodeID, "removed_edges": removed}).Info("node deleted")

	return removed, nil
}

// NearestNode resolves a coordinate to the closest node by great-circle
// distance.
func (s *NodeService) NearestNode(ctx context.Context, at models.Coordinate) (*models.NearestResult, error) {
	node, dist, err := geo.Nearest(s.store.Nodes(), at)
	if err != nil {
		return nil, err
	}
	return &models.NearestResult{Node: node, DistanceKm: dist}, nil
}
