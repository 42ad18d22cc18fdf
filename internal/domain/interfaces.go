// Package domain defines the canonical service interfaces shared across API
// layers (REST, WebSocket, client). Consumers should depend on these
// interfaces rather than re-declaring equivalent ones.
package domain

import (
	"context"

	"github.com/routegrid/routegrid/internal/models"
)

// NodeService defines all node operations.
type NodeService interface {
	ListNodes(ctx context.Context) ([]models.Node, error)
	GetNode(ctx context.Context, nodeID string) (*models.Node, error)
	CreateNode(ctx context.Context, req models.CreateNodeRequest) (*models.Node, error)
	DeleteNode(ctx context.Context, nodeID string) (int, error)
	NearestNode(ctx context.Context, at models.Coordinate) (*models.NearestResult, error)
}

// EdgeService defines all edge operations.
type EdgeService interface {
	ListEdges(ctx context.Context) ([]models.Edge, error)
	GetEdge(ctx context.Context, edgeID string) (*models.Edge, error)
	CreateEdge(ctx context.Context, req models.CreateEdgeRequest) (*models.Edge, error)
	DeleteEdge(ctx context.Context, edgeID string) error
	SetEdgeWeight(ctx context.Context, edgeID string, req models.SetWeightRequest) (*models.Edge, error)
	SetEdgeBlocked(ctx context.Context, edgeID string, req models.SetBlockedRequest) (*models.Edge, error)
}

// RouteService defines path search operations. Coordinate endpoints resolve
// to their nearest node before the search runs.
type RouteService interface {
	FindRoute(ctx context.Context, req models.RouteRequest) (*models.PathResult, error)
	CompareRoutes(ctx context.Context, req models.RouteRequest) (*models.CompareResult, error)
}

// TrafficService defines traffic simulation operations.
type TrafficService interface {
	Tick(ctx context.Context, req models.TickRequest) (*models.TickResult, error)
	Congestion(ctx context.Context) (*models.CongestionSummary, error)
}

// NetworkService defines whole-network operations.
type NetworkService interface {
	Rebuild(ctx context.Context, req models.RebuildRequest) (*models.NetworkStats, error)
	Stats(ctx context.Context) (*models.NetworkStats, error)
}
