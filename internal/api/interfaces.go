package api

import (
	"context"

	"github.com/routegrid/routegrid/internal/models"
)

// NodeRepository defines node operations used by NodeHandler.
type NodeRepository interface {
	ListNodes(ctx context.Context) ([]models.Node, error)
	GetNode(ctx context.Context, nodeID string) (*models.Node, error)
	CreateNode(ctx context.Context, req models.CreateNodeRequest) (*models.Node, error)
	DeleteNode(ctx context.Context, nodeID string) (int, error)
	NearestNode(ctx context.Context, at models.Coordinate) (*models.NearestResult, error)
}

// EdgeRepository defines edge operations used by EdgeHandler.
type EdgeRepository interface {
	ListEdges(ctx context.Context) ([]models.Edge, error)
	GetEdge(ctx context.Context, edgeID string) (*models.Edge, error)
	CreateEdge(ctx context.Context, req models.CreateEdgeRequest) (*models.Edge, error)
	DeleteEdge(ctx context.Context, edgeID string) error
	SetEdgeWeight(ctx context.Context, edgeID string, req models.SetWeightRequest) (*models.Edge, error)
	SetEdgeBlocked(ctx context.Context, edgeID string, req models.SetBlockedRequest) (*models.Edge, error)
}

// RouteRepository defines path search operations used by RouteHandler.
// The service layer resolves coordinate endpoints; handlers pass requests through.
type RouteRepository interface {
	FindRoute(ctx context.Context, req models.RouteRequest) (*models.PathResult, error)
	CompareRoutes(ctx context.Context, req models.RouteRequest) (*models.CompareResult, error)
}

// TrafficRepository defines traffic simulation operations used by TrafficHandler.
type TrafficRepository interface {
	Tick(ctx context.Context, req models.TickRequest) (*models.TickResult, error)
	Congestion(ctx context.Context) (*models.CongestionSummary, error)
}

// NetworkRepository defines whole-network operations used by NetworkHandler
// and the health endpoints.
type NetworkRepository interface {
	Rebuild(ctx context.Context, req models.RebuildRequest) (*models.NetworkStats, error)
	Stats(ctx context.Context) (*models.NetworkStats, error)
}
