package api_test

import (
	"context"

	"github.com/routegrid/routegrid/internal/models"
)

// mockNodeRepo implements api.NodeRepository for testing.
type mockNodeRepo struct {
	listFn    func(ctx context.Context) ([]models.Node, error)
	getFn     func(ctx context.Context, nodeID string) (*models.Node, error)
	createFn  func(ctx context.Context, req models.CreateNodeRequest) (*models.Node, error)
	deleteFn  func(ctx context.Context, nodeID string) (int, error)
	nearestFn func(ctx context.Context, at models.Coordinate) (*models.NearestResult, error)
}

func (m *mockNodeRepo) ListNodes(ctx context.Context) ([]models.Node, error) {
	return m.listFn(ctx)
}

func (m *mockNodeRepo) GetNode(ctx context.Context, nodeID string) (*models.Node, error) {
	return m.getFn(ctx, nodeID)
}

func (m *mockNodeRepo) CreateNode(ctx context.Context, req models.CreateNodeRequest) (*models.Node, error) {
	return m.createFn(ctx, req)
}

func (m *mockNodeRepo) DeleteNode(ctx context.Context, nodeID string) (int, error) {
	return m.deleteFn(ctx, nodeID)
}

func (m *mockNodeRepo) NearestNode(ctx context.Context, at models.Coordinate) (*models.NearestResult, error) {
	return m.nearestFn(ctx, at)
}

// mockEdgeRepo implements api.EdgeRepository for testing.
type mockEdgeRepo struct {
	listFn       func(ctx context.Context) ([]models.Edge, error)
	getFn        func(ctx context.Context, edgeID string) (*models.Edge, error)
	createFn     func(ctx context.Context, req models.CreateEdgeRequest) (*models.Edge, error)
	deleteFn     func(ctx context.Context, edgeID string) error
	setWeightFn  func(ctx context.Context, edgeID string, req models.SetWeightRequest) (*models.Edge, error)
	setBlockedFn func(ctx context.Context, edgeID string, req models.SetBlockedRequest) (*models.Edge, error)
}

func (m *mockEdgeRepo) ListEdges(ctx context.Context) ([]models.Edge, error) {
	return m.listFn(ctx)
}

func (m *mockEdgeRepo) GetEdge(ctx context.Context, edgeID string) (*models.Edge, error) {
	return m.getFn(ctx, edgeID)
}

func (m *mockEdgeRepo) CreateEdge(ctx context.Context, req models.CreateEdgeRequest) (*models.Edge, error) {
	return m.createFn(ctx, req)
}

func (m *mockEdgeRepo) DeleteEdge(ctx context.Context, edgeID string) error {
	return m.deleteFn(ctx, edgeID)
}

func (m *mockEdgeRepo) SetEdgeWeight(ctx context.Context, edgeID string, req models.SetWeightRequest) (*models.Edge, error) {
	return m.setWeightFn(ctx, edgeID, req)
}

func (m *mockEdgeRepo) SetEdgeBlocked(ctx context.Context, edgeID string, req models.SetBlockedRequest) (*models.Edge, error) {
	return m.setBlockedFn(ctx, edgeID, req)
}

// mockRouteRepo implements api.RouteRepository for testing.
type mockRouteRepo struct {
	findFn    func(ctx context.Context, req models.RouteRequest) (*models.PathResult, error)
	compareFn func(ctx context.Context, req models.RouteRequest) (*models.CompareResult, error)
}

func (m *mockRouteRepo) FindRoute(ctx context.Context, req models.RouteRequest) (*models.PathResult, error) {
	return m.findFn(ctx, req)
}

func (m *mockRouteRepo) CompareRoutes(ctx context.Context, req models.RouteRequest) (*models.CompareResult, error) {
	return m.compareFn(ctx, req)
}

// mockTrafficRepo implements api.TrafficRepository for testing.
type mockTrafficRepo struct {
	tickFn       func(ctx context.Context, req models.TickRequest) (*models.TickResult, error)
	congestionFn func(ctx context.Context) (*models.CongestionSummary, error)
}

func (m *mockTrafficRepo) Tick(ctx context.Context, req models.TickRequest) (*models.TickResult, error) {
	return m.tickFn(ctx, req)
}

func (m *mockTrafficRepo) Congestion(ctx context.Context) (*models.CongestionSummary, error) {
	return m.congestionFn(ctx)
}

// mockNetworkRepo implements api.NetworkRepository for testing.
type mockNetworkRepo struct {
	rebuildFn func(ctx context.Context, req models.RebuildRequest) (*models.NetworkStats, error)
	statsFn   func(ctx context.Context) (*models.NetworkStats, error)
}

func (m *mockNetworkRepo) Rebuild(ctx context.Context, req models.RebuildRequest) (*models.NetworkStats, error) {
	return m.rebuildFn(ctx, req)
}

func (m *mockNetworkRepo) Stats(ctx context.Context) (*models.NetworkStats, error) {
	return m.statsFn(ctx)
}
