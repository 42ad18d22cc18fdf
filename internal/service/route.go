package service

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/routegrid/routegrid/internal/domain"
	"github.com/routegrid/routegrid/internal/geo"
	"github.com/routegrid/routegrid/internal/metrics"
	"github.com/routegrid/routegrid/internal/models"
	"github.com/routegrid/routegrid/internal/routing"
	"github.com/routegrid/routegrid/internal/store"
)

// RouteStore is the read surface path searches run against.
type RouteStore interface {
	Snapshot() *store.Snapshot
}

// Compile-time check: *RouteService must satisfy domain.RouteService.
var _ domain.RouteService = (*RouteService)(nil)

// RouteService resolves request endpoints and runs path searches against a
// consistent snapshot, so concurrent traffic ticks never show a search a
// half-updated edge set.
type RouteService struct {
	store RouteStore
	log   *logrus.Logger
}

// NewRouteService creates a RouteService.
func NewRouteService(store RouteStore, log *logrus.Logger) *RouteService {
	return &RouteService{store: store, log: log}
}

// FindRoute runs the requested algorithm between the resolved endpoints.
func (s *RouteService) FindRoute(ctx context.Context, req models.RouteRequest) (*models.PathResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	alg, err := models.ParseAlgorithm(req.Algorithm)
	if err != nil {
		return nil, err
	}

	snap := s.store.Snapshot()
	from, to, err := s.endpoints(snap, req)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	res, err := routing.Find(ctx, snap, from, to, alg)
	metrics.SearchDuration.WithLabelValues(string(alg)).Observe(time.Since(started).Seconds())
	metrics.SearchesTotal.WithLabelValues(string(alg), outcome(res, err)).Inc()
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"from": from, "to": to, "algorithm": alg,
		"found": res.Found, "cost": res.TotalCost, "visited": len(res.VisitedNodes),
	}).Info("route searched")

	return &res, nil
}

// CompareRoutes runs all three algorithms over the same snapshot.
func (s *RouteService) CompareRoutes(ctx context.Context, req models.RouteRequest) (*models.CompareResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	snap := s.store.Snapshot()
	from, to, err := s.endpoints(snap, req)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	results, err := routing.Compare(ctx, snap, from, to)
	if err != nil {
		metrics.SearchesTotal.WithLabelValues("compare", "error").Inc()
		return nil, err
	}
	for _, res := range results {
		metrics.SearchesTotal.WithLabelValues(string(res.Algorithm), outcome(res, nil)).Inc()
	}

	s.log.WithFields(logrus.Fields{
		"from": from, "to": to, "duration": time.Since(started),
	}).Info("routes compared")

	return &models.CompareResult{Results: results}, nil
}

// endpoints resolves the request's node ids, mapping coordinates to their
// nearest node against the same snapshot the search will use.
func (s *RouteService) endpoints(snap *store.Snapshot, req models.RouteRequest) (from, to string, err error) {
	from, err = resolve(snap, req.From, req.FromCoord)
	if err != nil {
		return "", "", err
	}
	to, err = resolve(snap, req.To, req.ToCoord)
	if err != nil {
		return "", "", err
	}
	return from, to, nil
}

func resolve(snap *store.Snapshot, id string, coord *models.Coordinate) (string, error) {
	if coord == nil {
		return id, nil
	}
	node, _, err := geo.Nearest(snap.Nodes, *coord)
	if err != nil {
		return "", err
	}
	return node.ID, nil
}

func outcome(res models.PathResult, err error) string {
	switch {
	case errors.Is(err, models.ErrSearchCancelled):
		return "cancelled"
	case err != nil:
		return "error"
	case res.Found:
		return "found"
	default:
		return "unreachable"
	}
}
