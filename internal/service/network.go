package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/routegrid/routegrid/internal/domain"
	"github.com/routegrid/routegrid/internal/models"
	"github.com/routegrid/routegrid/internal/netbuild"
)

// NetworkStore is the surface whole-network operations need.
type NetworkStore interface {
	ReplaceNetwork(nodes []models.Node, edges []models.Edge) error
	Stats() models.NetworkStats
}

// Builder generates a synthetic network for a config.
type Builder func(cfg netbuild.SyntheticConfig) ([]models.Node, []models.Edge)

// Compile-time check: *NetworkService must satisfy domain.NetworkService.
var _ domain.NetworkService = (*NetworkService)(nil)

// NetworkService rebuilds and inspects the network as a whole. Concurrent
// rebuilds with identical parameters collapse into a single generation run.
type NetworkService struct {
	store    NetworkStore
	build    Builder
	defaults netbuild.SyntheticConfig
	events   EventPublisher
	log      *logrus.Logger
	group    singleflight.Group
}

// NewNetworkService creates a NetworkService with the given rebuild defaults.
func NewNetworkService(store NetworkStore, defaults netbuild.SyntheticConfig, events EventPublisher, log *logrus.Logger) *NetworkService {
	return &NetworkService{
		store:    store,
		build:    netbuild.Synthetic,
		defaults: defaults,
		events:   events,
		log:      log,
	}
}

// Rebuild regenerates the synthetic network around the requested center,
// falling back to the configured defaults for any omitted parameter. The
// store swaps wholesale, so searches either see the old network or the new
// one, never a mix.
func (s *NetworkService) Rebuild(ctx context.Context, req models.RebuildRequest) (*models.NetworkStats, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cfg := s.defaults
	if req.Center != nil {
		cfg.Center = *req.Center
	}
	if req.RadiusKm > 0 {
		cfg.RadiusKm = req.RadiusKm
	}
	if req.NodeCount > 0 {
		cfg.NodeCount = req.NodeCount
	}
	if req.Seed != nil {
		cfg.Seed = *req.Seed
	}

	key := fmt.Sprintf("%+v", cfg)
	v, err, _ := s.group.Do(key, func() (any, error) {
		nodes, edges := s.build(cfg)
		if err := s.store.ReplaceNetwork(nodes, edges); err != nil {
			return nil, err
		}

		stats := s.store.Stats()
		observeNetwork(stats)
		publish(s.events, EventNetworkRebuilt, stats)
		s.log.WithFields(logrus.Fields{
			"nodes": stats.Nodes, "edges": stats.Edges,
			"radius_km": cfg.RadiusKm, "seed": cfg.Seed,
		}).Info("network rebuilt")

		return &stats, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*models.NetworkStats), nil
}

// Stats reports current store contents.
func (s *NetworkService) Stats(ctx context.Context) (*models.NetworkStats, error) {
	stats := s.store.Stats()
	return &stats, nil
}
