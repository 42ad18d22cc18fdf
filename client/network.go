package client

import (
	"context"
)

// NetworkService handles whole-network lifecycle operations.
type NetworkService struct {
	c *Client
}

// Rebuild replaces the network with a freshly generated synthetic one.
// A nil request uses the server's configured defaults.
func (s *NetworkService) Rebuild(ctx context.Context, req *RebuildRequest) (*NetworkStats, error) {
	var stats NetworkStats
	var body any
	if req != nil {
		body = req
	}
	if err := s.c.post(ctx, "/api/v1/network/rebuild", body, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Stats returns node, edge, and congestion counts for the network.
func (s *NetworkService) Stats(ctx context.Context) (*NetworkStats, error) {
	var stats NetworkStats
	if err := s.c.get(ctx, "/api/v1/network/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
