package client

import (
	"context"
	"time"
)

// TrafficService handles traffic simulation operations.
type TrafficService struct {
	c *Client
}

// tickRequest pins the simulation clock for a tick.
type tickRequest struct {
	Now string `json:"now"`
}

// Tick triggers one traffic simulation pass at the server clock.
func (s *TrafficService) Tick(ctx context.Context) (*TickResult, error) {
	var result TickResult
	if err := s.c.post(ctx, "/api/v1/traffic/tick", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// TickAt triggers one traffic simulation pass with a pinned clock. The
// same instant and seed always produce the same weights.
func (s *TrafficService) TickAt(ctx context.Context, now time.Time) (*TickResult, error) {
	var result TickResult
	if err := s.c.post(ctx, "/api/v1/traffic/tick", tickRequest{Now: now.Format(time.RFC3339)}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Congestion returns the current traffic state across the network.
func (s *TrafficService) Congestion(ctx context.Context) (*CongestionSummary, error) {
	var summary CongestionSummary
	if err := s.c.get(ctx, "/api/v1/traffic", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
