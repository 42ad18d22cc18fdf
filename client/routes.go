package client

import (
	"context"
)

// RouteService handles path search operations.
type RouteService struct {
	c *Client
}

// compareResponse wraps the multi-algorithm comparison response.
type compareResponse struct {
	Results []PathResult `json:"results"`
}

// Find runs a single path search. An unreachable destination is not an
// error: the result comes back with Found false and nil costs.
func (s *RouteService) Find(ctx context.Context, req *RouteRequest) (*PathResult, error) {
	var result PathResult
	if err := s.c.post(ctx, "/api/v1/routes", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Compare runs the same search under every algorithm and returns one
// result per algorithm.
func (s *RouteService) Compare(ctx context.Context, req *RouteRequest) ([]PathResult, error) {
	var resp compareResponse
	if err := s.c.post(ctx, "/api/v1/routes/compare", req, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}
