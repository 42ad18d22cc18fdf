package client

import (
	"context"
	"net/url"
	"strconv"
)

// EdgeService handles edge CRUD and traffic override operations.
type EdgeService struct {
	c *Client
}

// edgeListResponse wraps the edge list response.
type edgeListResponse struct {
	Edges []Edge `json:"edges"`
	Count int    `json:"count"`
}

// setWeightRequest is the payload for a manual weight override.
type setWeightRequest struct {
	Weight float64 `json:"weight"`
}

// setBlockedRequest is the payload for blocking or unblocking an edge.
type setBlockedRequest struct {
	Blocked bool `json:"is_blocked"`
}

// List returns edges with optional filtering by blocked state and
// traffic level.
func (s *EdgeService) List(ctx context.Context, opts *EdgeListOptions) ([]Edge, error) {
	params := url.Values{}
	if opts != nil {
		if opts.Blocked != nil {
			params.Set("blocked", strconv.FormatBool(*opts.Blocked))
		}
		if opts.Level != "" {
			params.Set("level", opts.Level)
		}
	}
	var resp edgeListResponse
	if err := s.c.get(ctx, "/api/v1/edges", params, &resp); err != nil {
		return nil, err
	}
	return resp.Edges, nil
}

// Get returns a single edge by ID.
func (s *EdgeService) Get(ctx context.Context, id string) (*Edge, error) {
	var edge Edge
	if err := s.c.get(ctx, "/api/v1/edges/"+url.PathEscape(id), nil, &edge); err != nil {
		return nil, err
	}
	return &edge, nil
}

// Create creates a new edge.
func (s *EdgeService) Create(ctx context.Context, req *CreateEdgeRequest) (*Edge, error) {
	var edge Edge
	if err := s.c.post(ctx, "/api/v1/edges", req, &edge); err != nil {
		return nil, err
	}
	return &edge, nil
}

// Delete removes an edge by ID.
func (s *EdgeService) Delete(ctx context.Context, id string) error {
	return s.c.del(ctx, "/api/v1/edges/"+url.PathEscape(id), nil, nil)
}

// SetWeight overrides the current routing weight of an edge. The override
// lasts until the next traffic tick recomputes weights.
func (s *EdgeService) SetWeight(ctx context.Context, id string, weight float64) (*Edge, error) {
	var edge Edge
	if err := s.c.put(ctx, "/api/v1/edges/"+url.PathEscape(id)+"/weight", setWeightRequest{Weight: weight}, &edge); err != nil {
		return nil, err
	}
	return &edge, nil
}

// SetBlocked marks an edge as blocked or clears the block. Blocked edges
// are skipped by every path search.
func (s *EdgeService) SetBlocked(ctx context.Context, id string, blocked bool) (*Edge, error) {
	var edge Edge
	if err := s.c.put(ctx, "/api/v1/edges/"+url.PathEscape(id)+"/blocked", setBlockedRequest{Blocked: blocked}, &edge); err != nil {
		return nil, err
	}
	return &edge, nil
}
