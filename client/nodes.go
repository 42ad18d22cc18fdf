package client

import (
	"context"
	"net/url"
)

// NodeService handles node CRUD operations.
type NodeService struct {
	c *Client
}

// nodeListResponse wraps the node list response.
type nodeListResponse struct {
	Nodes []Node `json:"nodes"`
	Count int    `json:"count"`
}

// List returns every node in the network.
func (s *NodeService) List(ctx context.Context) ([]Node, error) {
	var resp nodeListResponse
	if err := s.c.get(ctx, "/api/v1/nodes", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Nodes, nil
}

// Get returns a single node by ID.
func (s *NodeService) Get(ctx context.Context, id string) (*Node, error) {
	var node Node
	if err := s.c.get(ctx, "/api/v1/nodes/"+url.PathEscape(id), nil, &node); err != nil {
		return nil, err
	}
	return &node, nil
}

// Create creates a new node.
func (s *NodeService) Create(ctx context.Context, req *CreateNodeRequest) (*Node, error) {
	var node Node
	if err := s.c.post(ctx, "/api/v1/nodes", req, &node); err != nil {
		return nil, err
	}
	return &node, nil
}

// Delete removes a node and every edge touching it. It returns the number
// of edges that were removed along with the node.
func (s *NodeService) Delete(ctx context.Context, id string) (int, error) {
	var resp struct {
		Deleted      bool `json:"deleted"`
		RemovedEdges int  `json:"removed_edges"`
	}
	if err := s.c.del(ctx, "/api/v1/nodes/"+url.PathEscape(id), nil, &resp); err != nil {
		return 0, err
	}
	return resp.RemovedEdges, nil
}
