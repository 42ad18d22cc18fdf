package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
)

// node is the node shape served by the routegrid API.
type node struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
	Kind string `json:"kind"`
}

// createNodeRequest is the POST /api/v1/nodes payload.
type createNodeRequest struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Kind string  `json:"kind,omitempty"`
}

// fetchNodes reads all nodes from a routegrid server.
func fetchNodes(ctx context.Context, api *apiClient, base string) ([]node, error) {
	var resp struct {
		Nodes []node `json:"nodes"`
	}
	if err := api.getJSON(ctx, base+"/api/v1/nodes", &resp); err != nil {
		return nil, err
	}
	return resp.Nodes, nil
}

// createNodes posts nodes to the target, logging progress every 100. A node
// that already exists on the target counts as applied.
func createNodes(ctx context.Context, api *apiClient, base string, nodes []node) (int, error) {
	const progressEvery = 100

	applied := 0
	for i := range nodes {
		n := &nodes[i]
		req := createNodeRequest{ID: n.ID, Name: n.Name, Lat: n.Location.Lat, Lng: n.Location.Lng, Kind: n.Kind}

		status, err := api.postJSON(ctx, base+"/api/v1/nodes", req, nil)
		switch {
		case status == http.StatusCreated:
			applied++
		case status == http.StatusConflict:
			applied++
		case err != nil:
			return applied, fmt.Errorf("node %s: %w", n.ID, err)
		}

		if (i+1)%progressEvery == 0 {
			slog.Info("node progress", "done", i+1, "total", len(nodes))
		}
	}
	return applied, nil
}

// buildNodeSet creates a set of node IDs for fast lookup.
func buildNodeSet(nodes []node) map[string]bool {
	m := make(map[string]bool, len(nodes))
	for i := range nodes {
		m[nodes[i].ID] = true
	}
	return m
}
