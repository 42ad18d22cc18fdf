package main

import (
	"context"
	"log/slog"
	"net/http"
)

// edge is the edge shape served by the routegrid API.
type edge struct {
	ID              string  `json:"id"`
	From            string  `json:"from"`
	To              string  `json:"to"`
	DistanceKm      float64 `json:"distance_km"`
	DurationMinutes float64 `json:"duration_minutes"`
	RoadKind        string  `json:"road_kind"`
	Blocked         bool    `json:"is_blocked"`
}

// createEdgeRequest is the POST /api/v1/edges payload.
type createEdgeRequest struct {
	ID              string  `json:"id"`
	From            string  `json:"from"`
	To              string  `json:"to"`
	DistanceKm      float64 `json:"distance_km,omitempty"`
	DurationMinutes float64 `json:"duration_minutes,omitempty"`
	RoadKind        string  `json:"road_kind,omitempty"`
}

// setBlockedRequest is the PUT /api/v1/edges/{id}/blocked payload.
type setBlockedRequest struct {
	Blocked bool `json:"is_blocked"`
}

// fetchEdges reads all edges from a routegrid server.
func fetchEdges(ctx context.Context, api *apiClient, base string) ([]edge, error) {
	var resp struct {
		Edges []edge `json:"edges"`
	}
	if err := api.getJSON(ctx, base+"/api/v1/edges", &resp); err != nil {
		return nil, err
	}
	return resp.Edges, nil
}

// createEdges posts edges to the target, skipping those with missing
// endpoints or rejected requests. Blocked edges have their block replayed
// on the target so closures survive the copy. Returns applied count,
// blocked-restored count, and the skip list.
func createEdges(ctx context.Context, api *apiClient, base string, edges []edge, nodeIDs map[string]bool) (int, int, []skippedEdge) {
	var skipped []skippedEdge
	applied := 0
	blockedRestored := 0

	for i := range edges {
		e := &edges[i]
		if !nodeIDs[e.From] {
			skipped = append(skipped, skippedEdge{e.ID, e.From, e.To, "from node not found"})
			continue
		}
		if !nodeIDs[e.To] {
			skipped = append(skipped, skippedEdge{e.ID, e.From, e.To, "to node not found"})
			continue
		}

		req := createEdgeRequest{
			ID:              e.ID,
			From:            e.From,
			To:              e.To,
			DistanceKm:      e.DistanceKm,
			DurationMinutes: e.DurationMinutes,
			RoadKind:        e.RoadKind,
		}

		status, err := api.postJSON(ctx, base+"/api/v1/edges", req, nil)
		switch {
		case status == http.StatusCreated, status == http.StatusConflict:
			applied++
		default:
			reason := "request failed"
			if err != nil {
				reason = err.Error()
			}
			slog.Warn("edge create failed, skipping", "edge", e.ID, "error", reason)
			skipped = append(skipped, skippedEdge{e.ID, e.From, e.To, reason})
			continue
		}

		if e.Blocked {
			if blockEdge(ctx, api, base, e.ID) {
				blockedRestored++
			}
		}
	}
	return applied, blockedRestored, skipped
}

// blockEdge replays a closure on the target. Failures are logged but do not
// fail the copy; the edge itself already made it across.
func blockEdge(ctx context.Context, api *apiClient, base string, edgeID string) bool {
	status, err := api.putJSON(ctx, base+"/api/v1/edges/"+edgeID+"/blocked", setBlockedRequest{Blocked: true})
	if status != http.StatusOK {
		slog.Warn("restoring blocked state failed", "edge", edgeID, "error", err)
		return false
	}
	return true
}
