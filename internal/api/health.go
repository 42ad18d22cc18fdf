// Package api provides the HTTP handlers for the routing engine.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/routegrid/routegrid/internal/ws"
)

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	network   NetworkRepository
	hub       *ws.Hub
	log       *logrus.Logger
	version   string
	startTime time.Time
}

// NewHealthHandler creates a HealthHandler with the given dependencies.
func NewHealthHandler(network NetworkRepository, hub *ws.Hub, log *logrus.Logger, version string) *HealthHandler {
	return &HealthHandler{
		network:   network,
		hub:       hub,
		log:       log,
		version:   version,
		startTime: time.Now(),
	}
}

// readinessResponse is the JSON payload returned by the readiness endpoint.
type readinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// healthResponse is the JSON payload returned by the health/liveness endpoint.
type healthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Nodes         int     `json:"nodes"`
	Edges         int     `json:"edges"`
	WSClients     int     `json:"ws_clients"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// Liveness handles GET /api/v1/health. It returns status with graph size,
// ws clients, and uptime info.
func (h *HealthHandler) Liveness(c *gin.Context) {
	resp := healthResponse{
		Status:        "ok",
		Version:       h.version,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}

	// Best-effort graph size (non-fatal for liveness).
	if h.network != nil {
		if stats, err := h.network.Stats(c.Request.Context()); err == nil {
			resp.Nodes = stats.Nodes
			resp.Edges = stats.Edges
		}
	}

	if h.hub != nil {
		resp.WSClients = h.hub.ClientCount()
	}

	c.JSON(http.StatusOK, resp)
}

// Readiness handles GET /api/v1/ready. The server is ready once the graph
// holds nodes; an empty graph means startup construction has not finished
// (or failed), so searches would be pointless.
func (h *HealthHandler) Readiness(c *gin.Context) {
	checks := map[string]string{
		"graph": "ok",
	}
	status := "ready"
	statusCode := http.StatusOK

	stats, err := h.network.Stats(c.Request.Context())
	switch {
	case err != nil:
		h.log.WithError(err).Error("readiness: network stats failed")
		checks["graph"] = "error"
	case stats.Nodes == 0:
		checks["graph"] = "empty"
	}

	if checks["graph"] != "ok" {
		status = "not_ready"
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, readinessResponse{
		Status: status,
		Checks: checks,
	})
}
