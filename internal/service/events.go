package service

import (
	"github.com/routegrid/routegrid/internal/metrics"
	"github.com/routegrid/routegrid/internal/models"
)

// EventPublisher forwards typed events to connected WebSocket clients.
// Implementations must not block.
type EventPublisher interface {
	PublishEvent(eventType string, data any)
}

// Event types emitted by the services.
const (
	EventNodeCreated    = "node.created"
	EventNodeDeleted    = "node.deleted"
	EventEdgeCreated    = "edge.created"
	EventEdgeDeleted    = "edge.deleted"
	EventEdgeWeight     = "edge.weight"
	EventEdgeBlocked    = "edge.blocked"
	EventTrafficTick    = "traffic.tick"
	EventNetworkRebuilt = "network.rebuilt"
)

// publish is nil-safe so services constructed without a hub (tests, CLI
// tools) skip event emission.
func publish(p EventPublisher, eventType string, data any) {
	if p != nil {
		p.PublishEvent(eventType, data)
	}
}

// observeNetwork refreshes the network size gauges after a mutation.
func observeNetwork(stats models.NetworkStats) {
	metrics.NodeCount.Set(float64(stats.Nodes))
	metrics.EdgeCount.Set(float64(stats.Edges))
	metrics.BlockedEdges.Set(float64(stats.BlockedEdges))
}
