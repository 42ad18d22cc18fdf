package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/routegrid/routegrid/internal/middleware"
	"github.com/routegrid/routegrid/internal/ws"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log         *logrus.Logger
	Hub         *ws.Hub
	Nodes       NodeRepository
	Edges       EdgeRepository
	Routes      RouteRepository
	Traffic     TrafficRepository
	Network     NetworkRepository
	CORSOrigins []string
	Version     string
}

// Router-level limits.
const (
	maxBodySize = 1 << 20 // 1 MB; the largest payload is a rebuild request
	rateLimit   = 100     // requests per second per IP
	rateBurst   = 200     // token bucket burst size
)

// setupMiddleware configures all middleware on the Gin engine.
func setupMiddleware(ctx context.Context, r *gin.Engine, deps *RouterDeps) {
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID(deps.Log))
	r.Use(ginLogger(deps.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.MaxBodySize(maxBodySize))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		MaxAge:           1 * time.Hour,
		AllowCredentials: false,
	}))
	r.Use(middleware.NewRateLimiter(ctx, rateLimit, rateBurst).Handler())
	r.Use(middleware.PrometheusMiddleware())

	// Metrics endpoint (unauthenticated, like health).
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// registerRoutes sets up all API route handlers on the given router group.
func registerRoutes(ctx context.Context, api *gin.RouterGroup, deps *RouterDeps) {
	log := deps.Log

	health := NewHealthHandler(deps.Network, deps.Hub, log, deps.Version)
	nodes := NewNodeHandler(deps.Nodes, log)
	edges := NewEdgeHandler(deps.Edges, log)
	routes := NewRouteHandler(deps.Routes, log)
	traffic := NewTrafficHandler(deps.Traffic, log)
	network := NewNetworkHandler(deps.Network, log)

	// Health and readiness.
	api.GET("/health", health.Liveness)
	api.GET("/ready", health.Readiness)

	// Nodes.
	api.GET("/nodes", nodes.List)
	api.POST("/nodes", nodes.Create)
	api.GET("/nodes/:id", nodes.Get)
	api.DELETE("/nodes/:id", nodes.Delete)

	// Edges.
	api.GET("/edges", edges.List)
	api.POST("/edges", edges.Create)
	api.GET("/edges/:id", edges.Get)
	api.DELETE("/edges/:id", edges.Delete)
	api.PUT("/edges/:id/weight", edges.SetWeight)
	api.PUT("/edges/:id/blocked", edges.SetBlocked)

	// Nearest-node resolution.
	api.GET("/resolve", nodes.Nearest)

	// Path search.
	api.POST("/routes", routes.Find)
	api.POST("/routes/compare", routes.Compare)

	// Traffic simulation.
	api.POST("/traffic/tick", traffic.Tick)
	api.GET("/traffic", traffic.Congestion)

	// Network lifecycle.
	api.POST("/network/rebuild", network.Rebuild)
	api.GET("/network/stats", network.Stats)

	// WebSocket endpoint.
	api.GET("/ws", wsHandler(ctx, log, deps.Hub, deps.CORSOrigins))
}

// NewRouter creates and configures the Gin engine with all middleware and routes.
func NewRouter(ctx context.Context, deps *RouterDeps) http.Handler {
	r := gin.New()
	setupMiddleware(ctx, r, deps)
	registerRoutes(ctx, r.Group("/api/v1"), deps)

	return r
}
