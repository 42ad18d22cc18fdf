// Command routegrid runs the road-network routing engine: an in-memory
// graph store behind a REST and WebSocket API, with a seeded traffic
// simulator reweighting edges in the background.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/routegrid/routegrid/internal/api"
	"github.com/routegrid/routegrid/internal/config"
	"github.com/routegrid/routegrid/internal/models"
	"github.com/routegrid/routegrid/internal/netbuild"
	"github.com/routegrid/routegrid/internal/service"
	"github.com/routegrid/routegrid/internal/store"
	"github.com/routegrid/routegrid/internal/traffic"
	"github.com/routegrid/routegrid/internal/ws"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

func main() {
	log := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("loading configuration")
	}
	configureLogger(log, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.WithError(err).Fatal("server error")
	}
	log.Info("server stopped")
}

// run wires the store, simulator, services, and HTTP server together and
// blocks until the context is cancelled or a component fails.
func run(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	graph := store.New()

	nodes, edges, err := buildNetwork(ctx, cfg)
	if err != nil {
		return fmt.Errorf("building network: %w", err)
	}
	if err := graph.ReplaceNetwork(nodes, edges); err != nil {
		return fmt.Errorf("loading network: %w", err)
	}

	stats := graph.Stats()
	log.WithFields(logrus.Fields{
		"nodes":  stats.Nodes,
		"edges":  stats.Edges,
		"source": networkSource(cfg),
	}).Info("network loaded")

	hub := ws.NewHub(log)
	sim := traffic.New(cfg.TrafficSeed)

	nodeSvc := service.NewNodeService(graph, hub, log)
	edgeSvc := service.NewEdgeService(graph, hub, log)
	routeSvc := service.NewRouteService(graph, log)
	trafficSvc := service.NewTrafficService(graph, sim, hub, log)
	networkSvc := service.NewNetworkService(graph, syntheticDefaults(cfg), hub, log)

	router := api.NewRouter(ctx, &api.RouterDeps{
		Log:         log,
		Hub:         hub,
		Nodes:       nodeSvc,
		Edges:       edgeSvc,
		Routes:      routeSvc,
		Traffic:     trafficSvc,
		Network:     networkSvc,
		CORSOrigins: cfg.CORSOrigins,
		Version:     config.Version,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	worker := service.NewTickWorker(trafficSvc, cfg.TickInterval, log)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		hub.Run(gctx)
		return nil
	})

	g.Go(func() error {
		worker.Run(gctx)
		return nil
	})

	g.Go(func() error {
		log.WithFields(logrus.Fields{
			"addr":    srv.Addr,
			"version": config.Version,
		}).Info("http server listening")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		// Drain WebSocket clients before closing the listener; hijacked
		// connections are not covered by http.Server.Shutdown.
		hub.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}

		return nil
	})

	return g.Wait()
}

// buildNetwork constructs the startup graph from the configured source.
func buildNetwork(ctx context.Context, cfg *config.Config) ([]models.Node, []models.Edge, error) {
	switch {
	case cfg.OSMFile != "":
		return netbuild.ImportOSM(ctx, cfg.OSMFile)
	case cfg.NetworkFile != "":
		return netbuild.LoadFile(cfg.NetworkFile)
	default:
		nodes, edges := netbuild.Synthetic(syntheticDefaults(cfg))
		return nodes, edges, nil
	}
}

// syntheticDefaults maps config to generator parameters. The same values
// back the rebuild endpoint when a request omits fields.
func syntheticDefaults(cfg *config.Config) netbuild.SyntheticConfig {
	return netbuild.SyntheticConfig{
		Center:    models.Coordinate{Lat: cfg.CenterLat, Lng: cfg.CenterLng},
		RadiusKm:  cfg.RadiusKm,
		NodeCount: cfg.NodeCount,
		Seed:      cfg.TrafficSeed,
	}
}

func networkSource(cfg *config.Config) string {
	switch {
	case cfg.OSMFile != "":
		return "osm:" + cfg.OSMFile
	case cfg.NetworkFile != "":
		return "file:" + cfg.NetworkFile
	default:
		return "synthetic"
	}
}

// configureLogger applies the configured level and format. Unparseable
// levels fall back to info rather than failing startup.
func configureLogger(log *logrus.Logger, cfg *config.Config) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if strings.EqualFold(cfg.LogFormat, "json") {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
}
