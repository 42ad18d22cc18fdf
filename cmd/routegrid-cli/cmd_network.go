package main

import (
	"context"
	"fmt"

	"github.com/routegrid/routegrid/client"
	"github.com/spf13/cobra"
)

func newNetworkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "network",
		Short: "Inspect and rebuild the whole network",
	}
	cmd.AddCommand(networkStatsCmd())
	cmd.AddCommand(networkRebuildCmd())
	return cmd
}

func networkStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show network statistics",
		Run: func(cmd *cobra.Command, args []string) {
			stats, err := apiClient.Network.Stats(context.Background())
			if err != nil {
				fatal("network stats", err)
			}
			if flagFmt == "table" {
				formatTable(
					[]string{"METRIC", "VALUE"},
					[][]string{
						{"Nodes", fmt.Sprintf("%d", stats.Nodes)},
						{"Edges", fmt.Sprintf("%d", stats.Edges)},
						{"Blocked Edges", fmt.Sprintf("%d", stats.BlockedEdges)},
						{"Low Traffic", fmt.Sprintf("%d", stats.Levels["low"])},
						{"Medium Traffic", fmt.Sprintf("%d", stats.Levels["medium"])},
						{"High Traffic", fmt.Sprintf("%d", stats.Levels["high"])},
					},
				)
				return
			}
			output(stats, "")
		},
	}
}

func networkRebuildCmd() *cobra.Command {
	var nodeCount int
	var radiusKm float64
	var center string
	var seed int64
	cmd := &cobra.Command{
		Use:   "rebuild",
		Short: "Replace the network with a fresh synthetic one",
		Long:  "Replace the whole network with a newly generated one. Omitted flags fall back to the server's configured defaults.",
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.RebuildRequest{
				NodeCount: nodeCount,
				RadiusKm:  radiusKm,
			}
			if center != "" {
				coord, err := parseCoordPair(center)
				if err != nil {
					fatal("parse --center", err)
				}
				req.Center = coord
			}
			if cmd.Flags().Changed("seed") {
				req.Seed = &seed
			}
			stats, err := apiClient.Network.Rebuild(context.Background(), req)
			if err != nil {
				fatal("network rebuild", err)
			}
			output(stats, fmt.Sprintf("%d", stats.Nodes))
		},
	}
	cmd.Flags().IntVar(&nodeCount, "nodes", 0, "Number of nodes to generate")
	cmd.Flags().Float64Var(&radiusKm, "radius-km", 0, "Radius of the generated disk")
	cmd.Flags().StringVar(&center, "center", "", "Center as lat,lng")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Generator seed (same seed, same network)")
	return cmd
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		Run: func(cmd *cobra.Command, args []string) {
			resp, err := apiClient.Health(context.Background())
			if err != nil {
				fatal("health", err)
			}
			output(resp, resp.Status)
		},
	}
}
