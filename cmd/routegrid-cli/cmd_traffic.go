package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newTrafficCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "traffic",
		Short: "Drive and inspect the traffic simulation",
	}
	cmd.AddCommand(trafficTickCmd())
	cmd.AddCommand(trafficStatusCmd())
	return cmd
}

func trafficTickCmd() *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "tick",
		Short: "Run one simulation pass over every edge",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			if at == "" {
				result, err := apiClient.Traffic.Tick(ctx)
				if err != nil {
					fatal("traffic tick", err)
				}
				output(result, fmt.Sprintf("%d", result.UpdatedEdges))
				return
			}
			now, err := time.Parse(time.RFC3339, at)
			if err != nil {
				fatal("parse --at", err)
			}
			result, err := apiClient.Traffic.TickAt(ctx, now)
			if err != nil {
				fatal("traffic tick", err)
			}
			output(result, fmt.Sprintf("%d", result.UpdatedEdges))
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "Pin the simulation clock (RFC3339, e.g. 2026-08-22T08:30:00Z)")
	return cmd
}

func trafficStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current congestion summary",
		Run: func(cmd *cobra.Command, args []string) {
			summary, err := apiClient.Traffic.Congestion(context.Background())
			if err != nil {
				fatal("traffic status", err)
			}
			if flagFmt == "table" {
				rows := [][]string{
					{"Low", fmt.Sprintf("%d", summary.Levels["low"])},
					{"Medium", fmt.Sprintf("%d", summary.Levels["medium"])},
					{"High", fmt.Sprintf("%d", summary.Levels["high"])},
					{"Blocked", fmt.Sprintf("%d", summary.BlockedEdges)},
				}
				if summary.LastTick != nil {
					rows = append(rows, []string{"Last Tick", summary.LastTick.Format(time.RFC3339)})
				}
				formatTable([]string{"LEVEL", "EDGES"}, rows)
				return
			}
			output(summary, "")
		},
	}
}
