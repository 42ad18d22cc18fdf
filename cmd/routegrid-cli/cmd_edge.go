package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/routegrid/routegrid/client"
	"github.com/spf13/cobra"
)

func newEdgeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edge",
		Short: "Manage road segments",
	}
	cmd.AddCommand(edgeCreateCmd())
	cmd.AddCommand(edgeGetCmd())
	cmd.AddCommand(edgeListCmd())
	cmd.AddCommand(edgeDeleteCmd())
	cmd.AddCommand(edgeSetWeightCmd())
	cmd.AddCommand(edgeBlockCmd())
	cmd.AddCommand(edgeUnblockCmd())
	return cmd
}

func edgeCreateCmd() *cobra.Command {
	var edgeID, roadKind string
	var distanceKm, durationMin float64
	cmd := &cobra.Command{
		Use:   "create <from> <to>",
		Short: "Create an edge between two nodes",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.CreateEdgeRequest{
				ID:              edgeID,
				From:            args[0],
				To:              args[1],
				DistanceKm:      distanceKm,
				DurationMinutes: durationMin,
				RoadKind:        roadKind,
			}
			edge, err := apiClient.Edges.Create(context.Background(), req)
			if err != nil {
				fatal("create edge", err)
			}
			output(edge, edge.ID)
		},
	}
	cmd.Flags().StringVar(&edgeID, "id", "", "Edge ID (generated when omitted)")
	cmd.Flags().Float64Var(&distanceKm, "distance-km", 0, "Segment length (derived from geometry when omitted)")
	cmd.Flags().Float64Var(&durationMin, "duration-min", 0, "Free-flow travel time (derived when omitted)")
	cmd.Flags().StringVar(&roadKind, "road-kind", "", "Road kind: highway|street|alley")
	return cmd
}

func edgeGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get an edge by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			edge, err := apiClient.Edges.Get(context.Background(), args[0])
			if err != nil {
				fatal("get edge", err)
			}
			output(edge, edge.ID)
		},
	}
}

func edgeListCmd() *cobra.Command {
	var blocked bool
	var level string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List edges",
		Run: func(cmd *cobra.Command, args []string) {
			opts := &client.EdgeListOptions{Level: level}
			if cmd.Flags().Changed("blocked") {
				opts.Blocked = &blocked
			}
			edges, err := apiClient.Edges.List(context.Background(), opts)
			if err != nil {
				fatal("list edges", err)
			}
			if flagFmt == "table" {
				headers := []string{"ID", "FROM", "TO", "KM", "WEIGHT", "LEVEL", "BLOCKED"}
				var rows [][]string
				for _, e := range edges {
					rows = append(rows, []string{
						e.ID, e.From, e.To,
						fmt.Sprintf("%.2f", e.DistanceKm),
						fmt.Sprintf("%.2f", e.CurrentWeight),
						e.TrafficLevel,
						strconv.FormatBool(e.Blocked),
					})
				}
				formatTable(headers, rows)
				return
			}
			if flagFmt == "quiet" {
				for _, e := range edges {
					fmt.Println(e.ID)
				}
				return
			}
			output(edges, "")
		},
	}
	cmd.Flags().BoolVar(&blocked, "blocked", false, "Filter by blocked state")
	cmd.Flags().StringVar(&level, "level", "", "Filter by traffic level: low|medium|high")
	return cmd
}

func edgeDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an edge",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := apiClient.Edges.Delete(context.Background(), args[0]); err != nil {
				fatal("delete edge", err)
			}
			fmt.Println("deleted")
		},
	}
}

func edgeSetWeightCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-weight <id> <weight>",
		Short: "Override the routing weight of an edge until the next tick",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			weight, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				fatal("parse weight", err)
			}
			edge, err := apiClient.Edges.SetWeight(context.Background(), args[0], weight)
			if err != nil {
				fatal("set weight", err)
			}
			output(edge, edge.ID)
		},
	}
}

func edgeBlockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "block <id>",
		Short: "Block an edge so searches route around it",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			edge, err := apiClient.Edges.SetBlocked(context.Background(), args[0], true)
			if err != nil {
				fatal("block edge", err)
			}
			output(edge, edge.ID)
		},
	}
}

func edgeUnblockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unblock <id>",
		Short: "Clear the block on an edge",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			edge, err := apiClient.Edges.SetBlocked(context.Background(), args[0], false)
			if err != nil {
				fatal("unblock edge", err)
			}
			output(edge, edge.ID)
		},
	}
}
