package main

import (
	"context"
	"fmt"

	"github.com/routegrid/routegrid/client"
	"github.com/spf13/cobra"
)

func newNodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "node",
		Short: "Manage network nodes",
	}
	cmd.AddCommand(nodeCreateCmd())
	cmd.AddCommand(nodeGetCmd())
	cmd.AddCommand(nodeDeleteCmd())
	cmd.AddCommand(nodeListCmd())
	return cmd
}

func nodeCreateCmd() *cobra.Command {
	var nodeID, kind string
	var lat, lng float64
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a node",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.CreateNodeRequest{
				ID:   nodeID,
				Name: args[0],
				Lat:  lat,
				Lng:  lng,
				Kind: kind,
			}
			node, err := apiClient.Nodes.Create(context.Background(), req)
			if err != nil {
				fatal("create node", err)
			}
			output(node, node.ID)
		},
	}
	cmd.Flags().StringVar(&nodeID, "id", "", "Node ID (generated when omitted)")
	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude in degrees")
	cmd.Flags().Float64Var(&lng, "lng", 0, "Longitude in degrees")
	cmd.Flags().StringVar(&kind, "kind", "", "Node kind: city|landmark|junction")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lng")
	return cmd
}

func nodeGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a node by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			node, err := apiClient.Nodes.Get(context.Background(), args[0])
			if err != nil {
				fatal("get node", err)
			}
			output(node, node.ID)
		},
	}
}

func nodeDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a node and its edges",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			removed, err := apiClient.Nodes.Delete(context.Background(), args[0])
			if err != nil {
				fatal("delete node", err)
			}
			fmt.Printf("deleted (%d edges removed)\n", removed)
		},
	}
}

func nodeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List nodes",
		Run: func(cmd *cobra.Command, args []string) {
			nodes, err := apiClient.Nodes.List(context.Background())
			if err != nil {
				fatal("list nodes", err)
			}
			if flagFmt == "table" {
				headers := []string{"ID", "KIND", "NAME", "LAT", "LNG"}
				var rows [][]string
				for _, n := range nodes {
					rows = append(rows, []string{
						n.ID, n.Kind, n.Name,
						fmt.Sprintf("%.5f", n.Location.Lat),
						fmt.Sprintf("%.5f", n.Location.Lng),
					})
				}
				formatTable(headers, rows)
				return
			}
			if flagFmt == "quiet" {
				for _, n := range nodes {
					fmt.Println(n.ID)
				}
				return
			}
			output(nodes, "")
		},
	}
}
