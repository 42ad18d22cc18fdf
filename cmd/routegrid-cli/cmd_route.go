package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/routegrid/routegrid/client"
	"github.com/spf13/cobra"
)

func newRouteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Search paths through the network",
	}
	cmd.AddCommand(routeFindCmd())
	cmd.AddCommand(routeCompareCmd())
	return cmd
}

func routeFindCmd() *cobra.Command {
	var algorithm string
	var byCoords bool
	cmd := &cobra.Command{
		Use:   "find <from> <to>",
		Short: "Find a path between two nodes",
		Long:  "Find a path between two node IDs, or between two lat,lng pairs with --coords.",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			req, err := buildRouteRequest(args[0], args[1], algorithm, byCoords)
			if err != nil {
				fatal("parse endpoints", err)
			}
			result, err := apiClient.Routes.Find(context.Background(), req)
			if err != nil {
				fatal("find route", err)
			}
			if !result.Found {
				fmt.Println("no route: destination unreachable")
				return
			}
			if flagFmt == "quiet" {
				fmt.Println(strings.Join(result.Path, " "))
				return
			}
			output(result, "")
		},
	}
	cmd.Flags().StringVar(&algorithm, "algorithm", "", "Search algorithm: dijkstra|astar|bellman-ford")
	cmd.Flags().BoolVar(&byCoords, "coords", false, "Treat FROM and TO as lat,lng pairs")
	return cmd
}

func routeCompareCmd() *cobra.Command {
	var byCoords bool
	cmd := &cobra.Command{
		Use:   "compare <from> <to>",
		Short: "Run the same search under every algorithm",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			req, err := buildRouteRequest(args[0], args[1], "", byCoords)
			if err != nil {
				fatal("parse endpoints", err)
			}
			results, err := apiClient.Routes.Compare(context.Background(), req)
			if err != nil {
				fatal("compare routes", err)
			}
			if flagFmt == "table" {
				headers := []string{"ALGORITHM", "FOUND", "COST", "ETA_MIN", "HOPS", "VISITED"}
				var rows [][]string
				for _, r := range results {
					rows = append(rows, []string{
						r.Algorithm,
						strconv.FormatBool(r.Found),
						formatCost(r.TotalCost),
						formatCost(r.EstimatedTimeMinutes),
						strconv.Itoa(len(r.Path)),
						strconv.Itoa(len(r.VisitedNodes)),
					})
				}
				formatTable(headers, rows)
				return
			}
			output(results, "")
		},
	}
	cmd.Flags().BoolVar(&byCoords, "coords", false, "Treat FROM and TO as lat,lng pairs")
	return cmd
}

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <lat> <lng>",
		Short: "Find the network node nearest to a coordinate",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			lat, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				fatal("parse lat", err)
			}
			lng, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				fatal("parse lng", err)
			}
			result, err := apiClient.Resolve(context.Background(), lat, lng)
			if err != nil {
				fatal("resolve", err)
			}
			output(result, result.Node.ID)
		},
	}
}

// buildRouteRequest assembles a search request from two endpoint arguments,
// treating them as node IDs or as lat,lng pairs.
func buildRouteRequest(from, to, algorithm string, byCoords bool) (*client.RouteRequest, error) {
	req := &client.RouteRequest{Algorithm: algorithm}
	if !byCoords {
		req.From = from
		req.To = to
		return req, nil
	}

	fromCoord, err := parseCoordPair(from)
	if err != nil {
		return nil, fmt.Errorf("from: %w", err)
	}
	toCoord, err := parseCoordPair(to)
	if err != nil {
		return nil, fmt.Errorf("to: %w", err)
	}
	req.FromCoord = fromCoord
	req.ToCoord = toCoord
	return req, nil
}

// parseCoordPair parses "lat,lng" into a coordinate.
func parseCoordPair(s string) (*client.Coordinate, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("expected lat,lng but got %q", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, fmt.Errorf("bad latitude %q", parts[0])
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("bad longitude %q", parts[1])
	}
	return &client.Coordinate{Lat: lat, Lng: lng}, nil
}

// formatCost renders a nullable cost for table output.
func formatCost(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v)
}
