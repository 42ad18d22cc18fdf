package netbuild

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"

	"github.com/routegrid/routegrid/internal/geo"
	"github.com/routegrid/routegrid/internal/models"
)

// highwayKinds maps accepted OSM highway classes to road kinds. Ways
// tagged outside this map are not routable here.
var highwayKinds = map[string]models.RoadKind{
	"motorway":       models.RoadHighway,
	"motorway_link":  models.RoadHighway,
	"trunk":          models.RoadHighway,
	"trunk_link":     models.RoadHighway,
	"primary":        models.RoadHighway,
	"primary_link":   models.RoadHighway,
	"secondary":      models.RoadStreet,
	"secondary_link": models.RoadStreet,
	"tertiary":       models.RoadStreet,
	"tertiary_link":  models.RoadStreet,
	"residential":    models.RoadStreet,
	"unclassified":   models.RoadStreet,
	"living_street":  models.RoadAlley,
	"service":        models.RoadAlley,
}

// ImportOSM builds a routable network from an OpenStreetMap .osm.pbf
// extract. Chains of way geometry collapse into single edges between
// junctions (nodes shared by several ways, or way endpoints), so the
// result carries the topology without the drawing detail.
//
// The file is scanned three times: once to find junctions, once to
// collect coordinates, once to emit edges.
func ImportOSM(ctx context.Context, path string) ([]models.Node, []models.Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening extract: %w", err)
	}
	defer f.Close()

	counts, err := countWayRefs(ctx, f)
	if err != nil {
		return nil, nil, fmt.Errorf("scanning ways: %w", err)
	}
	if err := rewind(f); err != nil {
		return nil, nil, err
	}

	nodes, coords, err := collectJunctions(ctx, f, counts)
	if err != nil {
		return nil, nil, fmt.Errorf("scanning nodes: %w", err)
	}
	if err := rewind(f); err != nil {
		return nil, nil, err
	}

	edges, err := contractWays(ctx, f, counts, coords)
	if err != nil {
		return nil, nil, fmt.Errorf("building edges: %w", err)
	}

	return nodes, edges, nil
}

func rewind(f *os.File) error {
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewinding extract: %w", err)
	}
	return nil
}

// countWayRefs counts how many routable ways touch each node. Endpoints
// count twice so they always become junctions even when only one way
// uses them.
func countWayRefs(ctx context.Context, f *os.File) (map[int64]int, error) {
	scanner := osmpbf.New(ctx, f, runtime.GOMAXPROCS(-1))
	defer scanner.Close()
	scanner.SkipNodes = true
	scanner.SkipRelations = true

	counts := make(map[int64]int)
	for scanner.Scan() {
		way, ok := scanner.Object().(*osm.Way)
		if !ok || !routable(way) {
			continue
		}
		for i, wn := range way.Nodes {
			ref := int64(wn.ID)
			counts[ref]++
			if i == 0 || i == len(way.Nodes)-1 {
				counts[ref]++
			}
		}
	}
	return counts, scanner.Err()
}

// collectJunctions gathers coordinates for every referenced node and
// materializes the junction nodes of the contracted network.
func collectJunctions(ctx context.Context, f *os.File, counts map[int64]int) ([]models.Node, map[int64]models.Coordinate, error) {
	scanner := osmpbf.New(ctx, f, runtime.GOMAXPROCS(-1))
	defer scanner.Close()
	scanner.SkipWays = true
	scanner.SkipRelations = true

	var nodes []models.Node
	coords := make(map[int64]models.Coordinate, len(counts))
	for scanner.Scan() {
		node, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}
		ref := int64(node.ID)
		count, used := counts[ref]
		if !used {
			continue
		}

		loc := models.Coordinate{Lat: node.Lat, Lng: node.Lon}
		coords[ref] = loc
		if count < 2 {
			continue
		}

		name := node.Tags.Find("name")
		kind := models.NodeJunction
		if name != "" {
			kind = models.NodeLandmark
		} else {
			name = fmt.Sprintf("junction %d", ref)
		}
		nodes = append(nodes, models.Node{
			ID:       osmNodeID(ref),
			Name:     name,
			Location: loc,
			Kind:     kind,
		})
	}
	return nodes, coords, scanner.Err()
}

// contractWays walks each routable way and emits one edge per junction
// pair, accumulating the geometric length of the chain in between. Nodes
// missing from the extract (clipped at its boundary) break the chain.
func contractWays(ctx context.Context, f *os.File, counts map[int64]int, coords map[int64]models.Coordinate) ([]models.Edge, error) {
	scanner := osmpbf.New(ctx, f, runtime.GOMAXPROCS(-1))
	defer scanner.Close()
	scanner.SkipNodes = true
	scanner.SkipRelations = true

	var edges []models.Edge
	for scanner.Scan() {
		way, ok := scanner.Object().(*osm.Way)
		if !ok || !routable(way) {
			continue
		}

		kind := highwayKinds[way.Tags.Find("highway")]
		backward := !oneway(way)

		var (
			segStart = int64(-1)
			length   float64
			prev     models.Coordinate
			havePrev bool
			seq      int
		)
		for _, wn := range way.Nodes {
			ref := int64(wn.ID)
			loc, ok := coords[ref]
			if !ok {
				segStart, length, havePrev = -1, 0, false
				continue
			}

			if havePrev {
				length += geo.DistanceKm(prev, loc)
			}
			prev, havePrev = loc, true

			if counts[ref] < 2 {
				continue
			}
			if segStart == -1 {
				segStart, length = ref, 0
				continue
			}
			if ref == segStart {
				continue
			}

			edges = append(edges, osmEdge(way.ID, seq, segStart, ref, length, kind))
			seq++
			if backward {
				edges = append(edges, osmEdge(way.ID, seq, ref, segStart, length, kind))
				seq++
			}
			segStart, length = ref, 0
		}
	}
	return edges, scanner.Err()
}

func osmEdge(wayID osm.WayID, seq int, from, to int64, length float64, kind models.RoadKind) models.Edge {
	return models.Edge{
		ID:              fmt.Sprintf("w%d.%d", wayID, seq),
		From:            osmNodeID(from),
		To:              osmNodeID(to),
		DistanceKm:      length,
		DurationMinutes: length / kind.SpeedKmh() * 60,
		RoadKind:        kind,
		BaseWeight:      length,
		CurrentWeight:   length,
		TrafficLevel:    models.TrafficLow,
	}
}

func osmNodeID(ref int64) string {
	return fmt.Sprintf("osm%d", ref)
}

func routable(way *osm.Way) bool {
	_, ok := highwayKinds[way.Tags.Find("highway")]
	return ok
}

func oneway(way *osm.Way) bool {
	switch way.Tags.Find("oneway") {
	case "yes", "1", "true":
		return true
	}
	// Roundabouts are implicitly oneway.
	return way.Tags.Find("junction") == "roundabout"
}
