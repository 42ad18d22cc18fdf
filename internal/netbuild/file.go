package netbuild

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/routegrid/routegrid/internal/geo"
	"github.com/routegrid/routegrid/internal/models"
)

// ErrInactiveDataset marks a dataset file whose active flag is off. The
// caller decides whether that is fatal or just means "skip this file".
var ErrInactiveDataset = errors.New("dataset is not active")

// Dataset is the on-disk YAML network definition.
type Dataset struct {
	Name   string        `yaml:"name"`
	Active bool          `yaml:"active"`
	Nodes  []DatasetNode `yaml:"nodes"`
	Edges  []DatasetEdge `yaml:"edges"`
}

// DatasetNode is one node entry. Kind defaults to junction.
type DatasetNode struct {
	ID   string  `yaml:"id"`
	Name string  `yaml:"name"`
	Lat  float64 `yaml:"lat"`
	Lng  float64 `yaml:"lng"`
	Kind string  `yaml:"kind"`
}

// DatasetEdge is one edge entry. Distance and duration are derived from
// the endpoint geometry and road speed when left at zero, and
// bidirectional entries expand into a reverse edge as well.
type DatasetEdge struct {
	ID              string  `yaml:"id"`
	From            string  `yaml:"from"`
	To              string  `yaml:"to"`
	DistanceKm      float64 `yaml:"distance_km"`
	DurationMinutes float64 `yaml:"duration_minutes"`
	RoadKind        string  `yaml:"road_kind"`
	Weight          float64 `yaml:"weight"`
	Bidirectional   bool    `yaml:"bidirectional"`
}

// LoadFile reads a YAML dataset from path and converts it to store input.
func LoadFile(path string) ([]models.Node, []models.Edge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading dataset: %w", err)
	}

	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, nil, fmt.Errorf("parsing dataset: %w", err)
	}

	return ds.Build()
}

// Build validates the dataset and expands it into nodes and edges.
func (ds *Dataset) Build() ([]models.Node, []models.Edge, error) {
	if !ds.Active {
		return nil, nil, fmt.Errorf("%w: %q", ErrInactiveDataset, ds.Name)
	}

	locations := make(map[string]models.Coordinate, len(ds.Nodes))
	nodes := make([]models.Node, 0, len(ds.Nodes))
	for i, dn := range ds.Nodes {
		node, err := dn.node()
		if err != nil {
			return nil, nil, fmt.Errorf("node %d: %w", i, err)
		}
		if _, ok := locations[node.ID]; ok {
			return nil, nil, fmt.Errorf("node %d: %w: %q", i, models.ErrDuplicateID, node.ID)
		}
		locations[node.ID] = node.Location
		nodes = append(nodes, node)
	}

	edges := make([]models.Edge, 0, len(ds.Edges)*2)
	for i, de := range ds.Edges {
		forward, err := de.edge(locations)
		if err != nil {
			return nil, nil, fmt.Errorf("edge %d: %w", i, err)
		}
		edges = append(edges, forward)

		if de.Bidirectional {
			reverse := forward
			reverse.ID = forward.ID + "-rev"
			reverse.From, reverse.To = forward.To, forward.From
			edges = append(edges, reverse)
		}
	}

	return nodes, edges, nil
}

func (dn DatasetNode) node() (models.Node, error) {
	kind := models.NodeKind(dn.Kind)
	if dn.Kind == "" {
		kind = models.NodeJunction
	}
	if !kind.Valid() {
		return models.Node{}, models.ErrInvalidKind("kind", dn.Kind)
	}

	loc := models.Coordinate{Lat: dn.Lat, Lng: dn.Lng}
	if !loc.Valid() {
		return models.Node{}, fmt.Errorf("%w: (%v, %v)", models.ErrInvalidCoordinate, dn.Lat, dn.Lng)
	}
	if dn.ID == "" {
		return models.Node{}, fmt.Errorf("missing id")
	}
	if dn.Name == "" {
		return models.Node{}, models.ErrMissingName
	}

	return models.Node{ID: dn.ID, Name: dn.Name, Location: loc, Kind: kind}, nil
}

func (de DatasetEdge) edge(locations map[string]models.Coordinate) (models.Edge, error) {
	kind := models.RoadKind(de.RoadKind)
	if de.RoadKind == "" {
		kind = models.RoadStreet
	}
	if !kind.Valid() {
		return models.Edge{}, models.ErrInvalidKind("road_kind", de.RoadKind)
	}
	if de.ID == "" {
		return models.Edge{}, fmt.Errorf("missing id")
	}

	from, ok := locations[de.From]
	if !ok {
		return models.Edge{}, fmt.Errorf("%w: from node %q", models.ErrInvalidReference, de.From)
	}
	to, ok := locations[de.To]
	if !ok {
		return models.Edge{}, fmt.Errorf("%w: to node %q", models.ErrInvalidReference, de.To)
	}

	distance := de.DistanceKm
	if distance == 0 {
		distance = geo.DistanceKm(from, to)
	}
	if distance < 0 {
		return models.Edge{}, models.ErrNegativeDistance
	}

	duration := de.DurationMinutes
	if duration == 0 {
		duration = distance / kind.SpeedKmh() * 60
	}
	if duration < 0 {
		return models.Edge{}, models.ErrNegativeDuration
	}

	weight := de.Weight
	if weight == 0 {
		weight = distance
	}
	if weight < 0 {
		return models.Edge{}, models.ErrNegativeWeight
	}

	return models.Edge{
		ID:              de.ID,
		From:            de.From,
		To:              de.To,
		DistanceKm:      distance,
		DurationMinutes: duration,
		RoadKind:        kind,
		BaseWeight:      weight,
		CurrentWeight:   weight,
		TrafficLevel:    models.TrafficLow,
	}, nil
}
