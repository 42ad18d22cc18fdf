// Package geo wraps great-circle math over WGS84 coordinates.
package geo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"github.com/routegrid/routegrid/internal/models"
)

// DistanceKm returns the haversine distance between two coordinates in
// kilometers.
func DistanceKm(a, b models.Coordinate) float64 {
	return geo.DistanceHaversine(point(a), point(b)) / 1000
}

// Destination returns the coordinate reached from start by travelling
// distanceKm along the given compass bearing in degrees.
func Destination(start models.Coordinate, bearingDeg, distanceKm float64) models.Coordinate {
	p := geo.PointAtBearingAndDistance(point(start), bearingDeg, distanceKm*1000)
	return models.Coordinate{Lat: p.Lat(), Lng: p.Lon()}
}

// Nearest returns the node closest to c by great-circle distance, and how
// far away it is in kilometers. Nodes are scanned in order; the first of
// equally distant nodes wins. Returns models.ErrEmptyGraph when nodes is
// empty.
func Nearest(nodes []models.Node, c models.Coordinate) (models.Node, float64, error) {
	if len(nodes) == 0 {
		return models.Node{}, 0, models.ErrEmptyGraph
	}

	best := nodes[0]
	bestDist := DistanceKm(c, best.Location)
	for _, n := range nodes[1:] {
		if d := DistanceKm(c, n.Location); d < bestDist {
			best, bestDist = n, d
		}
	}
	return best, bestDist, nil
}

func point(c models.Coordinate) orb.Point {
	return orb.Point{c.Lng, c.Lat}
}
