package main

import "math"

const kmPerDegreeLat = 111.32

// kmPerDegreeLng shrinks with latitude as meridians converge.
func kmPerDegreeLng(lat float64) float64 {
	return kmPerDegreeLat * math.Cos(lat*math.Pi/180)
}

// distanceKm is the haversine great-circle distance between two nodes.
func distanceKm(a, b datasetNode) float64 {
	const earthRadiusKm = 6371.0

	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}
