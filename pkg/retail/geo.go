package retail

import "math"

// NearbyRadius is the inclusive distance bound for nearby stores, in
// coordinate units.
const NearbyRadius = 30.0

// Distance is the planar Euclidean distance between two latitude/longitude
// pairs. No geodesic correction is applied.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := lat1 - lat2
	dLon := lon1 - lon2
	return math.Sqrt(dLat*dLat + dLon*dLon)
}

// WithinRadius keeps the stores no farther than radius from the point,
// preserving their order.
func WithinRadius(stores []Store, lat, lon, radius float64) []Store {
	var nearby []Store
	for _, s := range stores {
		if Distance(lat, lon, s.Latitude, s.Longitude) <= radius {
			nearby = append(nearby, s)
		}
	}
	return nearby
}
