// Package geo evaluates geofence arrival on the WGS-84 ellipsoid.
// Everything here is pure: no I/O, no shared state.
package geo

import (
	"math"

	"github.com/tidwall/geodesic"
)

// Point is a latitude/longitude pair in decimal degrees.
type Point struct {
	Lat float64
	Lng float64
}

// Verdict is the result of evaluating a position against a geofence.
type Verdict struct {
	// DistanceMeters is rounded to two decimal places.
	DistanceMeters float64
	Arrived        bool
}

// Evaluate measures the geodesic distance from current to dest and reports
// whether current lies inside the circle of radiusMeters around dest.
// The boundary is inclusive.
func Evaluate(current, dest Point, radiusMeters float64) Verdict {
	d := Distance(current, dest)
	return Verdict{
		DistanceMeters: Round2(d),
		Arrived:        d <= radiusMeters,
	}
}

// Distance returns the shortest distance between a and b along the WGS-84
// ellipsoid in metres. Karney's algorithm converges for every pair,
// antipodal points included.
func Distance(a, b Point) float64 {
	var s12 float64
	geodesic.WGS84.Inverse(a.Lat, a.Lng, b.Lat, b.Lng, &s12, nil, nil)
	return s12
}

// Round2 rounds v to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
