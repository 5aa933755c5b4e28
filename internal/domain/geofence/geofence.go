package geofence

import "math"

const earthRadiusMeters = 6371000

// Coordinate is a pair of floating-point degrees. Values are taken as-is;
// range validation is the caller's responsibility.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// Distance returns the great-circle distance between two coordinates in
// meters using the haversine formula.
func Distance(a, b Coordinate) float64 {
	dLat := (b.Latitude - a.Latitude) * (math.Pi / 180.0)
	dLon := (b.Longitude - a.Longitude) * (math.Pi / 180.0)

	latARad := a.Latitude * (math.Pi / 180.0)
	latBRad := b.Latitude * (math.Pi / 180.0)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(latARad)*math.Cos(latBRad)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// Gate is a fixed office coordinate with an allowed radius.
type Gate struct {
	Office       Coordinate
	RadiusMeters float64
}

// Evaluation is the outcome of checking an observed position against a Gate.
type Evaluation struct {
	DistanceMeters float64
	InRange        bool
}

// Evaluate classifies an observed coordinate as in or out of range.
// An absent coordinate is a separate outcome owned by the caller, not
// an Evaluation.
func (g Gate) Evaluate(observed Coordinate) Evaluation {
	d := Distance(observed, g.Office)
	return Evaluation{
		DistanceMeters: d,
		InRange:        d <= g.RadiusMeters,
	}
}
