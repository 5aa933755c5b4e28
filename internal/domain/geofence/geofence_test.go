package geofence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var office = Coordinate{Latitude: 3.1925444, Longitude: 101.6110718}

func TestDistance_CoincidentCoordinates(t *testing.T) {
	assert.Equal(t, 0.0, Distance(office, office))
}

func TestDistance_Symmetric(t *testing.T) {
	other := Coordinate{Latitude: 3.2000000, Longitude: 101.6200000}

	ab := Distance(office, other)
	ba := Distance(other, office)

	assert.InDelta(t, ab, ba, 1e-9)
}

func TestDistance_KnownPair(t *testing.T) {
	other := Coordinate{Latitude: 3.2000000, Longitude: 101.6200000}

	// Haversine with R = 6371000 m.
	assert.InDelta(t, 1292.21, Distance(office, other), 1.0)
}

func TestGate_Evaluate(t *testing.T) {
	gate := Gate{Office: office, RadiusMeters: 500}

	tests := []struct {
		name     string
		observed Coordinate
		inRange  bool
	}{
		{
			name:     "at the office",
			observed: office,
			inRange:  true,
		},
		{
			name:     "just outside the radius",
			observed: Coordinate{Latitude: 3.1950000, Longitude: 101.6150000}, // ~514 m away
			inRange:  false,
		},
		{
			name:     "well outside the radius",
			observed: Coordinate{Latitude: 3.2000000, Longitude: 101.6200000}, // ~1292 m away
			inRange:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := gate.Evaluate(tt.observed)
			assert.Equal(t, tt.inRange, ev.InRange)
			assert.Equal(t, Distance(tt.observed, office), ev.DistanceMeters)
		})
	}
}

func TestGate_Evaluate_TighterRadius(t *testing.T) {
	gate := Gate{Office: office, RadiusMeters: 100}

	nearby := Coordinate{Latitude: 3.1950000, Longitude: 101.6150000}
	assert.False(t, gate.Evaluate(nearby).InRange)
	assert.True(t, gate.Evaluate(office).InRange)
}
