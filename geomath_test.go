package roads2wrpp

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestGreatCircleDistance(t *testing.T) {
	p1 := orb.Point{37.6417350769043, 55.751849391735284}
	p2 := orb.Point{37.668514251708984, 55.73261980350401}
	assert.InDelta(t, 2716.9216, greatCircleDistance(p1, p2), 0.001)
}

func TestSegmentWeightRounding(t *testing.T) {
	p1 := orb.Point{0.0, 0.0}
	p2 := orb.Point{0.0, 0.001}
	weight := segmentWeight(p1, p2)
	assert.Equal(t, 111.19, weight)
	// Weight carries at most 2 decimal places
	assert.InDelta(t, math.Round(weight*100), weight*100, 1e-9)
}

func TestWeightToCostRoundTrip(t *testing.T) {
	weights := []float64{0.01, 1.0, 111.19, 2716.92, 99999.99}
	for _, weight := range weights {
		cost := weightToCost(weight)
		assert.Equal(t, int64(math.Round(weight*100)), cost)
		assert.InDelta(t, weight, float64(cost)/100.0, 0.005)
	}
}

func TestZeroDistanceForSamePoint(t *testing.T) {
	p := orb.Point{10.123, -45.6}
	assert.Equal(t, 0.0, segmentWeight(p, p))
}
