package roads2wrpp

import (
	"math"

	"github.com/paulmach/orb"
)

const (
	earthRadiusMeters = 6370986.884258304
	pi180             = math.Pi / 180.0
)

// degreesToRadians deg = r * pi / 180
func degreesToRadians(d float64) float64 {
	return d * pi180
}

// greatCircleDistance returns distance between two geo-points (meters)
func greatCircleDistance(p, q orb.Point) float64 {
	lat1 := degreesToRadians(p.Lat())
	lon1 := degreesToRadians(p.Lon())
	lat2 := degreesToRadians(q.Lat())
	lon2 := degreesToRadians(q.Lon())
	diffLat := lat2 - lat1
	diffLon := lon2 - lon1
	a := math.Pow(math.Sin(diffLat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(diffLon/2), 2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return c * earthRadiusMeters
}

// segmentWeight returns great-circle length of a single segment rounded to 2 decimal places (centimeter precision)
func segmentWeight(p, q orb.Point) float64 {
	return math.Round(greatCircleDistance(p, q)*100.0) / 100.0
}

// weightToCost converts weight in meters to integer cost in centimeters
func weightToCost(weight float64) int64 {
	return int64(math.Round(weight * 100.0))
}
