package roads2wrpp

import (
	"github.com/paulmach/orb"
)

// RoadFeature is a single road polyline with per-segment attributes.
// It is the input contract of the whole pipeline: the area-selection/road-fetch
// collaborator produces an ordered sequence of these.
type RoadFeature struct {
	Geometry      orb.LineString
	Name          string
	Kind          HighwayKind
	Oneway        bool
	Roundabout    bool
	Covered       bool
	RouteRequired bool
}

// IsOneway - road segment is one way when tagged as such or when it is part of a roundabout
func (feature RoadFeature) IsOneway() bool {
	return feature.Oneway || feature.Roundabout
}

// firstCoordinate returns the canonical first coordinate: first point of the
// first road feature that has any geometry at all
func firstCoordinate(features []RoadFeature) (orb.Point, bool) {
	for i := range features {
		if len(features[i].Geometry) > 0 {
			return features[i].Geometry[0], true
		}
	}
	return orb.Point{}, false
}
