package roads2wrpp

import (
	"os"

	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// RoadFeaturesFromGeoJSON decodes the road-fetch collaborator's output: a
// GeoJSON FeatureCollection of LineString features with per-segment
// properties. Non-LineString features are skipped. Absent properties default
// per the input contract: oneway/isCovered to false, isRouteRequired to true.
func RoadFeaturesFromGeoJSON(data []byte) ([]RoadFeature, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.Wrap(err, "Can't unmarshal feature collection")
	}
	features := []RoadFeature{}
	for _, f := range fc.Features {
		if f.Geometry == nil || !f.Geometry.IsLineString() {
			continue
		}
		line := make(orb.LineString, 0, len(f.Geometry.LineString))
		for _, pt := range f.Geometry.LineString {
			if len(pt) < 2 {
				return nil, errors.Errorf("Malformed coordinate pair of length %d", len(pt))
			}
			line = append(line, orb.Point{pt[0], pt[1]})
		}
		features = append(features, RoadFeature{
			Geometry:      line,
			Name:          f.PropertyMustString("name", ""),
			Kind:          getHighwayKind(f.PropertyMustString("highway", "")),
			Oneway:        boolProperty(f, "oneway", false),
			Roundabout:    f.PropertyMustString("junction", "") == "roundabout",
			Covered:       boolProperty(f, "isCovered", false),
			RouteRequired: boolProperty(f, "isRouteRequired", true),
		})
	}
	return features, nil
}

// RoadFeaturesFromGeoJSONFile reads feature collection from file on disk
func RoadFeaturesFromGeoJSONFile(fileName string) ([]RoadFeature, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Can't read file")
	}
	return RoadFeaturesFromGeoJSON(data)
}

// boolProperty reads a boolean GeoJSON property which may come either as a
// JSON bool or as an OSM-style string flag ("yes"/"1"/"true")
func boolProperty(f *geojson.Feature, key string, defaultValue bool) bool {
	if value, err := f.PropertyBool(key); err == nil {
		return value
	}
	if str, err := f.PropertyString(key); err == nil {
		return str == "yes" || str == "1" || str == "true"
	}
	return defaultValue
}
