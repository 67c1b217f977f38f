package roads2wrpp

import (
	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
)

// GraphToGeoJSON returns GeoJSON representation of the graph for the
// map-rendering collaborator: one LineString feature per edge with cost and
// servicing attributes attached
func GraphToGeoJSON(graph *Graph, rule RequiredRule) (*geojson.FeatureCollection, error) {
	fc := geojson.NewFeatureCollection()
	for _, edge := range graph.Edges() {
		source, ok := graph.Node(edge.Source)
		if !ok {
			return nil, errors.Errorf("Edge refers to missing vertex %d", edge.Source)
		}
		target, ok := graph.Node(edge.Target)
		if !ok {
			return nil, errors.Errorf("Edge refers to missing vertex %d", edge.Target)
		}
		feature := geojson.NewLineStringFeature([][]float64{
			{source.Geom.Lon(), source.Geom.Lat()},
			{target.Geom.Lon(), target.Geom.Lat()},
		})
		feature.SetProperty("source", int64(edge.Source))
		feature.SetProperty("target", int64(edge.Target))
		feature.SetProperty("cost", edge.Cost())
		feature.SetProperty("directed", edge.Directed)
		feature.SetProperty("required", rule(edge))
		feature.SetProperty("name", edge.RoadName)
		feature.SetProperty("highway_kind", edge.Kind.String())
		fc.AddFeature(feature)
	}
	return fc, nil
}
