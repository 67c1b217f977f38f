package roads2wrpp

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphToGeoJSON(t *testing.T) {
	registry := NewCoordinateRegistry()
	graph, _, err := NewGraphBuilder(registry).Build([]RoadFeature{
		oneWayRoad(orb.Point{0.0, 0.0}, orb.Point{0.0, 0.001}),
	}, GRAPH_WINDY)
	require.NoError(t, err)

	fc, err := GraphToGeoJSON(graph, WindyRuralRule(false))
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)

	feature := fc.Features[0]
	require.True(t, feature.Geometry.IsLineString())
	assert.Equal(t, [][]float64{{0.0, 0.0}, {0.0, 0.001}}, feature.Geometry.LineString)
	assert.Equal(t, int64(1), feature.Properties["source"])
	assert.Equal(t, int64(2), feature.Properties["target"])
	assert.Equal(t, int64(11119), feature.Properties["cost"])
	assert.Equal(t, true, feature.Properties["directed"])
	assert.Equal(t, true, feature.Properties["required"])
	assert.Equal(t, "STREET", feature.Properties["highway_kind"])

	data, err := fc.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"LineString"`)
}
